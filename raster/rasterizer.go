package raster

import "image"
import "image/draw"

import "golang.org/x/image/vector"

// A function receiving the coverage of a single pixel. The x and y
// coordinates are relative to the top-left corner of the rasterized
// bounds, and coverage is always in the [0, 1] range.
type CoverageFunc = func(x, y int, coverage float64)

// Rasterizer is an interface for 2D vector graphics rasterization
// with a coverage callback. It allows font backends to share a
// single drawing step and lets users plug their own algorithms.
//
// Rasterizers can't be used concurrently and must tolerate outline
// coordinates out of bounds, which are clipped.
type Rasterizer interface {
	// Rasterizes the given outline, calling fn once for each pixel
	// of bounds, in row-major order from the top-left corner. The
	// outline coordinates are in the same space as bounds. Empty
	// bounds result in no calls.
	Rasterize(outline *Outline, bounds image.Rectangle, fn CoverageFunc)
}

var _ Rasterizer = (*VectorRasterizer)(nil)

// The VectorRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface. The zero value is ready to use.
type VectorRasterizer struct {
	rasterizer vector.Rasterizer
	pix []uint8 // backing storage for the 16-bit mask, reused between calls
}

// Satisfies the [Rasterizer] interface.
func (self *VectorRasterizer) Rasterize(outline *Outline, bounds image.Rectangle, fn CoverageFunc) {
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 { return }

	// x/image/vector expects coords in the positive quadrant
	// starting at (0, 0), so we translate the outline to it
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src
	outline.trace(&self.rasterizer, -float32(bounds.Min.X), -float32(bounds.Min.Y))

	// a 16-bit mask keeps more precision than image.Alpha
	// before the final quantization done by the callers
	mask := self.newMask(width, height)
	self.rasterizer.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fn(x, y, float64(mask.Alpha16At(x, y).A)/0xFFFF)
		}
	}
}

func (self *VectorRasterizer) newMask(width, height int) *image.Alpha16 {
	size := width*height*2
	if cap(self.pix) < size {
		self.pix = make([]uint8, size)
	}
	return &image.Alpha16{
		Pix: self.pix[:size],
		Stride: width*2,
		Rect: image.Rect(0, 0, width, height),
	}
}
