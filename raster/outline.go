package raster

import "image"
import "math"
import "strconv"

// Operation codes for [Segment].
type SegmentOp uint8

const (
	SegmentOpMoveTo SegmentOp = iota
	SegmentOpLineTo
	SegmentOpQuadTo
	SegmentOpCubeTo
)

// Returns the number of points used by segments with this op.
func (self SegmentOp) NumArgs() int {
	switch self {
	case SegmentOpMoveTo, SegmentOpLineTo: return 1
	case SegmentOpQuadTo: return 2
	case SegmentOpCubeTo: return 3
	default:
		panic("invalid SegmentOp " + strconv.Itoa(int(self)))
	}
}

// A point in pixel coordinates.
type Point struct {
	X float32
	Y float32
}

// A single outline segment. Only the first [SegmentOp.NumArgs]() points
// are used. For curves, the control points come first and the target
// point comes last.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// An Outline is a sequence of closed contours described with segments,
// in pixel coordinates and with the y axis growing downwards.
//
// The zero value is an empty outline ready to use.
type Outline struct {
	Segments []Segment
}

// Clears the outline segments, keeping the underlying storage.
func (self *Outline) Reset() {
	self.Segments = self.Segments[:0]
}

// Starts a new contour at the given point.
func (self *Outline) MoveTo(x, y float32) {
	self.Segments = append(self.Segments, Segment{
		Op: SegmentOpMoveTo, Args: [3]Point{ {x, y} },
	})
}

// Adds a straight segment to the given point.
func (self *Outline) LineTo(x, y float32) {
	self.Segments = append(self.Segments, Segment{
		Op: SegmentOpLineTo, Args: [3]Point{ {x, y} },
	})
}

// Adds a quadratic Bézier curve to the given point.
func (self *Outline) QuadTo(ctrlX, ctrlY, x, y float32) {
	self.Segments = append(self.Segments, Segment{
		Op: SegmentOpQuadTo, Args: [3]Point{ {ctrlX, ctrlY}, {x, y} },
	})
}

// Adds a cubic Bézier curve to the given point.
func (self *Outline) CubeTo(cx1, cy1, cx2, cy2, x, y float32) {
	self.Segments = append(self.Segments, Segment{
		Op: SegmentOpCubeTo, Args: [3]Point{ {cx1, cy1}, {cx2, cy2}, {x, y} },
	})
}

// Returns whether the outline contains any segment other than
// moves. Outlines that only move the pen (e.g. space glyphs) have
// nothing to draw.
func (self *Outline) Drawable() bool {
	for _, segment := range self.Segments {
		if segment.Op != SegmentOpMoveTo { return true }
	}
	return false
}

// Translates all the outline points by the given amounts.
func (self *Outline) Translate(dx, dy float32) {
	if dx == 0 && dy == 0 { return }
	for i := range self.Segments {
		args := &self.Segments[i].Args
		for j := 0; j < self.Segments[i].Op.NumArgs(); j++ {
			args[j].X += dx
			args[j].Y += dy
		}
	}
}

// Returns the exact bounds of all the outline points, control
// points included. An outline without segments returns zeros.
func (self *Outline) Bounds() (minX, minY, maxX, maxY float32) {
	if len(self.Segments) == 0 { return 0, 0, 0, 0 }

	minX, minY = float32(math.Inf(+1)), float32(math.Inf(+1))
	maxX, maxY = float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, segment := range self.Segments {
		for _, pt := range segment.Args[:segment.Op.NumArgs()] {
			minX = min(minX, pt.X)
			minY = min(minY, pt.Y)
			maxX = max(maxX, pt.X)
			maxY = max(maxY, pt.Y)
		}
	}
	return minX, minY, maxX, maxY
}

// Returns the smallest integer rectangle containing the outline
// bounds (min coordinates floored, max coordinates ceiled). The
// second return value is false when the outline has nothing to
// draw or when the resulting rectangle has no area.
func (self *Outline) PixelBounds() (image.Rectangle, bool) {
	if !self.Drawable() { return image.Rectangle{}, false }

	minX, minY, maxX, maxY := self.Bounds()
	rect := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
	return rect, !rect.Empty()
}

// Calls the relevant tracer method for each outline segment,
// translating the points by the given offset. Contours that don't
// end at their starting point are closed with a straight line.
func (self *Outline) trace(tracer pathTracer, offsetX, offsetY float32) {
	var start, pen Point
	var open bool
	closeContour := func() {
		if open && pen != start {
			tracer.LineTo(start.X + offsetX, start.Y + offsetY)
		}
		open = false
	}

	for _, segment := range self.Segments {
		a, b, c := segment.Args[0], segment.Args[1], segment.Args[2]
		switch segment.Op {
		case SegmentOpMoveTo:
			closeContour()
			start, pen = a, a
			tracer.MoveTo(a.X + offsetX, a.Y + offsetY)
		case SegmentOpLineTo:
			tracer.LineTo(a.X + offsetX, a.Y + offsetY)
			pen, open = a, true
		case SegmentOpQuadTo:
			tracer.QuadTo(a.X + offsetX, a.Y + offsetY, b.X + offsetX, b.Y + offsetY)
			pen, open = b, true
		case SegmentOpCubeTo:
			tracer.CubeTo(
				a.X + offsetX, a.Y + offsetY, b.X + offsetX, b.Y + offsetY,
				c.X + offsetX, c.Y + offsetY,
			)
			pen, open = c, true
		default:
			panic("unexpected segment.Op case")
		}
	}
	closeContour()
}

// Implemented by vector.Rasterizer and adapted by EdgeMarker.
type pathTracer interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(ctrlX, ctrlY, x, y float32)
	CubeTo(cx1, cy1, cx2, cy2, x, y float32)
}
