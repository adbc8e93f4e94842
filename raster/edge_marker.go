package raster

import "image"
import "math"

var _ Rasterizer = (*EdgeMarker)(nil)

// An alternative to [VectorRasterizer] that doesn't use
// [golang.org/x/image/vector.Rasterizer] under the hood. Results are
// visually very similar, but the accumulation is done with float64
// values and the code is meant to be readable and easy to adapt.
//
// The algorithm has two steps. First, every outline boundary that
// crosses the canvas is marked in a buffer, storing at each pixel
// how much the boundary moves vertically through it (negative
// values for counter-clockwise segments, positive for clockwise
// ones). Then each row is accumulated from left to right, and the
// absolute value of the running sum is the pixel coverage.
//
// The zero value is ready to use, with a curve threshold of 0.1
// and a maximum of 8 curve splits.
type EdgeMarker struct {
	x float64 // current drawing point position
	y float64 // current drawing point position
	Width  int // canvas width, in pixels
	Height int // canvas height, in pixels
	Buffer []float64 // be *very* careful if you touch this directly

	segmenter curveSegmenter
	initFlags uint8 // bit 0b01 for the threshold, 0b10 for the splits
}

// Sets a new Width and Height and resizes the underlying buffer if
// necessary. The buffer contents are cleared too.
func (self *EdgeMarker) Resize(width, height int) {
	self.ensureDefaults()
	if width <= 0 || height <= 0 { panic("width or height <= 0") }
	self.Width  = width
	self.Height = height
	size := width*height
	if cap(self.Buffer) < size {
		self.Buffer = make([]float64, size)
		return // fresh memory is already zeroed
	}
	self.Buffer = self.Buffer[:size]
	self.ClearBuffer()
}

// Fills the internal buffer with zeros.
func (self *EdgeMarker) ClearBuffer() {
	fastFillFloat64(self.Buffer, 0)
}

// Sets the threshold distance to use when splitting Bézier curves into
// linear segments. If a linear segment misses the curve by more than
// the threshold value, the curve will be split. Otherwise, the linear
// segment will be used to approximate it.
//
// Values outside the [0, 6.5] range are clamped. The default is 0.1.
func (self *EdgeMarker) SetCurveThreshold(dist float64) {
	self.segmenter.SetThreshold(dist)
	self.initFlags |= 0b01
}

// Sets the maximum amount of times a curve can be recursively split
// into subsegments while trying to approximate it. The maximum number
// of segments that will approximate a curve is 2^maxCurveSplits.
//
// Values outside the [0, 255] range are clamped. The default is 8.
func (self *EdgeMarker) SetMaxCurveSplits(maxCurveSplits int) {
	self.segmenter.SetMaxSplits(maxCurveSplits)
	self.initFlags |= 0b10
}

func (self *EdgeMarker) ensureDefaults() {
	if self.initFlags & 0b01 == 0 { self.SetCurveThreshold(0.1) }
	if self.initFlags & 0b10 == 0 { self.SetMaxCurveSplits(8) }
}

// Satisfies the [Rasterizer] interface.
func (self *EdgeMarker) Rasterize(outline *Outline, bounds image.Rectangle, fn CoverageFunc) {
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 { return }

	self.Resize(width, height)
	outline.trace(edgeTracer{ self }, -float32(bounds.Min.X), -float32(bounds.Min.Y))

	index := 0
	for y := 0; y < height; y++ {
		accumulator := float64(0)
		for x := 0; x < width; x++ {
			accumulator += self.Buffer[index]
			fn(x, y, clampUnit64(math.Abs(accumulator)))
			index += 1
		}
	}
}

// Moves the current position to the given coordinates.
func (self *EdgeMarker) MoveTo(x, y float64) {
	self.x = x
	self.y = y
}

// Creates a straight boundary from the current position to the given
// target and moves the current position to the new one.
//
// Don't think in terms of "drawing lines" here; we are only marking
// the boundaries of an outline.
func (self *EdgeMarker) LineTo(x, y float64) {
	// changes in y equal or below this threshold are considered 0,
	// as divisions by them are unstable
	const HorizontalityThreshold = 0.000001

	defer self.MoveTo(x, y)
	deltaX := x - self.x
	deltaY := y - self.y

	// horizontal boundaries don't need to be marked
	if math.Abs(deltaY) <= HorizontalityThreshold { return }
	xAdvancePerY := deltaX/deltaY

	// mark the boundary for every pixel we pass through
	for {
		// next whole positions in the current direction, clamped
		nextX := nextWholeCoord(self.x, deltaX)
		nextY := nextWholeCoord(self.y, deltaY)
		atHorzTarget := hasReachedTarget(nextX, x, deltaX)
		atVertTarget := hasReachedTarget(nextY, y, deltaY)
		if atHorzTarget { nextX = x }
		if atVertTarget { nextY = y }

		// figure out which whole coordinate we reach first
		horzAdvance := nextX - self.x
		vertAdvance := nextY - self.y
		altHorzAdvance := xAdvancePerY*vertAdvance
		if math.Abs(altHorzAdvance) <= math.Abs(horzAdvance) {
			horzAdvance = altHorzAdvance
		} else { // xAdvancePerY can't be 0 here
			vertAdvance = horzAdvance/xAdvancePerY
		}

		self.markBoundary(self.x, self.y, horzAdvance, vertAdvance)
		self.x += horzAdvance
		self.y += vertAdvance
		if atHorzTarget && atVertTarget { return }
	}
}

// Creates a boundary from the current position to the given target
// as a quadratic Bézier curve through the given control point and
// moves the current position to the new one.
func (self *EdgeMarker) QuadTo(ctrlX, ctrlY, x, y float64) {
	self.segmenter.TraceQuad(self.LineTo, self.x, self.y, ctrlX, ctrlY, x, y)
}

// Creates a boundary from the current position to the given target
// as a cubic Bézier curve through the given control points and
// moves the current position to the new one.
func (self *EdgeMarker) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	self.segmenter.TraceCube(self.LineTo, self.x, self.y, cx1, cy1, cx2, cy2, x, y)
}

func (self *EdgeMarker) markBoundary(x, y, horzAdvance, vertAdvance float64) {
	col := intFloorOfSegment(x, horzAdvance)
	row := intFloorOfSegment(y, vertAdvance)

	// rows out of bounds and columns past the right side can't
	// affect the result. negative columns still accumulate
	if row < 0 || row >= self.Height { return }
	if col >= self.Width { return }
	if col < 0 {
		self.Buffer[row*self.Width] += vertAdvance
		return
	}

	// the vertical change is split between the current pixel and
	// the next one, proportionally to how much of the current pixel
	// lies to the right of the boundary segment
	var partialChange float64
	if horzAdvance >= 0 {
		partialChange = (1 - (x - math.Floor(x) + horzAdvance/2))*vertAdvance
	} else {
		partialChange = (math.Ceil(x) - x - horzAdvance/2)*vertAdvance
	}

	self.Buffer[row*self.Width + col] += partialChange
	if col + 1 < self.Width {
		self.Buffer[row*self.Width + col + 1] += vertAdvance - partialChange
	}
}

// Adapts the float64 EdgeMarker methods to outline tracing.
type edgeTracer struct{ marker *EdgeMarker }

func (self edgeTracer) MoveTo(x, y float32) {
	self.marker.MoveTo(float64(x), float64(y))
}

func (self edgeTracer) LineTo(x, y float32) {
	self.marker.LineTo(float64(x), float64(y))
}

func (self edgeTracer) QuadTo(ctrlX, ctrlY, x, y float32) {
	self.marker.QuadTo(float64(ctrlX), float64(ctrlY), float64(x), float64(y))
}

func (self edgeTracer) CubeTo(cx1, cy1, cx2, cy2, x, y float32) {
	self.marker.CubeTo(
		float64(cx1), float64(cy1), float64(cx2), float64(cy2),
		float64(x), float64(y),
	)
}

func hasReachedTarget(current float64, limit float64, deltaSign float64) bool {
	if deltaSign >= 0 { return current >= limit }
	return current <= limit
}

func nextWholeCoord(position float64, deltaSign float64) float64 {
	if deltaSign == 0 { return position }
	if deltaSign > 0 {
		ceil := math.Ceil(position)
		if ceil != position { return ceil }
		return ceil + 1.0
	} else {
		floor := math.Floor(position)
		if floor != position { return floor }
		return floor - 1.0
	}
}

func intFloorOfSegment(start, advance float64) int {
	floor := math.Floor(start)
	if advance >= 0 { return int(floor) }
	if floor != start { return int(floor) }
	return int(floor) - 1
}
