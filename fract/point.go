package fract

import "golang.org/x/image/math/fixed"

// A pair of [Unit] coordinates.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a [fixed.Point26_6].
func FromFixedPoint(point fixed.Point26_6) Point {
	return Point{ X: Unit(point.X), Y: Unit(point.Y) }
}

// Returns the point coordinates as a pair of float32s.
func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}
