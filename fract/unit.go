package fract

import "golang.org/x/image/math/fixed"

// Fixed point type to represent fractional values used for font rendering.
//
// 26 bits represent the integer part of the value, while the remaining 6 bits
// represent the decimal part. With Unit, you are storing 64ths of a pixel. So,
// var pixels Unit = 64 would mean 1 pixel, and 96 would be 1.5 pixels.
type Unit int32

// Converts a [fixed.Int26_6] value to a Unit. No precision is lost.
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }

// Converts the Unit to a [fixed.Int26_6]. No precision is lost.
func (self Unit) Fixed() fixed.Int26_6 { return fixed.Int26_6(self) }

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

func (self Unit) ToFloat32() float32 {
	return float32(self)/64.0
}
