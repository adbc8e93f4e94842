package fract

import "math"

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	MaxFloat64 float64 = +33554431.984375
	MinFloat64 float64 = -33554432
	HalfDelta float64 = 0.0078125 // 1.0/128.0
)

// Converts a float64 to the closest Unit, rounding up in case
// of ties. Doesn't account for NaNs, infinites nor overflows.
func FromFloat64Up(value float64) Unit {
	unitApprox := Unit(value*64)
	fp64Approx := unitApprox.ToFloat64()
	if fp64Approx == value { return unitApprox }
	if fp64Approx > value {
		unitApprox -= 1
		fp64Approx = unitApprox.ToFloat64()
	}

	if value - fp64Approx >= HalfDelta { unitApprox += 1 }
	return unitApprox
}

// Converts a float64 to the closest Unit, rounding down in case
// of ties. Doesn't account for NaNs, infinites nor overflows.
func FromFloat64Down(value float64) Unit {
	unitApprox := Unit(value*64)
	fp64Approx := unitApprox.ToFloat64()
	if fp64Approx == value { return unitApprox }
	if fp64Approx > value {
		unitApprox -= 1
		fp64Approx = unitApprox.ToFloat64()
	}

	if value - fp64Approx > HalfDelta { unitApprox += 1 }
	return unitApprox
}

// Converts a float64 to the closest Unit, rounding away from
// zero in case of ties. Values out of range are clamped and
// NaNs are converted to zero.
func FromFloat64(value float64) Unit {
	if math.IsNaN(value) { return 0 }
	if value >= MaxFloat64 { return MaxUnit }
	if value <= MinFloat64 { return MinUnit }
	if value >= 0 { return FromFloat64Up(value) }
	return FromFloat64Down(value)
}

// Same as [FromFloat64]() but for float32 values. Glyph sizes
// are converted to 26.6 ppem values with this function.
func FromFloat32(value float32) Unit {
	return FromFloat64(float64(value))
}
