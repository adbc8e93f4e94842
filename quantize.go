package fontprov

// Converts a normalized coverage value to a byte. Values are clamped
// to [0, 1] and then multiplied by 255 and truncated, not rounded, so
// 0.999 gives 254. All providers use this same policy, which keeps
// outputs byte-comparable across backends sharing a rasterizer.
func Quantize(coverage float64) uint8 {
	if !(coverage > 0) { return 0 } // also catches NaNs
	if coverage >= 1 { return 255 }
	return uint8(coverage*255)
}
