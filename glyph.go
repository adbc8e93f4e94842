package fontprov

import "math"
import "strconv"

// An opaque, backend-specific glyph identifier. Glyphs are only
// meaningful for the font that produced them.
type Glyph uint32

// NotdefGlyph is the glyph used by sfnt-based fonts for runes they
// can't represent.
const NotdefGlyph Glyph = 0

// Returns a textual representation of the glyph (e.g.: "#36").
func (self Glyph) String() string {
	return "#" + strconv.FormatUint(uint64(self), 10)
}

// GlyphKey combines a [Glyph] with a rendering size. It's the key
// used to address metrics and rasterization requests. Equal keys
// always produce identical results.
type GlyphKey struct {
	Glyph Glyph
	size  float32
}

// Creates a new [GlyphKey]. The size is expressed in pixels per em
// and must be positive. Invalid sizes are not rejected here, but
// providers will fail with [ErrInvalidSize] when receiving them.
func NewGlyphKey(glyph Glyph, size float32) GlyphKey {
	return GlyphKey{ Glyph: glyph, size: size }
}

// Returns the size of the key, in pixels per em.
func (self GlyphKey) Size() float32 { return self.size }

// Returns whether the key size is finite and strictly positive.
func (self GlyphKey) ValidSize() bool {
	return ValidSize(self.size)
}

// Returns a textual representation of the key (e.g.: "#36@32").
func (self GlyphKey) String() string {
	return self.Glyph.String() + "@" + strconv.FormatFloat(float64(self.size), 'f', -1, 32)
}

// Returns whether the given size is finite and strictly positive.
func ValidSize(size float32) bool {
	return size > 0 && !math.IsInf(float64(size), 1)
}

// Metrics describes the geometry of a glyph at a specific size.
//
// X and Y are the offsets from the glyph origin (pen position on the
// baseline) to the top-left corner of the rasterized bitmap, in pixels,
// with y growing downwards. Width and Height are the exact dimensions
// of the bitmap returned by [Provider.Rasterize] for the same key.
//
// Bearings and advances are expressed in pixels. Advances are never
// negative. The vertical values are only meaningful for providers where
// [Provider.SupportsVertical] returns true; otherwise they are zero.
type Metrics struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32

	BearingX float32
	AdvanceX float32
	BearingY float32
	AdvanceY float32
}

// Returns the amount of pixels in the glyph bitmap.
func (self Metrics) Area() int {
	return int(self.Width)*int(self.Height)
}

// The pixel format used by a provider's rasterized buffers. The
// format is fixed per font, not per glyph.
type PixelType uint8
const (
	PixelAlpha PixelType = iota // single channel coverage, one byte per pixel
	PixelRGBA                   // premultiplied color, four bytes per pixel
)

// Returns the number of bytes each pixel takes.
func (self PixelType) BytesPerPixel() int {
	switch self {
	case PixelAlpha: return 1
	case PixelRGBA: return 4
	default:
		panic("invalid PixelType " + strconv.Itoa(int(self)))
	}
}

func (self PixelType) String() string {
	switch self {
	case PixelAlpha: return "Alpha"
	case PixelRGBA: return "RGBA"
	default:
		return "UnknownPixelType"
	}
}
