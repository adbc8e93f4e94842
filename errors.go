package fontprov

import "errors"

// Sentinel errors for glyph requests. Providers never return them
// directly; they are wrapped in a [*GlyphError] so callers know which
// key failed. Use [errors.Is] to check the kind.
var (
	// The glyph exists but has no outline to draw (e.g. whitespace).
	// Callers typically skip drawing and only apply the advance.
	ErrEmptyGlyph = errors.New("fontprov: glyph has no shape")

	// The glyph identifier is out of range for the font. Callers may
	// want to substitute the notdef glyph.
	ErrInvalidGlyph = errors.New("fontprov: invalid glyph")

	// The glyph data exists but the backend can't draw it as a coverage
	// mask (e.g. bitmap strikes or SVG glyphs).
	ErrUnsupportedGlyph = errors.New("fontprov: unsupported glyph data")

	// The key size is not finite and strictly positive.
	ErrInvalidSize = errors.New("fontprov: invalid glyph size")
)

// GlyphError is the typed failure returned by [Provider.Metrics] and
// [Provider.Rasterize] when a glyph can't be rendered. Failures are
// deterministic for a given key, so retrying is pointless.
type GlyphError struct {
	Glyph Glyph
	Size  float32
	Err   error
}

// Creates a [*GlyphError] for the given key and cause.
func NewGlyphError(key GlyphKey, err error) *GlyphError {
	return &GlyphError{ Glyph: key.Glyph, Size: key.Size(), Err: err }
}

func (self *GlyphError) Error() string {
	return self.Err.Error() + " (glyph " + NewGlyphKey(self.Glyph, self.Size).String() + ")"
}

func (self *GlyphError) Unwrap() error { return self.Err }

// Returns whether the error is a per-glyph failure that should not
// abort the processing of a whole string. Empty glyphs are included.
func IsUnrenderable(err error) bool {
	var glyphErr *GlyphError
	return errors.As(err, &glyphErr)
}
