package fontprov

// Provider is the capability interface that every font engine adapter
// must satisfy. Text layout code talks to providers only, so fonts
// backed by different engines can be mixed freely.
//
// Providers are stateless with respect to glyph requests: each method is
// a pure function of the font data and its arguments, and all methods
// are safe for concurrent use.
type Provider interface {
	// Returns a nominal line width hint at the given size. Many engines
	// don't have such a concept and return 0, which must be interpreted
	// as "unsupported" rather than as a zero width.
	LineWidth(size float32) float32

	// Returns the vertical advance between consecutive baselines at the
	// given size (ascent - descent + line gap). For well-formed fonts,
	// the value never decreases as the size increases.
	LineHeight(size float32) float32

	// Returns whether the provider can lay out text top-to-bottom. When
	// false, Metrics.BearingY and Metrics.AdvanceY are always zero.
	SupportsVertical() bool

	// Returns the pixel format of the buffers returned by Rasterize().
	PixelType() PixelType

	// Appends one glyph per rune in the given text to dst, in order,
	// and returns the extended slice. No shaping or ligature substitution
	// is done at this level. Runes not present in the font are mapped to
	// the notdef glyph. The given dst is never cleared.
	AppendGlyphs(dst []Glyph, text string) []Glyph

	// Computes the metrics of the glyph at the size indicated by the key.
	// Glyphs without a renderable shape return a [*GlyphError] wrapping
	// [ErrEmptyGlyph], [ErrInvalidGlyph] or [ErrUnsupportedGlyph].
	Metrics(key GlyphKey) (Metrics, error)

	// Rasterizes the glyph at the size indicated by the key. The result
	// is a row-major buffer starting at the top-left corner, with exactly
	// Width*Height*PixelType().BytesPerPixel() bytes for the Width and
	// Height that Metrics() reports for the same key. Fails in the same
	// cases as Metrics().
	Rasterize(key GlyphKey) ([]byte, error)

	// Returns the horizontal adjustment to apply between glyph a followed
	// by glyph b at the given size. The boolean is false when the font
	// has no kerning data at all, which is different from an adjustment
	// of exactly zero. Kerning is not symmetric.
	Kerning(a, b Glyph, size float32) (float32, bool)
}
