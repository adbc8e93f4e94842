package fontprov

import "errors"

// Returns the horizontal advance of the given text at the given size
// when drawn with the given provider, kerning included. This is a plain
// sum over glyph advances and doesn't do any shaping.
//
// Glyphs that fail with [ErrEmptyGlyph] still contribute their advance.
// Any other unrenderable glyph contributes nothing, but doesn't stop the
// measuring process either.
func MeasureString(provider Provider, text string, size float32) float32 {
	var buffer [32]Glyph
	glyphs := provider.AppendGlyphs(buffer[:0], text)

	var width float32
	for i, glyph := range glyphs {
		if i > 0 {
			kern, ok := provider.Kerning(glyphs[i - 1], glyph, size)
			if ok { width += kern }
		}

		metrics, err := provider.Metrics(NewGlyphKey(glyph, size))
		if err != nil && !errors.Is(err, ErrEmptyGlyph) { continue }
		width += metrics.AdvanceX
	}
	return width
}
