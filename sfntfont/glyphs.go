package sfntfont

import "errors"
import "fmt"
import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/fontprov"
import "github.com/tinne26/fontprov/fract"
import "github.com/tinne26/fontprov/raster"

// Converts a size in pixels per em to the 26.6 ppem used by the
// engine. Valid sizes below 1/64 are raised to 1/64.
func toPPEM(size float32) (fixed.Int26_6, bool) {
	if !fontprov.ValidSize(size) { return 0, false }
	ppem := max(fract.FromFloat32(size), 1)
	return ppem.Fixed(), true
}

// Horizontal metrics of a scaled glyph, in pixels.
type glyphAdvance struct {
	bearingX float32
	advanceX float32
}

// Loads the outline of the glyph at the key size into s.outline,
// positioned with its origin at (0, 0), and returns its horizontal
// metrics. Per-glyph failures are returned as [*fontprov.GlyphError].
func (self *Font) scaledGlyph(s *scratch, key fontprov.GlyphKey) (glyphAdvance, error) {
	ppem, ok := toPPEM(key.Size())
	if !ok { return glyphAdvance{}, fontprov.NewGlyphError(key, fontprov.ErrInvalidSize) }
	if uint32(key.Glyph) >= uint32(self.sfnt.NumGlyphs()) {
		return glyphAdvance{}, fontprov.NewGlyphError(key, fontprov.ErrInvalidGlyph)
	}
	index := sfnt.GlyphIndex(key.Glyph)

	// the segments are only valid until the buffer is used
	// again, so we convert them before anything else
	segments, err := self.sfnt.LoadGlyph(&s.buffer, index, ppem, nil)
	if err != nil { return glyphAdvance{}, self.glyphError(key, err) }
	s.outline.Reset()
	appendSegments(&s.outline, segments)

	bounds, advance, err := self.sfnt.GlyphBounds(&s.buffer, index, ppem, self.hinting)
	if err != nil { return glyphAdvance{}, self.glyphError(key, err) }
	return glyphAdvance{
		bearingX: fract.FromFixed(bounds.Min.X).ToFloat32(),
		advanceX: max(fract.FromFixed(advance).ToFloat32(), 0),
	}, nil
}

// Maps engine errors to the fontprov error taxonomy. Other engine
// failures (e.g. malformed outline data) stay in the error chain.
func (self *Font) glyphError(key fontprov.GlyphKey, err error) error {
	switch {
	case errors.Is(err, sfnt.ErrNotFound):
		return fontprov.NewGlyphError(key, fontprov.ErrInvalidGlyph)
	case errors.Is(err, sfnt.ErrColoredGlyph):
		return fontprov.NewGlyphError(key, fontprov.ErrUnsupportedGlyph)
	default:
		return fontprov.NewGlyphError(key, fmt.Errorf("sfntfont: loading glyph: %w", err))
	}
}

// Converts sfnt segments (26.6, y down) to raster outline segments.
func appendSegments(outline *raster.Outline, segments sfnt.Segments) {
	point := func(pt fixed.Point26_6) (float32, float32) {
		return fract.FromFixedPoint(pt).ToFloat32s()
	}

	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			outline.MoveTo(point(segment.Args[0]))
		case sfnt.SegmentOpLineTo:
			outline.LineTo(point(segment.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := point(segment.Args[0])
			x , y  := point(segment.Args[1])
			outline.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			cx1, cy1 := point(segment.Args[0])
			cx2, cy2 := point(segment.Args[1])
			x  , y   := point(segment.Args[2])
			outline.CubeTo(cx1, cy1, cx2, cy2, x, y)
		default:
			panic("unexpected segment.Op case")
		}
	}
}

// Returns the pixel box of the loaded outline, or an ErrEmptyGlyph
// failure if there's nothing to draw.
func glyphBox(s *scratch, key fontprov.GlyphKey) (image.Rectangle, error) {
	rect, ok := s.outline.PixelBounds()
	if !ok { return rect, fontprov.NewGlyphError(key, fontprov.ErrEmptyGlyph) }
	return rect, nil
}

// Satisfies the [fontprov.Provider] interface. Glyphs without
// outline fail with [fontprov.ErrEmptyGlyph], but the returned
// metrics still include their horizontal advance and bearing.
func (self *Font) Metrics(key fontprov.GlyphKey) (fontprov.Metrics, error) {
	s := self.getScratch()
	defer self.putScratch(s)

	advance, err := self.scaledGlyph(s, key)
	if err != nil {
		fontprov.Logger().Debug("sfntfont: glyph metrics unavailable", "key", key, "err", err)
		return fontprov.Metrics{}, err
	}
	metrics := fontprov.Metrics{ BearingX: advance.bearingX, AdvanceX: advance.advanceX }
	rect, err := glyphBox(s, key)
	if err != nil { return metrics, err }

	metrics.X = int32(rect.Min.X)
	metrics.Y = int32(rect.Min.Y)
	metrics.Width  = uint32(rect.Dx())
	metrics.Height = uint32(rect.Dy())
	return metrics, nil
}

// Satisfies the [fontprov.Provider] interface. The returned buffer
// has one coverage byte per pixel, row by row.
func (self *Font) Rasterize(key fontprov.GlyphKey) ([]byte, error) {
	s := self.getScratch()
	defer self.putScratch(s)

	_, err := self.scaledGlyph(s, key)
	if err == nil {
		var rect image.Rectangle
		rect, err = glyphBox(s, key)
		if err == nil {
			width := rect.Dx()
			mask := make([]byte, width*rect.Dy())
			s.rasterizer.Rasterize(&s.outline, rect, func(x, y int, coverage float64) {
				mask[y*width + x] = fontprov.Quantize(coverage)
			})
			return mask, nil
		}
	}

	fontprov.Logger().Debug("sfntfont: glyph not rasterized", "key", key, "err", err)
	return nil, err
}
