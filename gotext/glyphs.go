package gotext

import "image"
import "math"

import "github.com/go-text/typesetting/font"
import ot "github.com/go-text/typesetting/font/opentype"

import "github.com/tinne26/fontprov"
import "github.com/tinne26/fontprov/raster"

// Metrics of a scaled glyph other than its bitmap box, in pixels.
type glyphAdvance struct {
	bearingX float32
	advanceX float32
	bearingY float32
	advanceY float32
}

// Loads the outline of the glyph at the key size into s.outline,
// scaled to pixels and flipped so y grows downwards, with the glyph
// origin at (0, 0).
func (self *Font) scaledGlyph(s *scratch, key fontprov.GlyphKey) (glyphAdvance, error) {
	if !key.ValidSize() {
		return glyphAdvance{}, fontprov.NewGlyphError(key, fontprov.ErrInvalidSize)
	}
	if key.Glyph > 0xFFFF || (self.numGlyphs > 0 && int(key.Glyph) >= self.numGlyphs) {
		return glyphAdvance{}, fontprov.NewGlyphError(key, fontprov.ErrInvalidGlyph)
	}

	face := font.NewFace(self.font)
	gid := font.GID(key.Glyph)
	var outline font.GlyphOutline
	switch data := face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		outline = data
	case nil: // engine failure, glyph out of range
		return glyphAdvance{}, fontprov.NewGlyphError(key, fontprov.ErrInvalidGlyph)
	default: // bitmaps and SVG documents
		return glyphAdvance{}, fontprov.NewGlyphError(key, fontprov.ErrUnsupportedGlyph)
	}

	scale := self.scale(key.Size())
	s.outline.Reset()
	appendSegments(&s.outline, outline.Segments, scale)

	var advance glyphAdvance
	advance.advanceX = float32(math.Abs(float64(face.HorizontalAdvance(gid))))*scale
	advance.advanceY = float32(math.Abs(float64(face.VerticalAdvance(gid))))*scale
	if s.outline.Drawable() {
		minX, minY, _, _ := s.outline.Bounds()
		advance.bearingX = minX
		if extents, ok := face.FontHExtents(); ok {
			advance.bearingY = extents.Ascender*scale + minY
		}
	}
	return advance, nil
}

// Converts outline segments in font units (y up) to pixels (y down).
func appendSegments(outline *raster.Outline, segments []ot.Segment, scale float32) {
	for _, segment := range segments {
		args := segment.Args
		switch segment.Op {
		case ot.SegmentOpMoveTo:
			outline.MoveTo(args[0].X*scale, -args[0].Y*scale)
		case ot.SegmentOpLineTo:
			outline.LineTo(args[0].X*scale, -args[0].Y*scale)
		case ot.SegmentOpQuadTo:
			outline.QuadTo(
				args[0].X*scale, -args[0].Y*scale,
				args[1].X*scale, -args[1].Y*scale,
			)
		case ot.SegmentOpCubeTo:
			outline.CubeTo(
				args[0].X*scale, -args[0].Y*scale,
				args[1].X*scale, -args[1].Y*scale,
				args[2].X*scale, -args[2].Y*scale,
			)
		default:
			panic("unexpected segment.Op case")
		}
	}
}

func glyphBox(s *scratch, key fontprov.GlyphKey) (image.Rectangle, error) {
	rect, ok := s.outline.PixelBounds()
	if !ok { return rect, fontprov.NewGlyphError(key, fontprov.ErrEmptyGlyph) }
	return rect, nil
}

// Satisfies the [fontprov.Provider] interface. Glyphs without
// outline fail with [fontprov.ErrEmptyGlyph], but the returned
// metrics still include their advances.
func (self *Font) Metrics(key fontprov.GlyphKey) (fontprov.Metrics, error) {
	s := self.scratchPool.Get().(*scratch)
	defer self.scratchPool.Put(s)

	advance, err := self.scaledGlyph(s, key)
	if err != nil {
		fontprov.Logger().Debug("gotext: glyph metrics unavailable", "key", key, "err", err)
		return fontprov.Metrics{}, err
	}
	metrics := fontprov.Metrics{
		BearingX: advance.bearingX, AdvanceX: advance.advanceX,
		BearingY: advance.bearingY, AdvanceY: advance.advanceY,
	}
	rect, err := glyphBox(s, key)
	if err != nil { return metrics, err }

	metrics.X = int32(rect.Min.X)
	metrics.Y = int32(rect.Min.Y)
	metrics.Width  = uint32(rect.Dx())
	metrics.Height = uint32(rect.Dy())
	return metrics, nil
}

// Satisfies the [fontprov.Provider] interface.
func (self *Font) Rasterize(key fontprov.GlyphKey) ([]byte, error) {
	s := self.scratchPool.Get().(*scratch)
	defer self.scratchPool.Put(s)

	if _, err := self.scaledGlyph(s, key); err != nil {
		fontprov.Logger().Debug("gotext: glyph not rasterized", "key", key, "err", err)
		return nil, err
	}
	rect, err := glyphBox(s, key)
	if err != nil { return nil, err }

	width := rect.Dx()
	mask := make([]byte, width*rect.Dy())
	s.rasterizer.Rasterize(&s.outline, rect, func(x, y int, coverage float64) {
		mask[y*width + x] = fontprov.Quantize(coverage)
	})
	return mask, nil
}
