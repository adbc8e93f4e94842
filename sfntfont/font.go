// Package sfntfont implements [fontprov.Provider] on top of
// [golang.org/x/image/font/sfnt], supporting TrueType and
// OpenType (CFF) fonts.
//
// The font data is immutable after parsing, and all the scratch
// state needed by the engine (sfnt buffers, outlines, rasterizers)
// is pooled, so a single [Font] can be used from multiple goroutines.
package sfntfont

import "errors"
import "fmt"
import "sync"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/fontprov"
import "github.com/tinne26/fontprov/fract"
import "github.com/tinne26/fontprov/internal/tables"
import "github.com/tinne26/fontprov/raster"

var _ fontprov.Provider = (*Font)(nil)

// A [fontprov.Provider] backed by an [*sfnt.Font].
type Font struct {
	sfnt *sfnt.Font
	hinting font.Hinting
	kerning bool
	newRasterizer func() raster.Rasterizer
	scratchPool sync.Pool
}

// Per-call engine state.
type scratch struct {
	buffer sfnt.Buffer
	outline raster.Outline
	rasterizer raster.Rasterizer
}

// Creates a new font from an already parsed [*sfnt.Font]. Since the
// raw tables are not available, the font is assumed to have kerning
// data unless [WithKerning](false) is passed.
func New(sfntFont *sfnt.Font, opts ...Option) *Font {
	if sfntFont == nil { panic("nil sfnt.Font") }
	f := &Font{
		sfnt: sfntFont,
		hinting: font.HintingNone,
		kerning: true,
		newRasterizer: func() raster.Rasterizer { return &raster.VectorRasterizer{} },
	}
	for _, opt := range opts { opt(f) }
	f.scratchPool.New = func() any {
		return &scratch{ rasterizer: f.newRasterizer() }
	}
	return f
}

// Parses the given TrueType or OpenType font data. The data must not
// be modified while the font is in use.
func Parse(data []byte, opts ...Option) (*Font, error) {
	sfntFont, err := sfnt.Parse(data)
	if err != nil { return nil, fmt.Errorf("sfntfont: parsing font: %w", err) }

	hasKerning, err := tables.HasKerning(data)
	if err != nil {
		// let the engine decide on each lookup instead
		fontprov.Logger().Warn("sfntfont: can't probe kerning tables", "err", err)
		hasKerning = true
	}

	opts = append([]Option{ WithKerning(hasKerning) }, opts...)
	return New(sfntFont, opts...), nil
}

// Returns the underlying [*sfnt.Font].
func (self *Font) Sfnt() *sfnt.Font { return self.sfnt }

// Returns the number of glyphs in the font.
func (self *Font) NumGlyphs() int { return self.sfnt.NumGlyphs() }

func (self *Font) getScratch() *scratch {
	return self.scratchPool.Get().(*scratch)
}

func (self *Font) putScratch(s *scratch) {
	s.outline.Reset()
	self.scratchPool.Put(s)
}

// Satisfies the [fontprov.Provider] interface. The sfnt engine
// doesn't expose a line width hint, so this is always 0.
func (self *Font) LineWidth(size float32) float32 { return 0 }

// Satisfies the [fontprov.Provider] interface. Returns 0 for
// invalid sizes or fonts with broken metric tables.
func (self *Font) LineHeight(size float32) float32 {
	ppem, ok := toPPEM(size)
	if !ok { return 0 }

	s := self.getScratch()
	defer self.putScratch(s)
	metrics, err := self.sfnt.Metrics(&s.buffer, ppem, self.hinting)
	if err != nil {
		fontprov.Logger().Debug("sfntfont: font metrics unavailable", "size", size, "err", err)
		return 0
	}
	return fract.FromFixed(metrics.Height).ToFloat32()
}

// Satisfies the [fontprov.Provider] interface. The sfnt engine
// doesn't expose vertical metrics.
func (self *Font) SupportsVertical() bool { return false }

// Satisfies the [fontprov.Provider] interface.
func (self *Font) PixelType() fontprov.PixelType { return fontprov.PixelAlpha }

// Satisfies the [fontprov.Provider] interface.
func (self *Font) AppendGlyphs(dst []fontprov.Glyph, text string) []fontprov.Glyph {
	s := self.getScratch()
	defer self.putScratch(s)
	for _, codePoint := range text {
		index, err := self.sfnt.GlyphIndex(&s.buffer, codePoint)
		if err != nil {
			fontprov.Logger().Debug("sfntfont: glyph index lookup failed", "rune", codePoint, "err", err)
			index = 0
		}
		dst = append(dst, fontprov.Glyph(index))
	}
	return dst
}

// Satisfies the [fontprov.Provider] interface. Returns ok == false
// when the font has no kerning tables, a glyph is out of range or the
// lookup fails. Pairs without an entry in the tables report (0, true).
func (self *Font) Kerning(a, b fontprov.Glyph, size float32) (float32, bool) {
	if !self.kerning { return 0, false }
	ppem, ok := toPPEM(size)
	if !ok { return 0, false }
	numGlyphs := uint32(self.sfnt.NumGlyphs())
	if uint32(a) >= numGlyphs || uint32(b) >= numGlyphs { return 0, false }

	s := self.getScratch()
	defer self.putScratch(s)
	kern, err := self.sfnt.Kern(&s.buffer, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), ppem, self.hinting)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) { return 0, true } // unkerned pair
		fontprov.Logger().Debug("sfntfont: kerning lookup failed", "a", a, "b", b, "err", err)
		return 0, false
	}
	return fract.FromFixed(kern).ToFloat32(), true
}
