// Package gotext implements [fontprov.Provider] on top of
// [github.com/go-text/typesetting].
//
// Unlike the sfnt adapter, this backend exposes vertical metrics,
// and kerning values are obtained by shaping glyph pairs with the
// HarfBuzz port, so they match what a shaping pipeline would apply.
//
// The parsed font is read-only and shared, while faces, shapers and
// rasterizers are created or pooled per call, so a single [Font] can
// be used from multiple goroutines.
package gotext

import "bytes"
import "fmt"
import "sync"

import "github.com/go-text/typesetting/font"
import "github.com/go-text/typesetting/language"
import "github.com/go-text/typesetting/shaping"

import "github.com/tinne26/fontprov"
import "github.com/tinne26/fontprov/internal/tables"
import "github.com/tinne26/fontprov/raster"

var _ fontprov.Provider = (*Font)(nil)

// A [fontprov.Provider] backed by a go-text [*font.Font].
type Font struct {
	font *font.Font
	upem float32
	numGlyphs int // zero when unknown
	kerning bool
	language language.Language
	newRasterizer func() raster.Rasterizer

	scratchPool sync.Pool
	shaperPool  sync.Pool

	reverseOnce sync.Once
	reverse map[fontprov.Glyph]rune // glyph to first rune mapping to it
}

type scratch struct {
	outline raster.Outline
	rasterizer raster.Rasterizer
}

// Creates a new font from an already parsed [*font.Font]. The font
// is assumed to have kerning data unless [WithKerning](false) is
// passed.
func New(goTextFont *font.Font, opts ...Option) *Font {
	if goTextFont == nil { panic("nil font.Font") }
	f := &Font{
		font: goTextFont,
		upem: float32(goTextFont.Upem()),
		kerning: true,
		language: language.NewLanguage("en"),
		newRasterizer: func() raster.Rasterizer { return &raster.VectorRasterizer{} },
	}
	if f.upem <= 0 { f.upem = 1000 }
	for _, opt := range opts { opt(f) }

	f.scratchPool.New = func() any {
		return &scratch{ rasterizer: f.newRasterizer() }
	}
	f.shaperPool.New = func() any {
		return &shaping.HarfbuzzShaper{}
	}
	return f
}

// Parses the given font data. The data must not be modified
// while the font is in use.
func Parse(data []byte, opts ...Option) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil { return nil, fmt.Errorf("gotext: parsing font: %w", err) }

	hasKerning, err := tables.HasKerning(data)
	if err != nil {
		fontprov.Logger().Warn("gotext: can't probe kerning tables", "err", err)
		hasKerning = true
	}

	opts = append([]Option{ WithKerning(hasKerning) }, opts...)
	f := New(face.Font, opts...)
	numGlyphs, err := tables.NumGlyphs(data)
	if err != nil {
		fontprov.Logger().Warn("gotext: can't read glyph count", "err", err)
	} else {
		f.numGlyphs = numGlyphs
	}
	return f, nil
}

// Returns the underlying go-text font.
func (self *Font) GoText() *font.Font { return self.font }

// Returns the scale factor from font units to pixels at the given size.
func (self *Font) scale(size float32) float32 {
	return size/self.upem
}

// Satisfies the [fontprov.Provider] interface. Always 0, as the
// backend doesn't expose a line width hint.
func (self *Font) LineWidth(size float32) float32 { return 0 }

// Satisfies the [fontprov.Provider] interface. Returns 0 for invalid
// sizes or when the font has no horizontal extents.
func (self *Font) LineHeight(size float32) float32 {
	if !fontprov.ValidSize(size) { return 0 }
	extents, ok := font.NewFace(self.font).FontHExtents()
	if !ok { return 0 }
	return (extents.Ascender - extents.Descender + extents.LineGap)*self.scale(size)
}

// Satisfies the [fontprov.Provider] interface.
func (self *Font) SupportsVertical() bool { return true }

// Satisfies the [fontprov.Provider] interface.
func (self *Font) PixelType() fontprov.PixelType { return fontprov.PixelAlpha }

// Satisfies the [fontprov.Provider] interface.
func (self *Font) AppendGlyphs(dst []fontprov.Glyph, text string) []fontprov.Glyph {
	for _, codePoint := range text {
		gid, found := self.font.NominalGlyph(codePoint)
		if !found { gid = 0 }
		dst = append(dst, fontprov.Glyph(gid))
	}
	return dst
}
