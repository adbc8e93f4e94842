package gotext

import "github.com/go-text/typesetting/language"

import "github.com/tinne26/fontprov/raster"

// Option configures a [Font] on creation.
type Option func(*Font)

// Sets the constructor for the rasterizers used by [Font.Rasterize].
// The default creates a [raster.VectorRasterizer].
func WithRasterizer(newRasterizer func() raster.Rasterizer) Option {
	return func(f *Font) {
		if newRasterizer != nil { f.newRasterizer = newRasterizer }
	}
}

// Forces whether the font is considered to have kerning data.
// [Parse] detects it from the font tables. [New] assumes true.
func WithKerning(enabled bool) Option {
	return func(f *Font) { f.kerning = enabled }
}

// Sets the language used when shaping glyph pairs for kerning
// lookups. Some fonts only kern pairs for specific languages.
// The default is English.
func WithLanguage(lang language.Language) Option {
	return func(f *Font) { f.language = lang }
}
