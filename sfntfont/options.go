package sfntfont

import "golang.org/x/image/font"

import "github.com/tinne26/fontprov/raster"

// Option configures a [Font] on creation.
type Option func(*Font)

// Sets the constructor for the rasterizers used by [Font.Rasterize].
// Rasterizers are pooled, so the function may be called multiple
// times. The default creates a [raster.VectorRasterizer].
func WithRasterizer(newRasterizer func() raster.Rasterizer) Option {
	return func(f *Font) {
		if newRasterizer != nil { f.newRasterizer = newRasterizer }
	}
}

// Sets the hinting applied to advances, kerning and line metrics.
// Outlines are never hinted. The default is [font.HintingNone].
func WithHinting(hinting font.Hinting) Option {
	return func(f *Font) { f.hinting = hinting }
}

// Forces whether the font is considered to have kerning data. When
// disabled, [Font.Kerning] always reports ok == false. [Parse] detects
// this automatically from the font tables, but [New] can't, so it
// assumes the font has kerning unless this option says otherwise.
func WithKerning(enabled bool) Option {
	return func(f *Font) { f.kerning = enabled }
}
