// fontprov is a font abstraction layer that lets text layout and
// rendering code query glyph shapes, metrics and kerning without
// knowing which font engine is backing a given font.
//
// The central piece is the [Provider] interface. Adapters for concrete
// engines live in subpackages:
//  - sfntfont: the reference adapter over golang.org/x/image/font/sfnt.
//  - gotext: an adapter over github.com/go-text/typesetting.
//
// Typical usage goes like this:
//   provider, name, err := font.ParseFromPath("path/to/font.ttf", font.BackendSfnt)
//   if err != nil { ... }
//   glyphs := provider.AppendGlyphs(nil, "Hello")
//   for _, glyph := range glyphs {
//       key := fontprov.NewGlyphKey(glyph, 32)
//       metrics, err := provider.Metrics(key)
//       if errors.Is(err, fontprov.ErrEmptyGlyph) { continue } // e.g. spaces
//       if err != nil { ... }
//       mask, err := provider.Rasterize(key)
//       ...
//   }
//
// Providers don't cache anything. Rasterized masks and metrics are
// recomputed on every call, so callers are expected to keep their own
// glyph caches or atlases.
package fontprov
