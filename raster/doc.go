// The raster package turns scaled glyph outlines into coverage values.
//
// Font backends convert their native outlines into an engine-neutral
// [Outline] (float32 pixel coordinates, y growing downwards), position
// it, ask for its [Outline.PixelBounds] and then hand it to a [Rasterizer],
// which reports the coverage of every pixel in the box through a callback.
// Two rasterizers are provided:
//   - [VectorRasterizer], built on [golang.org/x/image/vector].
//   - [EdgeMarker], a readable float64 accumulation rasterizer that
//     anyone can adapt or learn from.
//
// Rasterizers keep scratch buffers between calls, so they can't be used
// concurrently. Pool them if you need to rasterize from multiple goroutines.
package raster
