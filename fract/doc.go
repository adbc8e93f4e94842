// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, alongside a [Point] helper type.
//
// Font engines like golang.org/x/image/font/sfnt work with 26.6 fixed
// point values for glyph sizes, outline coordinates, advances and
// kerning. Providers receive float32 sizes, so this package is used
// at the boundary to convert sizes into engine units and engine results
// back into pixel floats, with explicit rounding directions.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
