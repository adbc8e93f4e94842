package main

import "errors"
import "fmt"
import "io"
import "strings"

import "github.com/tinne26/fontprov"

// Characters used for the previews, from lowest to highest coverage.
const shades = " .:-=+*#%@"

type dumper struct {
	out io.Writer
	preview bool
}

// Prints the information of every glyph in the text. Unrenderable
// glyphs are reported and skipped.
func (self *dumper) Dump(provider fontprov.Provider, text string, size float32) {
	fmt.Fprintf(self.out, "size %v: line height %.3f, line width %.3f, vertical %t, pixels %s\n",
		size, provider.LineHeight(size), provider.LineWidth(size),
		provider.SupportsVertical(), provider.PixelType())
	fmt.Fprintf(self.out, "measured width %.3f\n", fontprov.MeasureString(provider, text, size))

	glyphs := provider.AppendGlyphs(nil, text)
	i := 0
	for _, codePoint := range text {
		glyph := glyphs[i]
		if i > 0 {
			kern, ok := provider.Kerning(glyphs[i - 1], glyph, size)
			if ok {
				fmt.Fprintf(self.out, "kerning %s -> %s: %.3f\n", glyphs[i - 1], glyph, kern)
			} else {
				fmt.Fprintf(self.out, "kerning %s -> %s: no data\n", glyphs[i - 1], glyph)
			}
		}
		self.dumpGlyph(provider, codePoint, fontprov.NewGlyphKey(glyph, size))
		i += 1
	}
}

func (self *dumper) dumpGlyph(provider fontprov.Provider, codePoint rune, key fontprov.GlyphKey) {
	metrics, err := provider.Metrics(key)
	if errors.Is(err, fontprov.ErrEmptyGlyph) {
		fmt.Fprintf(self.out, "%q %s: empty, advance %.3f\n", codePoint, key, metrics.AdvanceX)
		return
	}
	if err != nil {
		fmt.Fprintf(self.out, "%q %s: skipped (%s)\n", codePoint, key, err)
		return
	}
	fmt.Fprintf(self.out, "%q %s: box (%d, %d) %dx%d, bearing (%.3f, %.3f), advance (%.3f, %.3f)\n",
		codePoint, key, metrics.X, metrics.Y, metrics.Width, metrics.Height,
		metrics.BearingX, metrics.BearingY, metrics.AdvanceX, metrics.AdvanceY)
	if !self.preview { return }

	mask, err := provider.Rasterize(key)
	if err != nil {
		fmt.Fprintf(self.out, "  rasterization failed (%s)\n", err)
		return
	}
	bpp := provider.PixelType().BytesPerPixel()
	fmt.Fprint(self.out, asciiPreview(mask, int(metrics.Width), bpp))
}

// Converts a mask to ASCII art, one line per row. For multi-byte
// pixels, only the last byte (alpha) is considered.
func asciiPreview(mask []byte, width, bytesPerPixel int) string {
	if width <= 0 { return "" }
	var builder strings.Builder
	stride := width*bytesPerPixel
	for row := 0; row + stride <= len(mask); row += stride {
		builder.WriteString("  |")
		for x := 0; x < width; x++ {
			value := int(mask[row + x*bytesPerPixel + bytesPerPixel - 1])
			builder.WriteByte(shades[value*(len(shades) - 1)/255])
		}
		builder.WriteString("|\n")
	}
	return builder.String()
}
