package fontprov

import "math"
import "testing"

func TestGlyphKey(t *testing.T) {
	tests := []struct {
		glyph Glyph
		size  float32
		valid bool
		str   string
	}{
		{ 36, 32, true, "#36@32" },
		{ 0, 12.5, true, "#0@12.5" },
		{ 7, 0, false, "#7@0" },
		{ 7, -1, false, "#7@-1" },
		{ 7, float32(math.Inf(1)), false, "#7@+Inf" },
		{ 7, float32(math.NaN()), false, "#7@NaN" },
		{ math.MaxUint32, 0.25, true, "#4294967295@0.25" },
	}
	for _, test := range tests {
		key := NewGlyphKey(test.glyph, test.size)
		if key.Glyph != test.glyph { t.Fatalf("expected glyph %d, got %d", test.glyph, key.Glyph) }
		if key.ValidSize() != test.valid {
			t.Fatalf("%s: expected ValidSize() == %t", key, test.valid)
		}
		if key.String() != test.str {
			t.Fatalf("expected %q, got %q", test.str, key.String())
		}
	}

	if NewGlyphKey(3, 16) != NewGlyphKey(3, 16) { t.Fatal("equal keys must compare equal") }
	if NewGlyphKey(3, 16) == NewGlyphKey(3, 16.5) { t.Fatal("keys with different sizes must differ") }
}

func TestMetricsArea(t *testing.T) {
	if (Metrics{ Width: 3, Height: 7 }).Area() != 21 { t.Fatal("bad area") }
	if (Metrics{ Width: 3 }).Area() != 0 { t.Fatal("bad area") }
}

func TestPixelType(t *testing.T) {
	if PixelAlpha.BytesPerPixel() != 1 || PixelRGBA.BytesPerPixel() != 4 {
		t.Fatal("unexpected bytes per pixel")
	}
	if PixelAlpha.String() != "Alpha" || PixelRGBA.String() != "RGBA" || PixelType(9).String() != "UnknownPixelType" {
		t.Fatal("unexpected pixel type strings")
	}

	defer func() {
		if recover() == nil { t.Fatal("expected panic on invalid pixel type") }
	}()
	_ = PixelType(9).BytesPerPixel()
}
