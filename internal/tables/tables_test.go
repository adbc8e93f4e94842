package tables

import "encoding/binary"
import "testing"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/sfnt"

// Returns the tags in the raw table directory of the given font data.
func rawTags(data []byte) []string {
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	tags := make([]string, 0, numTables)
	for i := 0; i < numTables; i++ {
		start := 12 + i*16
		tags = append(tags, string(data[start : start + 4]))
	}
	return tags
}

// Returns a copy of the font data with the given table tag renamed.
func renameTable(data []byte, from, to string) []byte {
	clone := append([]byte(nil), data...)
	for i, tag := range rawTags(clone) {
		if tag == from {
			copy(clone[12 + i*16:], to)
		}
	}
	return clone
}

func TestHasKerning(t *testing.T) {
	expected := false
	for _, tag := range rawTags(goregular.TTF) {
		if tag == "kern" || tag == "kerx" || tag == "GPOS" { expected = true }
	}

	got, err := HasKerning(goregular.TTF)
	if err != nil { t.Fatal(err) }
	if got != expected {
		t.Fatalf("expected HasKerning() = %t, got %t", expected, got)
	}

	// decrementing the last tag byte keeps the directory sorted
	stripped := goregular.TTF
	for _, tag := range kerningTags {
		stripped = renameTable(stripped, tag, tag[:3] + string(rune(tag[3] - 1)))
	}
	got, err = HasKerning(stripped)
	if err != nil { t.Fatal(err) }
	if got {
		t.Fatal("expected no kerning after renaming kerning tables")
	}
}

func TestHasKerningInvalidData(t *testing.T) {
	_, err := HasKerning([]byte("definitely not a font"))
	if err == nil { t.Fatal("expected error on invalid font data") }
}

func TestDirectory(t *testing.T) {
	entries, err := Directory(goregular.TTF)
	if err != nil { t.Fatal(err) }

	found := make(map[string]bool)
	for i, entry := range entries {
		if i > 0 && entries[i - 1].Tag >= entry.Tag {
			t.Fatalf("entries not sorted: %q before %q", entries[i - 1].Tag, entry.Tag)
		}
		found[entry.Tag] = true
	}
	for _, required := range []string{"cmap", "head", "hmtx", "glyf"} {
		if !found[required] { t.Fatalf("table %q missing from directory", required) }
	}
}

func TestNumGlyphs(t *testing.T) {
	numGlyphs, err := NumGlyphs(goregular.TTF)
	if err != nil { t.Fatal(err) }

	sfntFont, err := sfnt.Parse(goregular.TTF)
	if err != nil { t.Fatal(err) }
	if numGlyphs != sfntFont.NumGlyphs() {
		t.Fatalf("expected %d glyphs, got %d", sfntFont.NumGlyphs(), numGlyphs)
	}
}
