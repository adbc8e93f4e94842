package font

import "strings"
import "testing"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/sfnt"

func TestGetProperties(t *testing.T) {
	sfntFont, err := sfnt.Parse(goregular.TTF)
	if err != nil { t.Fatal(err) }

	value, err := GetProperty(sfntFont, 999)
	if err != ErrNotFound {
		t.Fatalf("GetProperty(font, 999) error: %v", err)
	}
	if value != "" {
		t.Fatalf("GetProperty(font, 999) value = \"%s\"", value)
	}

	name, err := GetName(sfntFont)
	if err != nil { t.Fatal(err) }
	if name != testNameRegular { t.Fatalf("unexpected name %q", name) }
	family, err := GetFamily(sfntFont)
	if err != nil { t.Fatal(err) }
	if !strings.Contains(name, family) {
		t.Fatalf("expected font name (%s) to contain font family (%s)", name, family)
	}
	subfamily, err := GetSubfamily(sfntFont)
	if err != nil { t.Fatal(err) }
	if subfamily != "Regular" {
		t.Fatalf("expected Regular subfamily, got %s", subfamily)
	}
	ident, err := GetIdentifier(sfntFont)
	if err != nil { t.Fatal(err) }
	ident2, err := GetIdentifier(sfntFont)
	if err != nil || ident2 != ident { t.Fatalf("identifier changed: %q vs %q (%v)", ident, ident2, err) }
}

func TestGetMissingRunes(t *testing.T) {
	for _, backend := range testBackends {
		provider, _, err := ParseFromBytes(goregular.TTF, backend)
		if err != nil { t.Fatal(err) }

		tests := []struct{ text string; missing int }{
			{ "", 0 },
			{ " ", 0 },
			{ "\U0001F600", 1 },
			{ " \U0001F600 \U0001F600\U0001F600    ", 3 },
		}
		for _, test := range tests {
			missing := GetMissingRunes(provider, test.text)
			if len(missing) != test.missing {
				t.Fatalf("%s, %q: expected %d missing runes, got %v", backend, test.text, test.missing, missing)
			}
			for _, r := range missing {
				if r != '\U0001F600' { t.Fatalf("%s: unexpected missing rune %q", backend, r) }
			}
		}
	}
}
