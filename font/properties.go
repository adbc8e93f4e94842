package font

import "errors"
import "sync"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/fontprov"

var ErrNotFound = errors.New("font property not found or empty")

// sfnt.Buffer values can't be used concurrently, so property
// lookups borrow them from a pool.
var bufferPool = sync.Pool{
	New: func() any { return &sfnt.Buffer{} },
}

// Returns the requested font property for the given font.
// The returned property string might be empty even when error is nil.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	str, err := font.Name(buffer, property)
	bufferPool.Put(buffer)
	if errors.Is(err, sfnt.ErrNotFound) { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font. If the information is
// missing, [ErrNotFound] will be returned. Other errors are also
// possible (e.g., if the font naming table is invalid).
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font (e.g. "Regular",
// "Bold Italic").
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font. This is the name used
// to identify fonts in a [Library].
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the unique identifier of the given font.
func GetIdentifier(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDUniqueIdentifier)
}

// Returns the runes in the given text that the provider maps to the
// notdef glyph. If runes are repeated in the input text, the returned
// slice may contain them multiple times too.
//
// If you load fonts dynamically, it is good practice to use this function
// to make sure that the fonts include all the glyphs that you require.
func GetMissingRunes(provider fontprov.Provider, text string) []rune {
	var buffer [64]fontprov.Glyph
	glyphs := provider.AppendGlyphs(buffer[:0], text)

	var missing []rune
	i := 0
	for _, codePoint := range text {
		if glyphs[i] == fontprov.NotdefGlyph {
			missing = append(missing, codePoint)
		}
		i += 1
	}
	return missing
}
