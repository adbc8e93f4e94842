package font

import "os"
import "io"
import "io/fs"
import "errors"
import "fmt"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/fontprov"

// Parses the given font data with the given backend and returns the
// resulting provider along the font name. The bytes must not be
// modified while the font is in use.
//
// The name is always read from the 'name' table through
// [golang.org/x/image/font/sfnt], whatever the backend, so the same
// file gets the same name on every engine.
//
// This is a low level function; you may prefer to use a
// [Library] instead.
func ParseFromBytes(fontBytes []byte, backend Backend) (fontprov.Provider, string, error) {
	sfntFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", fmt.Errorf("font: %w", err) }
	fontName, err := GetName(sfntFont)
	if err != nil { return nil, "", err }

	provider, err := backend.newProvider(fontBytes)
	if err != nil { return nil, fontName, err }
	fontprov.Logger().Debug("font: parsed", "name", fontName, "backend", backend.String())
	return provider, fontName, nil
}

// Attempts to parse a font located the given filepath and returns it
// along its name and any possible error. Supported formats are .ttf
// and .otf.
//
// This is a low level function; you may prefer to use a
// [Library] instead.
func ParseFromPath(path string, backend Backend) (fontprov.Provider, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseFontFileAndClose(file, backend)
}

// Same as [ParseFromPath](), but for embedded filesystems.
//
// This is a low level function; you may prefer to use a
// [Library] instead.
func ParseFromFS(filesys fs.FS, path string, backend Backend) (fontprov.Provider, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseFontFileAndClose(file, backend)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser, backend Backend) (fontprov.Provider, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil { return nil, "", err }
	return ParseFromBytes(fontBytes, backend)
}

// Whether font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path) - 4] == '.'
}
