package font

import "fmt"

import "github.com/tinne26/fontprov"
import "github.com/tinne26/fontprov/gotext"
import "github.com/tinne26/fontprov/sfntfont"

// Backend identifies the font engine used to create providers.
type Backend uint8
const (
	BackendSfnt   Backend = iota // golang.org/x/image/font/sfnt, see [sfntfont]
	BackendGoText                // github.com/go-text/typesetting, see [gotext]
)

// Returns the backend name, as accepted by [ParseBackend].
func (self Backend) String() string {
	switch self {
	case BackendSfnt: return "sfnt"
	case BackendGoText: return "gotext"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(self))
	}
}

// Returns the backend with the given name ("sfnt" or "gotext").
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "sfnt": return BackendSfnt, nil
	case "gotext", "go-text": return BackendGoText, nil
	default:
		return 0, fmt.Errorf("font: unknown backend %q", name)
	}
}

func (self Backend) newProvider(data []byte) (fontprov.Provider, error) {
	switch self {
	case BackendSfnt:
		provider, err := sfntfont.Parse(data)
		if err != nil { return nil, err } // (typed nil pointers must not leak)
		return provider, nil
	case BackendGoText:
		provider, err := gotext.Parse(data)
		if err != nil { return nil, err }
		return provider, nil
	default:
		return nil, fmt.Errorf("font: unknown backend %s", self)
	}
}
