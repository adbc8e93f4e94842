package font

import "testing/fstest"

import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

const testNameRegular = "Go Regular"
const testNameMono = "Go Mono"

var testBackends = []Backend{ BackendSfnt, BackendGoText }

// Returns a filesystem with two fonts, a duplicate under another
// file name, a non-font file and a subdirectory that must be ignored.
func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"fonts/regular.ttf": { Data: goregular.TTF },
		"fonts/mono.ttf": { Data: gomono.TTF },
		"fonts/notes.txt": { Data: []byte("not a font") },
		"fonts/nested/deep.ttf": { Data: goregular.TTF },
		"dups/a.ttf": { Data: goregular.TTF },
		"dups/b.otf": { Data: goregular.TTF },
	}
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
