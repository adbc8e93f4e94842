package font

import "io/fs"
import "errors"
import "path/filepath"
import "sync"

import "github.com/tinne26/fontprov"

// A collection of fonts accessible by name.
//
// The goal of a library is to make it easy to parse fonts in bulk
// and keep them all in a single place. All fonts parsed by a library
// use the same [Backend], but providers added through [Library.AddFont]
// can come from anywhere.
//
// A library doesn't know about system fonts. Its methods are safe
// for concurrent use.
type Library struct {
	mutex   sync.RWMutex
	backend Backend
	fonts   map[string]fontprov.Provider
}

// Creates a new, empty font [Library] that parses fonts with
// the given backend.
func NewLibrary(backend Backend) *Library {
	return &Library {
		backend: backend,
		fonts: make(map[string]fontprov.Provider),
	}
}

// Returns the backend used by the library to parse fonts.
func (self *Library) Backend() Backend { return self.backend }

// Returns the current number of fonts in the library.
func (self *Library) Size() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.fonts)
}

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasFont(name string) bool {
	self.mutex.RLock()
	_, found := self.fonts[name]
	self.mutex.RUnlock()
	return found
}

// Returns the font with the given name, or nil if not found.
//
// If you don't know what are the names of your fonts, you can
// list them with [Library.EachFont]() or use [GetName]() directly.
func (self *Library) GetFont(name string) fontprov.Provider {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	font, found := self.fonts[name]
	if found { return font }
	return nil
}

// Adds the given provider into the library under the given name.
// If the provider is nil, the method will panic. If another font with
// the same name was already present in the library, [ErrAlreadyPresent]
// will be returned.
//
// This method is rarely necessary unless the font parsing is done
// by an external package. In general, using the built-in parsing
// functions (e.g. [Library.ParseFromBytes]()) would be preferable.
func (self *Library) AddFont(name string, provider fontprov.Provider) error {
	if provider == nil { panic("nil fontprov.Provider") }
	return self.addNewFont(provider, name)
}

// Returns false if the font can't be removed due to not being found.
func (self *Library) RemoveFont(name string) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Returns the name of the added font and any possible error.
// If error == nil, the font name will be non-empty.
//
// If a font with the same name has already been parsed or added,
// [ErrAlreadyPresent] will be returned.
func (self *Library) ParseFromPath(path string) (string, error) {
	font, name, err := ParseFromPath(path, self.backend)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use. When in
// doubt, pass a copy (e.g. ParseFromBytes(append([]byte(nil), data...))).
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, name, err := ParseFromBytes(fontBytes, self.backend)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	font, name, err := ParseFromFS(filesys, path, self.backend)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// An error that can be returned by [Library.AddFont](), [Library.ParseFromPath]()
// and [Library.ParseFromBytes]() when a font is not added due to its name already
// being present in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

func (self *Library) addNewFont(font fontprov.Provider, name string) error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.fonts[name]; found { return ErrAlreadyPresent }
	self.fonts[name] = font
	return nil
}

// Special error that can be used with [Library.EachFont]() to
// break early. When used, the function will return early but still
// return a nil error.
var ErrBreakEach = errors.New("EachFont() early break")

// Calls the given function for each font in the library, passing their
// names and providers as arguments, in pseudo-random order. The function
// operates on a snapshot, so it may add or remove fonts freely.
//
// If the given function returns a non-nil error, the method will immediately
// stop and return that error, with the only exception of [ErrBreakEach].
// Otherwise, [Library.EachFont]() will always return nil.
//
// Example code to print the names of all the fonts in the library:
//   library.EachFont(func(name string, _ fontprov.Provider) error {
//       fmt.Println(name)
//       return nil
//   })
func (self *Library) EachFont(fontFunc func(string, fontprov.Provider) error) error {
	self.mutex.RLock()
	snapshot := make(map[string]fontprov.Provider, len(self.fonts))
	for name, font := range self.fonts { snapshot[name] = font }
	self.mutex.RUnlock()

	for name, font := range snapshot {
		err := fontFunc(name, font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

// Walks the given directory non-recursively and adds all the .ttf and .otf
// fonts in it. Returns the number of fonts added, the number of fonts skipped
// (when a font with the same name already exists in the Library) and any error
// that might happen during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			if !hasValidFontExtension(path) { return nil }
			_, err = self.ParseFromPath(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !hasValidFontExtension(entry.Name()) { continue }
		_, err = self.ParseFromFS(filesys, dirName + entry.Name())
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}
