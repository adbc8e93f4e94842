package font

import "errors"
import "os"
import "path/filepath"
import "sync"
import "testing"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/fontprov"

func TestLibrary(t *testing.T) {
	for _, backend := range testBackends {
		lib := NewLibrary(backend)
		if lib.Size() != 0 { t.Fatal("really?") }
		if lib.Backend() != backend { t.Fatalf("expected backend %s", backend) }

		testfs := newTestFS()
		added, skipped, err := lib.ParseAllFromFS(testfs, "fonts")
		if err != nil { t.Fatalf("unexpected error: %s", err) }
		if added != 2 || skipped != 0 {
			t.Fatalf("expected 2 added and 0 skipped fonts, got %d and %d", added, skipped)
		}
		if !lib.HasFont(testNameRegular) || !lib.HasFont(testNameMono) {
			t.Fatal("expected Library to include both fonts")
		}
		if lib.GetFont(testNameMono) == nil {
			t.Fatal("expected Library to allow access to the font")
		}
		if lib.GetFont("SurelyYouDontNameYourFontsLikeThis_") != nil {
			t.Fatal("well, well, well...")
		}

		added, skipped, err = lib.ParseAllFromFS(testfs, "dups")
		if err != nil || added != 0 || skipped != 2 {
			t.Fatalf("expected 2 skipped fonts, got %d added, %d skipped (%v)", added, skipped, err)
		}

		name, err := lib.ParseFromFS(testfs, "fonts/regular.ttf")
		if err != ErrAlreadyPresent {
			t.Fatalf("expected ErrAlreadyPresent, got '%v'", err)
		}
		if name != testNameRegular {
			t.Fatalf("expected '%s', got '%s'", testNameRegular, name)
		}

		var count int
		_ = lib.EachFont(func(name string, provider fontprov.Provider) error {
			if provider == nil { t.Fatalf("nil provider for %s", name) }
			count += 1
			return nil
		})
		if count != 2 { t.Fatalf("expected 2 fonts, iterated %d", count) }
		count = 0
		err = lib.EachFont(func(string, fontprov.Provider) error {
			count += 1
			return ErrBreakEach
		})
		if err != nil || count != 1 { t.Fatalf("expected early break, got %d iterations (%v)", count, err) }
		sentinel := errors.New("stop")
		if err := lib.EachFont(func(string, fontprov.Provider) error { return sentinel }); err != sentinel {
			t.Fatalf("expected sentinel error, got %v", err)
		}

		if lib.RemoveFont("totally-not-fake-yay") { t.Fatal("unexpected remove") }
		provider := lib.GetFont(testNameRegular)
		if !lib.RemoveFont(testNameRegular) { t.Fatal("unexpected remove failure") }
		if err := lib.AddFont(testNameRegular, provider); err != nil {
			t.Fatalf("unexpected error on AddFont(): %s", err)
		}
		if err := lib.AddFont(testNameRegular, provider); err != ErrAlreadyPresent {
			t.Fatalf("expected ErrAlreadyPresent, got %v", err)
		}
		if doesNotPanic(func() { _ = lib.AddFont("nil", nil) }) {
			t.Fatal("lib.AddFont(name, nil) should have panicked")
		}

		_, err = lib.ParseFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
		if err == nil { t.Fatal("expected error to be non-nil") }
		if lib.Size() != 2 { t.Fatalf("expected 2 fonts, got %d", lib.Size()) }
	}
}

func TestLibraryFromPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "regular.ttf"), goregular.TTF, 0o644); err != nil { t.Fatal(err) }
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# fonts"), 0o644); err != nil { t.Fatal(err) }
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil { t.Fatal(err) }
	if err := os.WriteFile(filepath.Join(dir, "sub", "copy.ttf"), goregular.TTF, 0o644); err != nil { t.Fatal(err) }

	lib := NewLibrary(BackendSfnt)
	added, skipped, err := lib.ParseAllFromPath(dir)
	if err != nil { t.Fatal(err) }
	if added != 1 || skipped != 0 {
		t.Fatalf("expected 1 added and 0 skipped fonts, got %d and %d", added, skipped)
	}
	name, err := lib.ParseFromPath(filepath.Join(dir, "regular.ttf"))
	if err != ErrAlreadyPresent || name != testNameRegular {
		t.Fatalf("expected ErrAlreadyPresent for %q, got %q and %v", testNameRegular, name, err)
	}
}

func TestLibraryConcurrentUse(t *testing.T) {
	lib := NewLibrary(BackendGoText)
	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lib.ParseFromBytes(goregular.TTF)
			results <- err
			_ = lib.GetFont(testNameRegular)
		}()
	}
	wg.Wait()
	close(results)

	var added, present int
	for err := range results {
		switch err {
		case nil: added += 1
		case ErrAlreadyPresent: present += 1
		default: t.Fatalf("unexpected error: %s", err)
		}
	}
	if added != 1 || present != 7 {
		t.Fatalf("expected 1 added and 7 already present, got %d and %d", added, present)
	}
}
