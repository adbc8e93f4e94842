// glyphdump loads a font through one of the available backends and
// prints line metrics, glyph metrics, pair kerning and an ASCII-art
// preview of each glyph mask. Mostly useful to debug fonts and compare
// backends side by side.
//
// Usage:
//   glyphdump -font path/to/font.ttf -size 32 -backend gotext -text "AV"
//
// Without -font, the Go Regular font is used.
package main

import "flag"
import "fmt"
import "log"
import "log/slog"
import "os"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/fontprov"
import "github.com/tinne26/fontprov/font"
import "github.com/tinne26/fontprov/internal/tables"

func main() {
	fontPath := flag.String("font", "", "path to a .ttf or .otf font (default: Go Regular)")
	size := flag.Float64("size", 24, "font size in pixels per em")
	backendName := flag.String("backend", "sfnt", "font backend: sfnt or gotext")
	text := flag.String("text", "AV", "text whose glyphs will be dumped")
	showTables := flag.Bool("tables", false, "print the font table directory")
	noPreview := flag.Bool("no-preview", false, "skip the ASCII glyph previews")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: slog.LevelDebug })
		fontprov.SetLogger(slog.New(handler))
	}

	backend, err := font.ParseBackend(*backendName)
	if err != nil { log.Fatal(err) }

	data := goregular.TTF
	if *fontPath != "" {
		data, err = os.ReadFile(*fontPath)
		if err != nil { log.Fatal(err) }
	}
	provider, fontName, err := font.ParseFromBytes(data, backend)
	if err != nil { log.Fatal(err) }
	fmt.Printf("Font loaded: %s (%s backend)\n", fontName, backend)

	if *showTables {
		entries, err := tables.Directory(data)
		if err != nil { log.Fatal(err) }
		for _, entry := range entries {
			fmt.Printf("  table %-4s %8d bytes\n", entry.Tag, entry.Length)
		}
	}

	dumper := dumper{ out: os.Stdout, preview: !*noPreview }
	dumper.Dump(provider, *text, float32(*size))
}
