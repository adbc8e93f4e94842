// Package tables probes the table directory of sfnt font files.
//
// Font engines tend to report "no adjustment" both when a font lacks
// kerning data and when a pair simply has no entry, so adapters look
// at the raw table directory to tell both situations apart.
package tables

import "bytes"
import "encoding/binary"
import "errors"
import "sort"

import "seehuhn.de/go/sfnt/header"

// Table tags that may carry horizontal pair kerning.
var kerningTags = []string{"kern", "kerx", "GPOS"}

// A table directory entry.
type Entry struct {
	Tag    string
	Length uint32
}

// Reports whether the font data contains any table that may
// define horizontal kerning.
func HasKerning(data []byte) (bool, error) {
	info, err := header.Read(bytes.NewReader(data))
	if err != nil { return false, err }
	for _, tag := range kerningTags {
		if _, found := info.Toc[tag]; found { return true, nil }
	}
	return false, nil
}

// Returns the table directory of the font data, sorted by tag.
func Directory(data []byte) ([]Entry, error) {
	info, err := header.Read(bytes.NewReader(data))
	if err != nil { return nil, err }
	entries := make([]Entry, 0, len(info.Toc))
	for tag, record := range info.Toc {
		entries = append(entries, Entry{ Tag: tag, Length: record.Length })
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Tag < entries[j].Tag })
	return entries, nil
}

// Returns the number of glyphs declared in the 'maxp' table.
func NumGlyphs(data []byte) (int, error) {
	reader := bytes.NewReader(data)
	info, err := header.Read(reader)
	if err != nil { return 0, err }
	maxp, err := info.ReadTableBytes(reader, "maxp")
	if err != nil { return 0, err }
	if len(maxp) < 6 { return 0, errors.New("tables: maxp table too short") }
	return int(binary.BigEndian.Uint16(maxp[4:6])), nil
}
