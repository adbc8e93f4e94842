// Package testfont builds font variants for the adapter tests.
//
// The Go fonts bundled with x/image carry no kerning data, so tests
// that need known pair adjustments patch a legacy 'kern' table into
// a copy of them.
package testfont

import "bytes"

import "seehuhn.de/go/postscript/funit"
import "seehuhn.de/go/sfnt/glyph"
import "seehuhn.de/go/sfnt/header"
import "seehuhn.de/go/sfnt/kern"

// A horizontal kerning adjustment between two glyphs, in font units.
type KernPair struct {
	Left  uint16
	Right uint16
	Value int16
}

// Returns a copy of the font data with a format 0 'kern' table that
// holds only the given pairs. Any previous 'kern', 'kerx' and 'GPOS'
// tables are dropped so the new table is the only kerning source.
func WithKernPairs(data []byte, pairs []KernPair) ([]byte, error) {
	reader := bytes.NewReader(data)
	info, err := header.Read(reader)
	if err != nil { return nil, err }

	tables := make(map[string][]byte, len(info.Toc) + 1)
	for tag := range info.Toc {
		switch tag {
		case "kern", "kerx", "GPOS":
			continue
		}
		// header.Write patches 'head' in place, so tables are copies
		tables[tag], err = info.ReadTableBytes(reader, tag)
		if err != nil { return nil, err }
	}

	kernInfo := make(kern.Info, len(pairs))
	for _, pair := range pairs {
		key := glyph.Pair{ Left: glyph.ID(pair.Left), Right: glyph.ID(pair.Right) }
		kernInfo[key] = funit.Int16(pair.Value)
	}
	tables["kern"] = kernInfo.Encode()

	var out bytes.Buffer
	_, err = header.Write(&out, info.ScalerType, tables)
	if err != nil { return nil, err }
	return out.Bytes(), nil
}
