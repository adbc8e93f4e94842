package gotext

import "github.com/go-text/typesetting/di"
import "github.com/go-text/typesetting/font"
import "github.com/go-text/typesetting/language"
import "github.com/go-text/typesetting/shaping"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/fontprov"

// Satisfies the [fontprov.Provider] interface.
//
// The adjustment is obtained by shaping the pair and comparing the
// result with the advances of both glyphs shaped alone, so it includes
// both legacy 'kern' and GPOS pair adjustments. Glyphs that can't be
// reached from any rune can't be shaped, and report no kerning data.
func (self *Font) Kerning(a, b fontprov.Glyph, size float32) (float32, bool) {
	if !self.kerning || !fontprov.ValidSize(size) { return 0, false }
	if self.numGlyphs > 0 && (int(a) >= self.numGlyphs || int(b) >= self.numGlyphs) {
		return 0, false
	}
	runeA, okA := self.runeFor(a)
	runeB, okB := self.runeFor(b)
	if !okA || !okB { return 0, false }

	fixedSize := fixed.Int26_6(size*64 + 0.5)
	face := font.NewFace(self.font)
	shaper := self.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer self.shaperPool.Put(shaper)

	pair, ok := self.shapedAdvance(shaper, face, []rune{runeA, runeB}, a, b, fixedSize)
	if !ok { return 0, false }
	soloA, ok := self.shapedAdvance(shaper, face, []rune{runeA}, a, a, fixedSize)
	if !ok { return 0, false }
	soloB, ok := self.shapedAdvance(shaper, face, []rune{runeB}, b, b, fixedSize)
	if !ok { return 0, false }

	return float32(pair - soloA - soloB)/64, true
}

// Shapes the given runes and returns the sum of the advances. The
// output must be exactly the expected glyphs (first and last), as
// ligatures or substitutions make the comparison meaningless.
func (self *Font) shapedAdvance(shaper *shaping.HarfbuzzShaper, face *font.Face, runes []rune, first, last fontprov.Glyph, size fixed.Int26_6) (fixed.Int26_6, bool) {
	output := shaper.Shape(shaping.Input{
		Text: runes,
		RunStart: 0,
		RunEnd: len(runes),
		Direction: di.DirectionLTR,
		Face: face,
		Size: size,
		Script: language.LookupScript(runes[0]),
		Language: self.language,
	})
	if len(output.Glyphs) != len(runes) { return 0, false }
	if fontprov.Glyph(output.Glyphs[0].GlyphID) != first { return 0, false }
	if fontprov.Glyph(output.Glyphs[len(runes) - 1].GlyphID) != last { return 0, false }

	var advance fixed.Int26_6
	for _, glyph := range output.Glyphs {
		advance += glyph.Advance
	}
	return advance, true
}

// Returns the lowest rune that maps to the given glyph.
func (self *Font) runeFor(glyph fontprov.Glyph) (rune, bool) {
	self.reverseOnce.Do(self.buildReverseCmap)
	codePoint, found := self.reverse[glyph]
	return codePoint, found
}

func (self *Font) buildReverseCmap() {
	self.reverse = make(map[fontprov.Glyph]rune)
	if self.font.Cmap == nil { return }
	iter := self.font.Cmap.Iter()
	for iter.Next() {
		codePoint, gid := iter.Char()
		if gid == 0 { continue }
		glyph := fontprov.Glyph(gid)
		if prev, seen := self.reverse[glyph]; !seen || codePoint < prev {
			self.reverse[glyph] = codePoint
		}
	}
	fontprov.Logger().Debug("gotext: reverse cmap built", "glyphs", len(self.reverse))
}
