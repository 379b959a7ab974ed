package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is one positioned glyph from shaping a label string.
// X and Y are the glyph origin relative to the run start, in the
// Y-down rendering convention.
type ShapedGlyph struct {
	GID      uint16
	X, Y     float64
	XAdvance float64
}

// shaperPool pools HarfbuzzShaper instances: they carry internal
// mutable buffers and are not safe for concurrent use, but reuse across
// sequential calls avoids reallocating them.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts a label string into positioned glyphs using HarfBuzz
// shaping, so kerning pairs and ligatures in the font are honored.
// Dial labels are short single-run left-to-right strings; the script is
// detected from the first non-space rune.
func Shape(f *Font, label string, size float64) []ShapedGlyph {
	if label == "" || f == nil {
		return nil
	}

	// font.Face is not safe for concurrent use; each Shape call gets
	// its own lightweight wrapper around the shared read-only Font.
	face := gtfont.NewFace(f.shaped)

	runes := []rune(label)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	shaperPool.Put(shaper)

	glyphs := make([]ShapedGlyph, len(output.Glyphs))
	var penX float64
	for i, g := range output.Glyphs {
		xOff := fixedToFloat(g.XOffset)
		yOff := fixedToFloat(g.YOffset)

		glyphs[i] = ShapedGlyph{
			GID: uint16(g.GlyphID),
			X:   penX + xOff,
			// HarfBuzz offsets are Y-up; outline space is Y-down.
			Y:        -yOff,
			XAdvance: fixedToFloat(g.Advance),
		}
		penX += fixedToFloat(g.Advance)
	}

	return glyphs
}

// detectScript inspects the runes and returns the script of the first
// non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
