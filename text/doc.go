// Package text is the text-layout provider for dialmesh: it parses TTF
// font data, shapes label strings into positioned glyphs with HarfBuzz
// (via github.com/go-text/typesetting), and extracts each glyph's
// vector outline (via golang.org/x/image/font/sfnt) into a dialmesh
// path-command stream.
//
// Coordinates are emitted in the glyph rendering convention: origin at
// the baseline pen position, Y axis pointing down. The dialmesh
// pipeline normalizes the outline to its target sector height from the
// measured bounds, so the render size chosen here only affects curve
// resolution, not final geometry.
package text
