package text

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/dialmesh"
)

// DefaultRenderSize is the em size glyph outlines are loaded at when a
// Provider does not set one. The pipeline rescales from measured
// bounds, so this only sets the precision of the font's grid-fitted
// coordinates.
const DefaultRenderSize = 72

// Provider renders label strings into dialmesh path-command streams.
// It implements dialmesh.OutlineSource.
//
// Provider is not safe for concurrent use: it owns a reusable
// sfnt.Buffer. Use one Provider per goroutine over the same Font.
type Provider struct {
	Font *Font

	// Size is the render em size; zero selects DefaultRenderSize.
	Size float64

	buffer sfnt.Buffer
}

// NewProvider creates a Provider for the font at the default size.
func NewProvider(f *Font) *Provider {
	return &Provider{Font: f}
}

func (p *Provider) size() float64 {
	if p.Size <= 0 {
		return DefaultRenderSize
	}
	return p.Size
}

// Outline shapes the label and concatenates every glyph's outline,
// offset by its shaped pen position, into a single path. Glyphs without
// an outline (spaces) contribute only their advance.
func (p *Provider) Outline(label string) (*dialmesh.Path, error) {
	if p.Font == nil {
		return nil, fmt.Errorf("text: provider has no font")
	}

	size := p.size()
	ppem := fixed.Int26_6(size * 64)

	path := dialmesh.NewPath()
	for _, glyph := range Shape(p.Font, label, size) {
		segments, err := p.Font.sfnt.LoadGlyph(&p.buffer, sfnt.GlyphIndex(glyph.GID), ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("text: loading glyph %d of %q: %w", glyph.GID, label, err)
		}
		appendSegments(path, segments, glyph.X, glyph.Y)
	}

	return path, nil
}

// appendSegments converts sfnt glyph segments to path elements,
// translated by the glyph's pen position. sfnt coordinates are already
// Y-down, matching the outline convention.
func appendSegments(path *dialmesh.Path, segments sfnt.Segments, dx, dy float64) {
	pt := func(p fixed.Point26_6) (float64, float64) {
		return float64(p.X)/64 + dx, float64(p.Y)/64 + dy
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			// sfnt contours have no explicit close op; a MoveTo
			// starts the next contour, so close the previous one.
			if open {
				path.Close()
			}
			x, y := pt(seg.Args[0])
			path.MoveTo(x, y)
			open = true

		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			path.LineTo(x, y)

		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			path.QuadraticTo(cx, cy, x, y)

		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			path.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		path.Close()
	}
}
