package text

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed TTF/OTF font, held in both the go-text form (for
// HarfBuzz shaping) and the x/image sfnt form (for outline loading).
// A Font is read-only after ParseFont and safe for concurrent use;
// per-call mutable state (shaper buffers, sfnt buffers) lives in the
// callers.
type Font struct {
	data   []byte
	shaped *gtfont.Font
	sfnt   *sfnt.Font
}

// ParseFont parses TTF or OTF font data.
func ParseFont(data []byte) (*Font, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font for shaping: %w", err)
	}

	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font outlines: %w", err)
	}

	return &Font{
		data:   data,
		shaped: face.Font,
		sfnt:   sf,
	}, nil
}
