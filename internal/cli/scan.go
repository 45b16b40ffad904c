package cli

import (
	"fmt"
	"io"
	"strings"

	dxf "github.com/bert/libdxf-sub001"
	"github.com/bert/libdxf-sub001/codepage"
	"github.com/bert/libdxf-sub001/tag"
)

// scanHatches walks a record stream and rebuilds every HATCH entity it
// contains. Other entities and sections are passed over; an ENDSEC or
// EOF record ends the scan early only in the sense that no further
// hatches will follow the enclosing section.
//
// When page is non-empty the name fields of each hatch are decoded
// from that drawing code page to UTF-8. Pre-R2007 files store strings
// in the $DWGCODEPAGE encoding; R2007 and later are UTF-8 already, and
// for them ASCII-only names pass through every ANSI page unchanged.
func scanHatches(r io.Reader, page string) ([]*dxf.Hatch, error) {
	sc := tag.NewScanner(r)
	var hatches []*dxf.Hatch
	for sc.Next() {
		t := sc.Tag()
		if t.Code != 0 {
			continue
		}
		if strings.TrimSpace(t.Value) != "HATCH" {
			continue
		}
		h, err := dxf.ReadHatch(sc)
		if err != nil {
			return hatches, fmt.Errorf("hatch %d: %w", len(hatches)+1, err)
		}
		if page != "" {
			decodeHatchText(h, page)
		}
		hatches = append(hatches, h)
	}
	return hatches, sc.Err()
}

// decodeHatchText converts a hatch's name fields from a drawing code
// page to UTF-8. An unknown page passes every field through unchanged.
func decodeHatchText(h *dxf.Hatch, page string) {
	h.Layer, _ = codepage.Decode(page, h.Layer)
	h.Linetype, _ = codepage.Decode(page, h.Linetype)
	h.PatternName, _ = codepage.Decode(page, h.PatternName)
	h.ColorName, _ = codepage.Decode(page, h.ColorName)
}

// encodeHatchText is the inverse of decodeHatchText, applied before
// emitting at a revision older than R2007. A field not representable
// in the page is left in UTF-8 rather than mangled.
func encodeHatchText(h *dxf.Hatch, page string) {
	h.Layer, _ = codepage.Encode(page, h.Layer)
	h.Linetype, _ = codepage.Encode(page, h.Linetype)
	h.PatternName, _ = codepage.Encode(page, h.PatternName)
	h.ColorName, _ = codepage.Encode(page, h.ColorName)
}
