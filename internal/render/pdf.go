package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"caseapi/internal/clock"
	"caseapi/internal/fonts"
	"caseapi/internal/form"
	"caseapi/internal/model"
)

// ErrEmptyRecord is returned when a record carries no field values; there is
// nothing meaningful to put on a page.
var ErrEmptyRecord = errors.New("record is empty, nothing to render")

// FontKey is the lookup key for the preferred document typeface.
const FontKey = "case-sans.ttf"

// customFamily is the family name the preferred typeface is registered under.
const customFamily = "CaseSans"

// fallbackFamily is a core PDF font, always available.
const fallbackFamily = "Helvetica"

// PDF renders a validated record into a paginated A4 case document.
type PDF struct {
	fonts fonts.Source
	clock clock.Clock
}

func NewPDF(src fonts.Source, clk clock.Clock) *PDF {
	return &PDF{fonts: src, clock: clk}
}

// Render produces the finished document as a byte slice. It first tries the
// preferred typeface from the font source; if the lookup fails or the bytes
// do not parse, the document is rebuilt with the core fallback face. Font
// trouble alone never fails the render.
func (p *PDF) Render(ctx context.Context, rec *model.Record) ([]byte, error) {
	if rec == nil || rec.Empty() {
		return nil, ErrEmptyRecord
	}
	stamp := p.clock.Now()
	if data, err := p.fonts.Lookup(ctx, FontKey); err == nil && len(data) > 0 {
		if out, err := p.build(rec, data, stamp); err == nil {
			return out, nil
		}
	}
	return p.build(rec, nil, stamp)
}

// build lays out the full document once. fontData == nil selects the core
// fallback face.
func (p *PDF) build(rec *model.Record, fontData []byte, stamp time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")

	family := fallbackFamily
	tr := doc.UnicodeTranslatorFromDescriptor("")
	if fontData != nil {
		doc.AddUTF8FontFromBytes(customFamily, "", fontData)
		doc.AddUTF8FontFromBytes(customFamily, "B", fontData)
		family = customFamily
		tr = func(s string) string { return s }
	}

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont(family, "", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 10, tr("Generated at "+stamp.Format(time.RFC1123)), "", 0, "C", false, 0, "")
	})

	doc.AddPage()
	doc.SetTextColor(0, 0, 0)
	doc.SetFont(family, "B", 16)
	doc.CellFormat(0, 10, tr("Medical Case Submission"), "", 1, "C", false, 0, "")
	doc.Ln(6)

	for _, sec := range form.SectionContent(rec) {
		doc.SetFont(family, "B", 12)
		doc.CellFormat(0, 8, tr(sec.Title), "", 1, "L", false, 0, "")
		doc.SetFont(family, "", 11)
		for _, line := range sec.Lines {
			doc.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", line.Label, line.Value)), "", 1, "L", false, 0, "")
		}
		doc.Ln(4)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
