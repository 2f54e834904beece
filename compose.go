package mdpress

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ptPerMM converts millimeters to points, the unit the composer works in.
const ptPerMM = 72.0 / 25.4

// Fixed A4 page geometry.
const (
	sideMargin   = 18 * ptPerMM // left and right
	topMargin    = 16 * ptPerMM
	bottomMargin = 16 * ptPerMM

	// Footer anchor: right edge of the caption and baseline offset from the
	// bottom of every page.
	footerRightX  = 200 * ptPerMM
	footerBottomY = 10 * ptPerMM
)

// pageComposer defines the contract for laying drawables onto pages.
type pageComposer interface {
	Compose(ctx context.Context, flows []flowable, meta Metadata) ([]byte, error)
}

// fpdfComposer flows drawable elements onto A4 pages with automatic page
// breaks and a numbered footer on every page.
type fpdfComposer struct {
	fonts      *FontRegistry
	styles     StyleCatalog
	footerDate string // optional, drawn left-aligned in the footer
}

func newFpdfComposer(fonts *FontRegistry, styles StyleCatalog, footerDate string) *fpdfComposer {
	return &fpdfComposer{fonts: fonts, styles: styles, footerDate: footerDate}
}

// Compose builds the document and returns its bytes. The creation date is
// pinned so identical input yields byte-identical output.
func (c *fpdfComposer) Compose(ctx context.Context, flows []flowable, meta Metadata) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.fonts == nil {
		return nil, ErrNilFonts
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(sideMargin, topMargin, sideMargin)
	pdf.SetAutoPageBreak(true, bottomMargin)
	c.fonts.register(pdf)

	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreationDate(time.Unix(0, 0).UTC())

	pdf.SetFooterFunc(func() {
		_, pageH := pdf.GetPageSize()
		pdf.SetFont(fontSans, "", footerFontSize)
		pdf.SetTextColor(0, 0, 0)
		caption := fmt.Sprintf("%s %d", c.styles.PageCaption, pdf.PageNo())
		pdf.Text(footerRightX-pdf.GetStringWidth(caption), pageH-footerBottomY, caption)
		if c.footerDate != "" {
			pdf.Text(sideMargin, pageH-footerBottomY, c.footerDate)
		}
	})

	pdf.AddPage()
	for _, f := range flows {
		switch f.kind {
		case flowText:
			c.drawText(pdf, f)
		case flowPre:
			c.drawPre(pdf, f)
		case flowSpacer:
			pdf.SetY(pdf.GetY() + f.height)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompose, err)
	}
	return buf.Bytes(), nil
}

// drawText draws a styled text run, wrapping at the right margin.
func (c *fpdfComposer) drawText(pdf *gofpdf.Fpdf, f flowable) {
	style := f.style
	pdf.SetY(pdf.GetY() + style.SpaceBefore)
	pdf.SetFont(style.Family, style.fontStyle(), style.Size)
	pdf.MultiCell(0, style.Leading, unescapeMarkup(f.text), "", "L", false)
	pdf.SetY(pdf.GetY() + style.SpaceAfter)
}

// drawPre draws a preformatted run line by line, without wrapping, inside
// the style's side indents.
func (c *fpdfComposer) drawPre(pdf *gofpdf.Fpdf, f flowable) {
	style := f.style
	left, _, right, _ := pdf.GetMargins()

	pdf.SetY(pdf.GetY() + style.SpaceBefore)
	pdf.SetLeftMargin(left + style.IndentLeft)
	pdf.SetRightMargin(right + style.IndentRight)
	pdf.SetX(left + style.IndentLeft)
	pdf.SetFont(style.Family, style.fontStyle(), style.Size)

	if f.spans != nil {
		c.drawColoredLines(pdf, f.spans, style.Leading)
	} else {
		for _, line := range strings.Split(f.text, "\n") {
			pdf.CellFormat(0, style.Leading, line, "", 1, "L", false, 0, "")
		}
	}

	pdf.SetLeftMargin(left)
	pdf.SetRightMargin(right)
	pdf.SetY(pdf.GetY() + style.SpaceAfter)
}

// drawColoredLines draws highlighted code one span at a time.
func (c *fpdfComposer) drawColoredLines(pdf *gofpdf.Fpdf, lines [][]codeSpan, leading float64) {
	for _, spans := range lines {
		for _, span := range spans {
			if span.colorSet {
				pdf.SetTextColor(int(span.r), int(span.g), int(span.b))
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.Write(leading, span.text)
		}
		pdf.Ln(leading)
	}
	pdf.SetTextColor(0, 0, 0)
}
