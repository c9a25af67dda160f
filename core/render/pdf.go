package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

// Card sheet geometry: landscape letter (792x612pt) holding four
// 5x3 inch card frames, one monster per frame.
const (
	cardWidth  = 360.0
	cardHeight = 216.0
	cardPad    = 6.0
	lineHeight = 9.0
)

var cardOrigins = [4][2]float64{
	{36, 90}, {396, 90}, {36, 306}, {396, 306},
}

// PDFRenderer lays the records out as printable monster cards.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render draws one card per record, four cards per page.
func (r *PDFRenderer) Render(monsters []*core.Monster) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "Letter", "")
	pdf.SetTitle("Dungeon World Monster Cards", true)
	pdf.SetAutoPageBreak(false, 0)

	for i, m := range monsters {
		if i%len(cardOrigins) == 0 {
			pdf.AddPage()
		}
		origin := cardOrigins[i%len(cardOrigins)]
		drawCard(pdf, m, origin[0], origin[1])
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func drawCard(pdf *gofpdf.Fpdf, m *core.Monster, x, y float64) {
	left := x + cardPad
	right := x + cardWidth - cardPad
	innerWidth := cardWidth - 2*cardPad

	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	// Confine flowed text to this card's frame.
	pageWidth, _ := pdf.GetPageSize()
	pdf.SetLeftMargin(left)
	pdf.SetRightMargin(pageWidth - right)

	// Name with the HP/Armor column on the right.
	statsWidth := 72.0
	pdf.SetXY(left, y+cardPad)
	pdf.SetFont("Times", "B", 16)
	pdf.MultiCell(innerWidth-statsWidth, 16, strings.ToUpper(m.Name), "", "L", false)
	bottom := pdf.GetY()

	pdf.SetFont("Helvetica", "", 8)
	statY := y + cardPad
	if m.HP != 0 {
		pdf.SetXY(right-statsWidth, statY)
		pdf.CellFormat(statsWidth, lineHeight, fmt.Sprintf("HP: %d", m.HP), "", 0, "R", false, 0, "")
		statY += lineHeight
	}
	if m.Armor != 0 {
		pdf.SetXY(right-statsWidth, statY)
		pdf.CellFormat(statsWidth, lineHeight, fmt.Sprintf("Armor: %d", m.Armor), "", 0, "R", false, 0, "")
		statY += lineHeight
	}
	pdf.SetY(max(bottom, statY))

	// Tag and weapon lines keep their emphasis markup.
	html := pdf.HTMLBasicNew()
	pdf.SetFont("Helvetica", "", 8)
	if tags := core.CombineTags(m, true); tags != "" {
		pdf.SetX(left)
		html.Write(lineHeight, tags)
		pdf.Ln(lineHeight)
	}
	if weapon := core.CombineWeapon(m, true); weapon != "" {
		pdf.SetX(left)
		html.Write(lineHeight, htmlBreaks(weapon))
		pdf.Ln(lineHeight)
	}
	pdf.Ln(3)

	writeLabeled(pdf, left, "Qualities", m.Qualities)
	if m.Instinct != "" {
		writeLabeled(pdf, left, "Instinct", []string{m.Instinct})
	}
	writeLabeled(pdf, left, "Moves", m.Moves)

	// Ruled description block.
	if m.Description != "" {
		pdf.Ln(3)
		pdf.Line(left, pdf.GetY(), right, pdf.GetY())
		pdf.SetX(left)
		pdf.SetFont("Helvetica", "", 8)
		html.Write(lineHeight, htmlBreaks(m.Description))
		pdf.Ln(lineHeight)
		pdf.Line(left, pdf.GetY(), right, pdf.GetY())
	}

	// Centered reference footer pinned to the card bottom.
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(left, y+cardHeight-cardPad-2*lineHeight)
	pdf.CellFormat(innerWidth, lineHeight, fmt.Sprintf("%s of the %s", m.Name, m.Setting), "", 1, "C", false, 0, "")
	if ref := referenceLine(m); ref != "" {
		pdf.SetX(left)
		pdf.CellFormat(innerWidth, lineHeight, ref, "", 1, "C", false, 0, "")
	}
}

// writeLabeled prints a bold label column with one item per line.
func writeLabeled(pdf *gofpdf.Fpdf, left float64, label string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetX(left)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(48, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(0, lineHeight, strings.Join(items, "\n"), "", "L", false)
}

// htmlBreaks rewrites the record's XHTML-style break marker into the
// form gofpdf's basic HTML writer understands.
func htmlBreaks(s string) string {
	return strings.ReplaceAll(s, "<br />", "<br>")
}
