package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

// BackRenderer draws the shared card-back image into each of the four
// card frames so the sheet can be printed behind the card fronts. It
// consumes no records.
type BackRenderer struct {
	ImagePath string
}

// NewBackRenderer creates a BackRenderer for the given image.
func NewBackRenderer(imagePath string) *BackRenderer {
	return &BackRenderer{ImagePath: imagePath}
}

// Render produces a single page with the image in all four frames.
func (r *BackRenderer) Render(_ []*core.Monster) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "Letter", "")
	pdf.SetTitle("Dungeon World Monster Cards - Back", true)
	pdf.AddPage()
	for _, origin := range cardOrigins {
		pdf.ImageOptions(r.ImagePath, origin[0], origin[1], cardWidth, cardHeight,
			false, gofpdf.ImageOptions{}, 0, "")
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing card-back PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for the card-back sheet.
func (r *BackRenderer) Extension() string {
	return ".pdf"
}
