package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

// MarkdownRenderer writes one Markdown document per monster. The
// formatted display strings are HTML-flavored (<i>, <br />), so the
// card is assembled as an HTML fragment and converted.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// RenderRecord builds the record's card as HTML and converts it.
func (r *MarkdownRenderer) RenderRecord(m *core.Monster) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", m.Name)

	if m.HP != 0 || m.Armor != 0 {
		b.WriteString("<p>")
		if m.HP != 0 {
			fmt.Fprintf(&b, "<b>HP:</b> %d ", m.HP)
		}
		if m.Armor != 0 {
			fmt.Fprintf(&b, "<b>Armor:</b> %d", m.Armor)
		}
		b.WriteString("</p>\n")
	}
	if tags := core.CombineTags(m, true); tags != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", tags)
	}
	if weapon := core.CombineWeapon(m, true); weapon != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", weapon)
	}
	if m.Instinct != "" {
		fmt.Fprintf(&b, "<p><b>Instinct:</b> %s</p>\n", m.Instinct)
	}
	writeHTMLList(&b, "Qualities", m.Qualities)
	writeHTMLList(&b, "Moves", m.Moves)
	if m.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", m.Description)
	}
	fmt.Fprintf(&b, "<p>%s of the %s</p>\n", m.Name, m.Setting)
	if ref := referenceLine(m); ref != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", ref)
	}

	md, err := htmltomarkdown.ConvertString(b.String())
	if err != nil {
		return nil, fmt.Errorf("converting record %s to markdown: %w", m.Name, err)
	}
	return []byte(md), nil
}

// Extension returns the file extension for Markdown record output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func writeHTMLList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "<h2>%s</h2>\n<ul>\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "<li>%s</li>\n", item)
	}
	b.WriteString("</ul>\n")
}
