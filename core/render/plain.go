package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

const plainWidth = 80

// PlainRenderer produces the 80-column plain-text dump of every record,
// handy for eyeballing ingestion results.
type PlainRenderer struct{}

// NewPlainRenderer creates a PlainRenderer.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// Render formats each record as a ruled 80-column block.
func (r *PlainRenderer) Render(monsters []*core.Monster) ([]byte, error) {
	var buf bytes.Buffer
	for _, m := range monsters {
		r.entry(&buf, m)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for plain-text output.
func (r *PlainRenderer) Extension() string {
	return ".txt"
}

func (r *PlainRenderer) entry(buf *bytes.Buffer, m *core.Monster) {
	fmt.Fprintln(buf, strings.Repeat("=", plainWidth))

	// Name line with the HP figure right-aligned, armor beneath it.
	if m.HP != 0 {
		fmt.Fprintf(buf, "%-70s%6s%4d\n", strings.ToUpper(m.Name), "HP:", m.HP)
	} else {
		fmt.Fprintln(buf, strings.ToUpper(m.Name))
	}
	if m.Armor != 0 {
		fmt.Fprintf(buf, "%76s%4d\n", "Armor:", m.Armor)
	}

	if tags := core.CombineTags(m, false); tags != "" {
		fmt.Fprintln(buf, tags)
	}
	if weapon := core.CombineWeapon(m, false); weapon != "" {
		fmt.Fprintln(buf, weapon)
	}
	if m.Instinct != "" {
		fmt.Fprintln(buf, "Instinct: "+m.Instinct)
	}

	writeItemList(buf, "Moves", m.Moves)
	writeItemList(buf, "Qualities", m.Qualities)

	if m.Description != "" {
		fmt.Fprintln(buf, strings.Repeat("-", plainWidth))
		desc := stripEmphasis(m.Description)
		if strings.Contains(desc, "<br />") {
			// Multi-line description keeps its authored breaks.
			fmt.Fprintln(buf, strings.ReplaceAll(desc, "<br />", "\n"))
		} else {
			for _, line := range wrap(desc, plainWidth) {
				fmt.Fprintln(buf, line)
			}
		}
		fmt.Fprintln(buf, strings.Repeat("-", plainWidth))
	}

	fmt.Fprintln(buf, center(fmt.Sprintf("%s of the %s", m.Name, m.Setting), plainWidth))
	if ref := referenceLine(m); ref != "" {
		fmt.Fprintln(buf, center(ref, plainWidth))
	}
	fmt.Fprintln(buf)
}

// writeItemList prints items with a labeled leader and hanging indent:
//
//	Moves     > Item one wrapped to the
//	            line width
//	          > Item two
func writeItemList(buf *bytes.Buffer, label string, items []string) {
	for i, item := range items {
		leader := fmt.Sprintf("%-10s> ", "")
		if i == 0 {
			leader = fmt.Sprintf("%-10s> ", label)
		}
		for j, line := range wrap(item, plainWidth-len(leader)) {
			if j == 0 {
				fmt.Fprintln(buf, leader+line)
			} else {
				fmt.Fprintln(buf, strings.Repeat(" ", len(leader))+line)
			}
		}
	}
}

// wrap greedily breaks text into lines of at most width columns.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(lines, line)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}

// referenceLine builds the bracketed page citation, or "" when the
// record carries no setting reference.
func referenceLine(m *core.Monster) string {
	switch {
	case m.Reference != 0 && m.SettingReference != 0:
		return fmt.Sprintf("[DW %d, %d]", m.Reference, m.SettingReference)
	case m.SettingReference != 0:
		return fmt.Sprintf("[DW %d]", m.SettingReference)
	}
	return ""
}
