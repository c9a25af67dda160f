// Package render provides the output renderers: tabular CSV, the
// monster-card PDF (and its card-back sheet), per-record YAML and
// Markdown files, and the 80-column plain-text dump. Every renderer
// consumes committed records and never mutates them.
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

// csvHeader matches the row column order.
var csvHeader = []string{
	"name", "hp", "armor", "tags", "weapon", "instinct", "moves",
	"qualities", "description", "reference", "setting", "setting_reference",
}

// CSVRenderer produces the tabular export, one row per monster.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Render writes the header and one row per record.
func (r *CSVRenderer) Render(monsters []*core.Monster) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, m := range monsters {
		// Emphasis markup has no place in a flat table; line breaks
		// collapse to the " \ " marker.
		desc := stripEmphasis(m.Description)
		desc = strings.ReplaceAll(desc, "<br />", " \\ ")
		row := []string{
			m.Name,
			optInt(m.HP),
			optInt(m.Armor),
			core.CombineTags(m, false),
			core.CombineWeapon(m, false),
			m.Instinct,
			strings.Join(m.Moves, ", "),
			strings.Join(m.Qualities, ", "),
			desc,
			optInt(m.Reference),
			m.Setting,
			optInt(m.SettingReference),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row for %s: %w", m.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for CSV output.
func (r *CSVRenderer) Extension() string {
	return ".csv"
}

func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "<i>", "")
	return strings.ReplaceAll(s, "</i>", "")
}

func optInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
