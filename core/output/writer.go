// Package output handles file naming and writing for rendered output.
// Whole-document outputs go to a single path ("-" means stdout);
// per-record outputs get one file per monster, named from the monster.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

// Writer writes rendered output to disk or, for the "-" path, Stdout.
type Writer struct {
	Stdout io.Writer
}

// New creates a Writer bound to the process stdout.
func New() *Writer {
	return &Writer{Stdout: os.Stdout}
}

// WriteDocument writes a whole-document output. Parent directories are
// created as needed; a path of "-" streams to stdout.
func (w *Writer) WriteDocument(path string, data []byte) (string, error) {
	if path == "-" {
		if _, err := w.Stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "-", nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteRecords writes one file per record into dir, named from the
// record. A dir of "-" streams every rendered record to stdout instead.
func (w *Writer) WriteRecords(dir string, monsters []*core.Monster, r core.RecordRenderer) ([]string, error) {
	if dir != "-" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	var paths []string
	for _, m := range monsters {
		data, err := r.RenderRecord(m)
		if err != nil {
			return paths, err
		}
		if dir == "-" {
			if _, err := w.Stdout.Write(data); err != nil {
				return paths, fmt.Errorf("writing to stdout: %w", err)
			}
			continue
		}
		path := filepath.Join(dir, RecordFilename(m.Name)+r.Extension())
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, fmt.Errorf("writing file %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// RecordFilename converts a monster name into a flat, lowercase
// filename. Example: "Apocalypse Dragon" → "apocalypse_dragon".
func RecordFilename(name string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(name) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
