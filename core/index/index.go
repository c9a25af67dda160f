// Package index loads the read-only page-reference lookup used while
// ingesting markup sources. The index file maps setting names and
// lowercase monster names to page numbers in the published book.
package index

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Index is the page-reference lookup, loaded once before ingestion.
type Index struct {
	Settings map[string]int `yaml:"settings"`
	Monsters map[string]int `yaml:"monsters"`
}

// Load reads and parses the index file.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}
	var ix Index
	if err := yaml.Unmarshal(data, &ix); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", path, err)
	}
	return &ix, nil
}

// Setting returns the page reference for a setting name.
func (ix *Index) Setting(name string) (int, bool) {
	ref, ok := ix.Settings[name]
	return ref, ok
}

// Monster returns the page reference for a monster. Index keys are
// lowercase, so the lookup is case-insensitive.
func (ix *Index) Monster(name string) (int, bool) {
	ref, ok := ix.Monsters[strings.ToLower(name)]
	return ref, ok
}
