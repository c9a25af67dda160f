// Package source expands input patterns and classifies source files by
// format. Classification is by file extension: page-layout markup
// (.xml) versus structured records (.yml/.yaml); anything else is
// skipped. The returned groups are sorted so that duplicate-name
// resolution downstream is deterministic.
package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

var (
	markupExtensions     = map[string]bool{".xml": true}
	structuredExtensions = map[string]bool{".yml": true, ".yaml": true}
)

// Set holds the classified source paths for one run.
type Set struct {
	Markup     []string // paragraph-styled markup documents
	Structured []string // key-value record documents
}

// Collect expands glob patterns into a classified, deduplicated,
// lexicographically sorted Set. Markup sources are ingested before
// structured ones, each group in sorted order, so the last-loaded-wins
// rule for duplicate names is reproducible.
func Collect(patterns []string) (*Set, error) {
	set := &Set{}
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			abs, err := filepath.Abs(path)
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", path, err)
			}
			if seen[abs] {
				continue
			}
			seen[abs] = true
			ext := strings.ToLower(filepath.Ext(abs))
			switch {
			case markupExtensions[ext]:
				set.Markup = append(set.Markup, abs)
			case structuredExtensions[ext]:
				set.Structured = append(set.Structured, abs)
			}
		}
	}
	sort.Strings(set.Markup)
	sort.Strings(set.Structured)
	return set, nil
}

// Len returns the total number of classified sources.
func (s *Set) Len() int {
	return len(s.Markup) + len(s.Structured)
}
