package ingest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

// RecordLoader ingests structured YAML record documents, one monster
// per document. Structured sources need no reference index: they carry
// their own reference fields, or none.
type RecordLoader struct {
	store *core.Store
}

// NewRecordLoader creates a loader committing into store.
func NewRecordLoader(store *core.Store) *RecordLoader {
	return &RecordLoader{store: store}
}

// LoadFile ingests one structured document from disk.
func (l *RecordLoader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return l.Load(path, data)
}

// Load ingests one structured document. Top-level keys map onto the
// record fields; the nested weapon mapping onto the weapon fields.
// Absent keys keep the record's empty defaults. The document must be a
// mapping with a non-empty name.
func (l *RecordLoader) Load(path string, data []byte) error {
	// Shape check first so a list or scalar document reports as a
	// malformed record rather than a field binding error.
	var probe yaml.Node
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return &core.MalformedRecordError{Path: path, Msg: err.Error()}
	}
	if probe.Kind != yaml.DocumentNode || len(probe.Content) == 0 || probe.Content[0].Kind != yaml.MappingNode {
		return &core.MalformedRecordError{Path: path, Msg: "top-level value is not a mapping"}
	}

	var m core.Monster
	if err := yaml.Unmarshal(data, &m); err != nil {
		return &core.MalformedRecordError{Path: path, Msg: err.Error()}
	}
	if strings.TrimSpace(m.Name) == "" {
		return &core.MalformedRecordError{Path: path, Msg: "missing required field: name"}
	}
	return l.store.Add(&m)
}
