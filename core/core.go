// Package core defines the canonical monster record shared by every
// ingestion path and renderer, the store that holds committed records,
// and the renderer interfaces the output stages implement.
package core

import (
	"errors"
	"sort"
)

// Weapon is the nested weapon block of a monster record. Fields may be
// empty; a weapon is only displayable when both Name and Damage are set.
type Weapon struct {
	Name      string   `yaml:"name,omitempty"`
	Damage    string   `yaml:"damage,omitempty"`
	TagsDesc  []string `yaml:"tags_desc,omitempty"`
	TagsRange []string `yaml:"tags_range,omitempty"`
}

// Monster is the canonical record built from either source format.
// The yaml tags define the wire format of structured sources and of the
// per-record YAML output; field order here is the output key order.
//
// Optional integers use zero as "absent" and optional strings use the
// empty string. Category tag slices (TagsOrg, TagsSize and the weapon's
// TagsRange) only ever hold values from their fixed vocabulary, in
// vocabulary order, regardless of how the source ordered them.
type Monster struct {
	Name             string   `yaml:"name"`
	TagsDesc         []string `yaml:"tags_desc,omitempty"`
	TagsOrg          []string `yaml:"tags_org,omitempty"`
	TagsSize         []string `yaml:"tags_size,omitempty"`
	HP               int      `yaml:"hp,omitempty"`
	Armor            int      `yaml:"armor,omitempty"`
	Weapon           Weapon   `yaml:"weapon,omitempty"`
	Instinct         string   `yaml:"instinct,omitempty"`
	Moves            []string `yaml:"moves,omitempty"`
	Qualities        []string `yaml:"qualities,omitempty"`
	Description      string   `yaml:"description,omitempty"`
	Reference        int      `yaml:"reference,omitempty"`
	Setting          string   `yaml:"setting,omitempty"`
	SettingReference int      `yaml:"setting_reference,omitempty"`
}

// Store holds all committed monster records for one run, keyed by name.
// Records are committed once, fully populated, and treated as immutable
// by renderers afterwards.
type Store struct {
	records map[string]*Monster
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{records: make(map[string]*Monster)}
}

// Add commits a record. A duplicate name overwrites the prior entry
// (last-loaded-wins); an empty name is rejected.
func (s *Store) Add(m *Monster) error {
	if m.Name == "" {
		return errors.New("record has no name")
	}
	s.records[m.Name] = m
	return nil
}

// Get looks up a record by its exact name.
func (s *Store) Get(name string) (*Monster, bool) {
	m, ok := s.records[name]
	return m, ok
}

// Len returns the number of committed records.
func (s *Store) Len() int {
	return len(s.records)
}

// Sorted returns the committed records in name order. Renderers iterate
// this snapshot; the store itself is never handed out.
func (s *Store) Sorted() []*Monster {
	out := make([]*Monster, 0, len(s.records))
	for _, m := range s.records {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Renderer converts the full set of committed records into a single
// output document.
type Renderer interface {
	Render(monsters []*Monster) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".csv").
	Extension() string
}

// RecordRenderer converts one record into its own output file.
type RecordRenderer interface {
	RenderRecord(m *Monster) ([]byte, error)
	Extension() string
}
