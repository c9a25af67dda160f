package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/monsterdeck/core"
)

// YAMLRenderer writes one structured document per monster. Empty fields
// are omitted, so a document loaded back through the record loader
// reconstructs the original record with omitted fields at their empty
// defaults.
type YAMLRenderer struct{}

// NewYAMLRenderer creates a YAMLRenderer.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// RenderRecord marshals the record with a document start marker.
func (r *YAMLRenderer) RenderRecord(m *core.Monster) ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling record %s: %w", m.Name, err)
	}
	return append([]byte("---\n"), data...), nil
}

// Extension returns the file extension for YAML record output.
func (r *YAMLRenderer) Extension() string {
	return ".yaml"
}
