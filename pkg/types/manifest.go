package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the declarative desired state driving a provisioning run:
// the choice fields to ensure, then the views to ensure, in declared
// order. Order does not affect correctness (every ensure is independent
// and idempotent) but determines log and journal ordering.
type Manifest struct {
	Fields []ChoiceFieldSpec `json:"fields" yaml:"fields"`
	Views  []ViewSpec        `json:"views" yaml:"views"`
}

// Validate checks every spec in the manifest. The first invalid spec
// fails the whole manifest, with enough context to find it.
func (m Manifest) Validate() error {
	for i, f := range m.Fields {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("field %d (%s/%s): %w", i, f.Library, f.InternalName, err)
		}
	}
	for i, v := range m.Views {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("view %d (%s/%s): %w", i, v.Library, v.Title, err)
		}
	}
	return nil
}

// LoadManifest reads and validates a YAML manifest file. It replaces the
// built-in desired-state table wholesale; there is no merging of the two.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("validating manifest: %w", err)
	}
	return m, nil
}
