package types

// ChoiceFieldSpec declares a choice column on a document library. The
// internal name and type are immutable once the field exists remotely;
// reconciliation only ever grows the choice set.
type ChoiceFieldSpec struct {
	Library      string   `json:"library" yaml:"library"`
	InternalName string   `json:"internal_name" yaml:"internal_name"`
	DisplayName  string   `json:"display_name" yaml:"display_name"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Choices      []string `json:"choices" yaml:"choices"`
}

// Validate checks that the spec is complete.
func (s ChoiceFieldSpec) Validate() error {
	if s.Library == "" {
		return ErrLibraryEmpty
	}
	if s.InternalName == "" {
		return ErrInternalNameEmpty
	}
	if s.DisplayName == "" {
		return ErrDisplayNameEmpty
	}
	if len(s.Choices) == 0 {
		return ErrChoicesEmpty
	}
	return nil
}

// MergeChoices returns the ordered union of existing and desired choice
// values: existing values first in their original order, then any desired
// values not already present, in desired order. Duplicates are dropped on
// first sight. Nothing is ever removed, so repeated merges converge to a
// fixed point.
func MergeChoices(existing, desired []string) []string {
	seen := make(map[string]bool, len(existing)+len(desired))
	merged := make([]string, 0, len(existing)+len(desired))
	for _, c := range existing {
		if seen[c] {
			continue
		}
		seen[c] = true
		merged = append(merged, c)
	}
	for _, c := range desired {
		if seen[c] {
			continue
		}
		seen[c] = true
		merged = append(merged, c)
	}
	return merged
}
