package types

import (
	"reflect"
	"testing"
)

func TestMergeChoices(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		desired  []string
		want     []string
	}{
		{
			name:     "disjoint sets append in desired order",
			existing: []string{"Diagram", "Report"},
			desired:  []string{"Datasheet", "Other"},
			want:     []string{"Diagram", "Report", "Datasheet", "Other"},
		},
		{
			name:     "overlap keeps existing order",
			existing: []string{"Report", "Diagram"},
			desired:  []string{"Diagram", "Report", "Other"},
			want:     []string{"Report", "Diagram", "Other"},
		},
		{
			name:     "desired subset of existing is a no-op",
			existing: []string{"Diagram", "Report", "Other"},
			desired:  []string{"Report"},
			want:     []string{"Diagram", "Report", "Other"},
		},
		{
			name:     "empty existing takes desired order",
			existing: nil,
			desired:  []string{"Diagram", "Other"},
			want:     []string{"Diagram", "Other"},
		},
		{
			name:     "duplicates in inputs collapse",
			existing: []string{"Diagram", "Diagram"},
			desired:  []string{"Other", "Other"},
			want:     []string{"Diagram", "Other"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeChoices(tt.existing, tt.desired)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeChoices(%v, %v) = %v, want %v", tt.existing, tt.desired, got, tt.want)
			}
		})
	}
}

func TestMergeChoicesNeverRemoves(t *testing.T) {
	existing := []string{"Legacy", "Retired", "Diagram"}
	desired := []string{"Diagram"}

	got := MergeChoices(existing, desired)

	for _, c := range existing {
		found := false
		for _, g := range got {
			if g == c {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("existing choice %q removed by merge, got %v", c, got)
		}
	}
}

func TestMergeChoicesConverges(t *testing.T) {
	existing := []string{"Diagram", "Report"}
	desired := []string{"Report", "Other"}

	once := MergeChoices(existing, desired)
	twice := MergeChoices(once, desired)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second merge changed the result: %v then %v", once, twice)
	}
}

func TestChoiceFieldSpecValidate(t *testing.T) {
	valid := ChoiceFieldSpec{
		Library:      "Engineering Documents",
		InternalName: "DocumentType",
		DisplayName:  "Document Type",
		Choices:      []string{"Diagram", "Other"},
	}

	tests := []struct {
		name    string
		mutate  func(*ChoiceFieldSpec)
		wantErr error
	}{
		{"valid", func(s *ChoiceFieldSpec) {}, nil},
		{"empty library", func(s *ChoiceFieldSpec) { s.Library = "" }, ErrLibraryEmpty},
		{"empty internal name", func(s *ChoiceFieldSpec) { s.InternalName = "" }, ErrInternalNameEmpty},
		{"empty display name", func(s *ChoiceFieldSpec) { s.DisplayName = "" }, ErrDisplayNameEmpty},
		{"no choices", func(s *ChoiceFieldSpec) { s.Choices = nil }, ErrChoicesEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			if err := s.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
