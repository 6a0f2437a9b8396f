package types

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifestShape(t *testing.T) {
	m := DefaultManifest()

	assert.Len(t, m.Fields, 4)
	assert.Len(t, m.Views, 10)
	require.NoError(t, m.Validate())

	// Every view filters on a column some field spec declares for the
	// same library.
	declared := make(map[string]bool)
	for _, f := range m.Fields {
		declared[f.Library+"/"+f.InternalName] = true
	}
	for _, v := range m.Views {
		require.NotNil(t, v.Filter, "built-in view %q has no filter", v.Title)
		assert.True(t, declared[v.Library+"/"+v.Filter.Field],
			"view %q filters on undeclared column %q", v.Title, v.Filter.Field)
	}
}

func TestDefaultManifestFilterValuesAreDeclaredChoices(t *testing.T) {
	m := DefaultManifest()

	choices := make(map[string]map[string]bool)
	for _, f := range m.Fields {
		key := f.Library + "/" + f.InternalName
		choices[key] = make(map[string]bool)
		for _, c := range f.Choices {
			choices[key][c] = true
		}
	}
	for _, v := range m.Views {
		key := v.Library + "/" + v.Filter.Field
		assert.True(t, choices[key][v.Filter.Value],
			"view %q filters on %q which is not a declared choice of %s", v.Title, v.Filter.Value, key)
	}
}

func TestManifestValidate(t *testing.T) {
	m := Manifest{
		Fields: []ChoiceFieldSpec{{
			Library:      LibraryEngineering,
			InternalName: "DocumentType",
			DisplayName:  "Document Type",
			Choices:      []string{"Diagram"},
		}},
		Views: []ViewSpec{{
			Library: LibraryEngineering,
			Title:   "Diagrams",
			Fields:  []string{"LinkFilename"},
		}},
	}
	require.NoError(t, m.Validate())

	m.Fields[0].Choices = nil
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChoicesEmpty))

	m.Fields[0].Choices = []string{"Diagram"}
	m.Views[0].Title = ""
	err = m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrViewTitleEmpty))
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	content := `fields:
  - library: Engineering Documents
    internal_name: DocumentType
    display_name: Document Type
    choices: [Diagram, Other]
views:
  - library: Engineering Documents
    title: Diagrams
    fields: [DocIcon, LinkFilename, DocumentType]
    filter:
      field: DocumentType
      value: Diagram
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Fields, 1)
	require.Len(t, m.Views, 1)
	assert.Equal(t, []string{"Diagram", "Other"}, m.Fields[0].Choices)
	require.NotNil(t, m.Views[0].Filter)
	assert.Equal(t, "Diagram", m.Views[0].Filter.Value)
}

func TestLoadManifestErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadManifest(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fields: [}"), 0o644))
		_, err := LoadManifest(path)
		require.Error(t, err)
	})

	t.Run("invalid spec", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		content := "fields:\n  - library: Engineering Documents\n    internal_name: DocumentType\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := LoadManifest(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDisplayNameEmpty))
	})
}
