package types

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Eq is a single-field equality predicate scoping a view to rows where
// Field equals Value. This is the only predicate shape views use; it is
// rendered to a CAML Where clause at creation time and never altered on
// an existing view.
type Eq struct {
	Field string `json:"field" yaml:"field"`
	Value string `json:"value" yaml:"value"`
}

// CAML renders the predicate as a CAML Where clause suitable for a view's
// ViewQuery. Field and value are XML-escaped.
func (e Eq) CAML() string {
	var buf bytes.Buffer
	// EscapeText cannot fail writing to a bytes.Buffer.
	_ = xml.EscapeText(&buf, []byte(e.Field))
	field := buf.String()
	buf.Reset()
	_ = xml.EscapeText(&buf, []byte(e.Value))
	value := buf.String()
	return fmt.Sprintf(
		`<Where><Eq><FieldRef Name="%s"/><Value Type="Choice">%s</Value></Eq></Where>`,
		field, value,
	)
}

// ViewSpec declares a filtered view on a document library: an ordered list
// of displayed fields plus an optional equality filter. The filter is fixed
// at creation time; reconciliation of an existing view only converges the
// displayed fields.
type ViewSpec struct {
	Library string   `json:"library" yaml:"library"`
	Title   string   `json:"title" yaml:"title"`
	Fields  []string `json:"fields" yaml:"fields"`
	Filter  *Eq      `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// Validate checks that the spec is complete.
func (s ViewSpec) Validate() error {
	if s.Library == "" {
		return ErrLibraryEmpty
	}
	if s.Title == "" {
		return ErrViewTitleEmpty
	}
	if len(s.Fields) == 0 {
		return ErrViewFieldsEmpty
	}
	return nil
}

// Query returns the CAML ViewQuery for the spec, or the empty string when
// the view is unfiltered.
func (s ViewSpec) Query() string {
	if s.Filter == nil {
		return ""
	}
	return s.Filter.CAML()
}
