package sharepoint

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/sitewright/pkg/types"
)

// addFieldInternalNameHint is the SP.AddFieldOptions flag that keeps the
// declared internal name instead of letting the platform derive one from
// the display name. No default-view flag is set, so the new field is not
// added to the library's default view.
const addFieldInternalNameHint = 8

// choiceFieldSchema renders the CAML schema definition for a new choice
// field: dropdown format, declared internal and display names, and the
// initial choice list in declared order.
func choiceFieldSchema(spec types.ChoiceFieldSpec) string {
	return choiceSchemaXML(spec.InternalName, spec.DisplayName, spec.Choices)
}

// xmlEscape escapes s for use in XML attribute or element content.
func xmlEscape(s string) string {
	var buf bytes.Buffer
	// EscapeText cannot fail writing to a bytes.Buffer.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// choiceSchemaXML builds the field schema document.
func choiceSchemaXML(internalName, displayName string, choices []string) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<Field Type="Choice" Name="%s" StaticName="%s" DisplayName="%s" Format="Dropdown">`,
		xmlEscape(internalName), xmlEscape(internalName), xmlEscape(displayName),
	)
	b.WriteString("<CHOICES>")
	for _, c := range choices {
		fmt.Fprintf(&b, "<CHOICE>%s</CHOICE>", xmlEscape(c))
	}
	b.WriteString("</CHOICES></Field>")
	return b.String()
}
