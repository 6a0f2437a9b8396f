// Package reconcile implements the idempotent upserts that converge
// remote library schema on the declared manifest: one routine for choice
// fields, one for views, and a runner that drives them in manifest order.
package reconcile

import (
	"context"

	"github.com/mesh-intelligence/sitewright/pkg/types"
)

// RemoteSite is the set of remote operations the reconcilers consume.
// *sharepoint.Client satisfies it; tests use a fake.
type RemoteSite interface {
	// GetList resolves a library by title. A missing library wraps
	// types.ErrNotFound.
	GetList(ctx context.Context, title string) error

	// GetChoiceField looks up a field by internal name. Absence is
	// signalled by ok=false, not by an error.
	GetChoiceField(ctx context.Context, list, internalName string) (types.RemoteField, bool, error)

	// AddChoiceField creates the field with its initial choice set,
	// without adding it to the library's default view.
	AddChoiceField(ctx context.Context, spec types.ChoiceFieldSpec) error

	// SetFieldChoices replaces the field's full choice list with the
	// given ordered list.
	SetFieldChoices(ctx context.Context, list, internalName string, choices []string) error

	// SetFieldDescription updates the field's description.
	SetFieldDescription(ctx context.Context, list, internalName, description string) error

	// GetView looks up a view by title. Absence is signalled by ok=false.
	GetView(ctx context.Context, list, title string) (types.RemoteView, bool, error)

	// AddView creates the view with its displayed fields and CAML query.
	AddView(ctx context.Context, spec types.ViewSpec) error

	// SetViewFields replaces the view's displayed-field list.
	SetViewFields(ctx context.Context, list, title string, fields []string) error
}

// Op identifies what a reconciliation step did, or would do in a dry run.
type Op string

const (
	OpCreated   Op = "created"
	OpUpdated   Op = "updated"
	OpUnchanged Op = "unchanged"
)

// Object kinds recorded in actions and the journal.
const (
	KindField = "field"
	KindView  = "view"
)

// Action records the outcome of one reconciliation step.
type Action struct {
	Library string
	Kind    string
	Name    string
	Op      Op
	Detail  string
}
