package reconcile

import (
	"context"
	"fmt"
	"slices"

	"github.com/mesh-intelligence/sitewright/pkg/types"
)

// fakeSite is an in-memory RemoteSite. It tracks mutating calls so tests
// can assert idempotence, and can be primed to fail a specific call.
type fakeSite struct {
	libraries map[string]bool
	fields    map[string]*types.RemoteField // key: library + "/" + internalName
	views     map[string]*types.RemoteView  // key: library + "/" + title

	writes   []string // mutating calls in order, e.g. "AddChoiceField Engineering Documents/DocumentType"
	failCall string   // mutating call name that should fail, e.g. "SetViewFields"
	failErr  error
}

func newFakeSite(libraries ...string) *fakeSite {
	f := &fakeSite{
		libraries: make(map[string]bool),
		fields:    make(map[string]*types.RemoteField),
		views:     make(map[string]*types.RemoteView),
	}
	for _, l := range libraries {
		f.libraries[l] = true
	}
	return f
}

func (f *fakeSite) key(list, name string) string { return list + "/" + name }

func (f *fakeSite) write(call, list, name string) error {
	f.writes = append(f.writes, call+" "+f.key(list, name))
	if f.failCall == call {
		return f.failErr
	}
	return nil
}

func (f *fakeSite) GetList(ctx context.Context, title string) error {
	if !f.libraries[title] {
		return fmt.Errorf("library %q: %w", title, types.ErrNotFound)
	}
	return nil
}

func (f *fakeSite) GetChoiceField(ctx context.Context, list, internalName string) (types.RemoteField, bool, error) {
	fi, ok := f.fields[f.key(list, internalName)]
	if !ok {
		return types.RemoteField{}, false, nil
	}
	return *fi, true, nil
}

func (f *fakeSite) AddChoiceField(ctx context.Context, spec types.ChoiceFieldSpec) error {
	if err := f.write("AddChoiceField", spec.Library, spec.InternalName); err != nil {
		return err
	}
	f.fields[f.key(spec.Library, spec.InternalName)] = &types.RemoteField{
		InternalName: spec.InternalName,
		Title:        spec.DisplayName,
		Description:  spec.Description,
		Choices:      slices.Clone(spec.Choices),
	}
	return nil
}

func (f *fakeSite) SetFieldChoices(ctx context.Context, list, internalName string, choices []string) error {
	if err := f.write("SetFieldChoices", list, internalName); err != nil {
		return err
	}
	f.fields[f.key(list, internalName)].Choices = slices.Clone(choices)
	return nil
}

func (f *fakeSite) SetFieldDescription(ctx context.Context, list, internalName, description string) error {
	if err := f.write("SetFieldDescription", list, internalName); err != nil {
		return err
	}
	f.fields[f.key(list, internalName)].Description = description
	return nil
}

func (f *fakeSite) GetView(ctx context.Context, list, title string) (types.RemoteView, bool, error) {
	vi, ok := f.views[f.key(list, title)]
	if !ok {
		return types.RemoteView{}, false, nil
	}
	return *vi, true, nil
}

func (f *fakeSite) AddView(ctx context.Context, spec types.ViewSpec) error {
	if err := f.write("AddView", spec.Library, spec.Title); err != nil {
		return err
	}
	f.views[f.key(spec.Library, spec.Title)] = &types.RemoteView{
		Title:     spec.Title,
		ViewQuery: spec.Query(),
		Fields:    slices.Clone(spec.Fields),
	}
	return nil
}

func (f *fakeSite) SetViewFields(ctx context.Context, list, title string, fields []string) error {
	if err := f.write("SetViewFields", list, title); err != nil {
		return err
	}
	f.views[f.key(list, title)].Fields = slices.Clone(fields)
	return nil
}
