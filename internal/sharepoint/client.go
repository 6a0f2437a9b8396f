package sharepoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/koltyakov/gosip/api"

	"github.com/mesh-intelligence/sitewright/internal/reconcile"
	"github.com/mesh-intelligence/sitewright/pkg/types"
)

// Compile-time check: Client must satisfy the reconciler's contract.
var _ reconcile.RemoteSite = (*Client)(nil)

// conf returns an SP root bound to the request context.
func (c *Client) conf(ctx context.Context) *api.SP {
	return c.sp.Conf(&api.RequestConfig{Context: ctx})
}

// GetList resolves a library by title. Missing libraries wrap
// types.ErrNotFound; sitewright never creates them.
func (c *Client) GetList(ctx context.Context, title string) error {
	_, err := c.conf(ctx).Web().Lists().GetByTitle(title).Select("Id,Title").Get()
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("library %q: %w", title, types.ErrNotFound)
		}
		return fmt.Errorf("resolving library %q: %w", title, err)
	}
	return nil
}

// remoteFieldJSON matches the normalized field projection.
type remoteFieldJSON struct {
	InternalName string   `json:"InternalName"`
	Title        string   `json:"Title"`
	Description  string   `json:"Description"`
	Choices      []string `json:"Choices"`
}

// GetChoiceField looks the field up by internal name. Absence is a
// signal, not an error.
func (c *Client) GetChoiceField(ctx context.Context, list, internalName string) (types.RemoteField, bool, error) {
	res, err := c.conf(ctx).Web().Lists().GetByTitle(list).Fields().
		Filter(fmt.Sprintf("InternalName eq '%s'", escapeODataLiteral(internalName))).
		Select("InternalName,Title,Description,Choices").
		Get()
	if err != nil {
		return types.RemoteField{}, false, fmt.Errorf("querying field %s/%s: %w", list, internalName, err)
	}

	var fields []remoteFieldJSON
	if err := json.Unmarshal(res.Normalized(), &fields); err != nil {
		return types.RemoteField{}, false, fmt.Errorf("decoding field %s/%s: %w", list, internalName, err)
	}
	if len(fields) == 0 {
		return types.RemoteField{}, false, nil
	}

	f := fields[0]
	return types.RemoteField{
		InternalName: f.InternalName,
		Title:        f.Title,
		Description:  f.Description,
		Choices:      f.Choices,
	}, true, nil
}

// AddChoiceField creates the choice field from its schema definition. The
// field is not added to the library's default view, and the internal name
// hint keeps the declared name. Descriptions are applied separately via
// SetFieldDescription.
func (c *Client) AddChoiceField(ctx context.Context, spec types.ChoiceFieldSpec) error {
	schema := choiceFieldSchema(spec)
	_, err := c.conf(ctx).Web().Lists().GetByTitle(spec.Library).Fields().
		CreateFieldAsXML(schema, addFieldInternalNameHint)
	if err != nil {
		return fmt.Errorf("%w: adding field %s/%s: %v", types.ErrRemoteWrite, spec.Library, spec.InternalName, err)
	}
	return nil
}

// SetFieldChoices replaces the field's full choice list with the given
// ordered list. The merge semantics live in the reconciler; this call is
// a wholesale replacement.
func (c *Client) SetFieldChoices(ctx context.Context, list, internalName string, choices []string) error {
	body, err := json.Marshal(map[string]any{
		"Choices": map[string]any{"results": choices},
	})
	if err != nil {
		return fmt.Errorf("encoding choices for %s/%s: %w", list, internalName, err)
	}
	_, err = c.conf(ctx).Web().Lists().GetByTitle(list).Fields().
		GetByInternalNameOrTitle(internalName).Update(body)
	if err != nil {
		return fmt.Errorf("%w: updating choices on %s/%s: %v", types.ErrRemoteWrite, list, internalName, err)
	}
	return nil
}

// SetFieldDescription updates the field's description.
func (c *Client) SetFieldDescription(ctx context.Context, list, internalName, description string) error {
	body, err := json.Marshal(map[string]any{"Description": description})
	if err != nil {
		return fmt.Errorf("encoding description for %s/%s: %w", list, internalName, err)
	}
	_, err = c.conf(ctx).Web().Lists().GetByTitle(list).Fields().
		GetByInternalNameOrTitle(internalName).Update(body)
	if err != nil {
		return fmt.Errorf("%w: updating description on %s/%s: %v", types.ErrRemoteWrite, list, internalName, err)
	}
	return nil
}

// remoteViewJSON matches the normalized view projection.
type remoteViewJSON struct {
	Title     string `json:"Title"`
	ViewQuery string `json:"ViewQuery"`
}

// GetView looks the view up by title. Absence is a signal, not an error.
// The displayed-field list comes from the viewfields endpoint, which
// gosip does not wrap.
func (c *Client) GetView(ctx context.Context, list, title string) (types.RemoteView, bool, error) {
	res, err := c.conf(ctx).Web().Lists().GetByTitle(list).Views().
		Filter(fmt.Sprintf("Title eq '%s'", escapeODataLiteral(title))).
		Select("Title,ViewQuery").
		Get()
	if err != nil {
		return types.RemoteView{}, false, fmt.Errorf("querying view %s/%s: %w", list, title, err)
	}

	var views []remoteViewJSON
	if err := json.Unmarshal(res.Normalized(), &views); err != nil {
		return types.RemoteView{}, false, fmt.Errorf("decoding view %s/%s: %w", list, title, err)
	}
	if len(views) == 0 {
		return types.RemoteView{}, false, nil
	}

	fields, err := c.getViewFields(ctx, list, title)
	if err != nil {
		return types.RemoteView{}, false, err
	}

	return types.RemoteView{
		Title:     views[0].Title,
		ViewQuery: views[0].ViewQuery,
		Fields:    fields,
	}, true, nil
}

// viewPayload is the creation body for Views().Add.
type viewPayload struct {
	Title        string `json:"Title"`
	PersonalView bool   `json:"PersonalView"`
	ViewQuery    string `json:"ViewQuery,omitempty"`
}

// AddView creates the view with its filter query, then applies the
// declared displayed-field list.
func (c *Client) AddView(ctx context.Context, spec types.ViewSpec) error {
	body, err := json.Marshal(viewPayload{
		Title:     spec.Title,
		ViewQuery: spec.Query(),
	})
	if err != nil {
		return fmt.Errorf("encoding view %s/%s: %w", spec.Library, spec.Title, err)
	}
	if _, err := c.conf(ctx).Web().Lists().GetByTitle(spec.Library).Views().Add(body); err != nil {
		return fmt.Errorf("%w: adding view %s/%s: %v", types.ErrRemoteWrite, spec.Library, spec.Title, err)
	}
	return c.SetViewFields(ctx, spec.Library, spec.Title, spec.Fields)
}

// SetViewFields replaces the view's displayed-field list: remove all,
// then re-add each declared field in order, via the raw viewfields
// endpoints.
func (c *Client) SetViewFields(ctx context.Context, list, title string, fields []string) error {
	base := c.viewFieldsEndpoint(list, title)

	if _, err := c.http.Post(base+"/removeallviewfields", bytes.NewBufferString("{}"), c.requestConfig(ctx)); err != nil {
		return fmt.Errorf("%w: clearing fields on view %s/%s: %v", types.ErrRemoteWrite, list, title, err)
	}
	for _, f := range fields {
		endpoint := fmt.Sprintf("%s/addviewfield('%s')", base, escapeODataLiteral(f))
		if _, err := c.http.Post(endpoint, bytes.NewBufferString("{}"), c.requestConfig(ctx)); err != nil {
			return fmt.Errorf("%w: adding field %q to view %s/%s: %v", types.ErrRemoteWrite, f, list, title, err)
		}
	}
	return nil
}

// viewFieldsItemsJSON covers the two shapes the viewfields endpoint
// returns depending on OData mode.
type viewFieldsItemsJSON struct {
	Items []string `json:"Items"`
	D     struct {
		ViewFields struct {
			Items struct {
				Results []string `json:"results"`
			} `json:"Items"`
		} `json:"ViewFields"`
	} `json:"d"`
}

// getViewFields reads the view's displayed-field list from the raw
// viewfields endpoint.
func (c *Client) getViewFields(ctx context.Context, list, title string) ([]string, error) {
	data, err := c.http.Get(c.viewFieldsEndpoint(list, title), c.requestConfig(ctx))
	if err != nil {
		return nil, fmt.Errorf("reading fields of view %s/%s: %w", list, title, err)
	}
	fields, err := decodeViewFields(data)
	if err != nil {
		return nil, fmt.Errorf("decoding fields of view %s/%s: %w", list, title, err)
	}
	return fields, nil
}

// decodeViewFields handles both the minimal and verbose OData envelopes.
func decodeViewFields(data []byte) ([]string, error) {
	var payload viewFieldsItemsJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if payload.Items != nil {
		return payload.Items, nil
	}
	return payload.D.ViewFields.Items.Results, nil
}

func (c *Client) viewFieldsEndpoint(list, title string) string {
	return fmt.Sprintf(
		"%s/_api/web/lists/getbytitle('%s')/views/getbytitle('%s')/viewfields",
		strings.TrimRight(c.siteURL, "/"),
		escapeODataLiteral(list),
		escapeODataLiteral(title),
	)
}

func (c *Client) requestConfig(ctx context.Context) *api.RequestConfig {
	return &api.RequestConfig{Context: ctx}
}

// isNotFound reports whether the platform rejected the request because
// the addressed object does not exist.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "404") || strings.Contains(msg, "does not exist")
}

// escapeODataLiteral doubles single quotes for embedding in an OData
// string literal.
func escapeODataLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
