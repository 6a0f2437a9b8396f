package reconcile

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/mesh-intelligence/sitewright/pkg/types"
)

// EnsureView brings the remote view in line with spec. Absent views are
// created with the declared fields and filter; on existing views only the
// displayed-field list is converged. The live filter query is never
// touched: changing a saved filter is a manual operation. When the live
// query has drifted from the declared predicate, a warning is logged so
// the drift is at least visible.
func EnsureView(ctx context.Context, site RemoteSite, spec types.ViewSpec, dryRun bool) (Action, error) {
	action := Action{Library: spec.Library, Kind: KindView, Name: spec.Title}

	if err := site.GetList(ctx, spec.Library); err != nil {
		return action, fmt.Errorf("resolving library %q: %w", spec.Library, err)
	}

	remote, ok, err := site.GetView(ctx, spec.Library, spec.Title)
	if err != nil {
		return action, fmt.Errorf("looking up view %s/%s: %w", spec.Library, spec.Title, err)
	}

	if !ok {
		action.Op = OpCreated
		if dryRun {
			return action, nil
		}
		if err := site.AddView(ctx, spec); err != nil {
			return action, fmt.Errorf("creating view %s/%s: %w", spec.Library, spec.Title, err)
		}
		return action, nil
	}

	if want := spec.Query(); want != "" && remote.ViewQuery != want {
		log.Warn().
			Str("library", spec.Library).
			Str("view", spec.Title).
			Str("declared", want).
			Str("live", remote.ViewQuery).
			Msg("view filter has drifted from the declared predicate; leaving it untouched")
	}

	if slices.Equal(remote.Fields, spec.Fields) {
		action.Op = OpUnchanged
		return action, nil
	}

	action.Op = OpUpdated
	action.Detail = "displayed fields refreshed"
	if dryRun {
		return action, nil
	}
	if err := site.SetViewFields(ctx, spec.Library, spec.Title, spec.Fields); err != nil {
		return action, fmt.Errorf("updating fields on view %s/%s: %w", spec.Library, spec.Title, err)
	}
	return action, nil
}
