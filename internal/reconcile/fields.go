package reconcile

import (
	"context"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/sitewright/pkg/types"
)

// EnsureChoiceField brings the remote field in line with spec. Absent
// fields are created with the declared choice set; existing fields get
// the ordered union of remote and declared choices, and a write happens
// only when the union actually adds something. Existing choice values are
// never removed, so repeated runs converge and then write nothing.
//
// When dryRun is set, no write is issued; the returned Action reports what
// a real run would do.
func EnsureChoiceField(ctx context.Context, site RemoteSite, spec types.ChoiceFieldSpec, dryRun bool) (Action, error) {
	action := Action{Library: spec.Library, Kind: KindField, Name: spec.InternalName}

	// A missing library is fatal: provisioning never creates libraries.
	if err := site.GetList(ctx, spec.Library); err != nil {
		return action, fmt.Errorf("resolving library %q: %w", spec.Library, err)
	}

	remote, ok, err := site.GetChoiceField(ctx, spec.Library, spec.InternalName)
	if err != nil {
		return action, fmt.Errorf("looking up field %s/%s: %w", spec.Library, spec.InternalName, err)
	}

	if !ok {
		action.Op = OpCreated
		action.Detail = fmt.Sprintf("choices: %s", strings.Join(spec.Choices, ", "))
		if dryRun {
			return action, nil
		}
		if err := site.AddChoiceField(ctx, spec); err != nil {
			return action, fmt.Errorf("creating field %s/%s: %w", spec.Library, spec.InternalName, err)
		}
		// The creation payload carries no description; apply it as a
		// follow-up update.
		if spec.Description != "" {
			if err := site.SetFieldDescription(ctx, spec.Library, spec.InternalName, spec.Description); err != nil {
				return action, fmt.Errorf("describing field %s/%s: %w", spec.Library, spec.InternalName, err)
			}
		}
		return action, nil
	}

	merged := types.MergeChoices(remote.Choices, spec.Choices)
	added := missingFrom(remote.Choices, merged)
	if len(added) == 0 {
		action.Op = OpUnchanged
		return action, nil
	}

	action.Op = OpUpdated
	action.Detail = fmt.Sprintf("added choices: %s", strings.Join(added, ", "))
	if dryRun {
		return action, nil
	}
	if err := site.SetFieldChoices(ctx, spec.Library, spec.InternalName, merged); err != nil {
		return action, fmt.Errorf("updating choices on %s/%s: %w", spec.Library, spec.InternalName, err)
	}
	return action, nil
}

// missingFrom returns the values of merged that are not in existing,
// preserving merged's order.
func missingFrom(existing, merged []string) []string {
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c] = true
	}
	var added []string
	for _, c := range merged {
		if !have[c] {
			added = append(added, c)
		}
	}
	return added
}
