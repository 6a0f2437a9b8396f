package reconcile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mesh-intelligence/sitewright/pkg/types"
)

// Runner drives a provisioning run: every field ensure, then every view
// ensure, in manifest order. The first failure aborts the remainder;
// effects already applied stay applied, which is safe because each step
// is independently idempotent and monotonic.
type Runner struct {
	Site   RemoteSite
	DryRun bool

	// Observe, when set, receives each completed Action. Used for
	// journaling; observer failures are the observer's problem.
	Observe func(Action)
}

// Run reconciles the whole manifest and returns the actions completed.
// On error the returned slice holds the actions that finished before the
// failing step.
func (r *Runner) Run(ctx context.Context, m types.Manifest) ([]Action, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}

	actions := make([]Action, 0, len(m.Fields)+len(m.Views))

	for _, spec := range m.Fields {
		action, err := EnsureChoiceField(ctx, r.Site, spec, r.DryRun)
		if err != nil {
			return actions, err
		}
		r.record(action)
		actions = append(actions, action)
	}

	for _, spec := range m.Views {
		action, err := EnsureView(ctx, r.Site, spec, r.DryRun)
		if err != nil {
			return actions, err
		}
		r.record(action)
		actions = append(actions, action)
	}

	return actions, nil
}

func (r *Runner) record(a Action) {
	evt := log.Info()
	if a.Op == OpUnchanged {
		evt = log.Debug()
	}
	logAction(evt, a, r.DryRun)
	if r.Observe != nil {
		r.Observe(a)
	}
}

func logAction(evt *zerolog.Event, a Action, dryRun bool) {
	evt = evt.
		Str("library", a.Library).
		Str("kind", a.Kind).
		Str("name", a.Name).
		Str("op", string(a.Op))
	if a.Detail != "" {
		evt = evt.Str("detail", a.Detail)
	}
	if dryRun {
		evt.Msg("planned")
		return
	}
	evt.Msg("reconciled")
}

// Summarize counts actions by op for the end-of-run summary line.
func Summarize(actions []Action) (created, updated, unchanged int) {
	for _, a := range actions {
		switch a.Op {
		case OpCreated:
			created++
		case OpUpdated:
			updated++
		case OpUnchanged:
			unchanged++
		}
	}
	return created, updated, unchanged
}
