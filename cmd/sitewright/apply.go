// Apply command: reconcile the manifest against the remote site.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sitewright/internal/reconcile"
	"github.com/mesh-intelligence/sitewright/internal/sharepoint"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Provision the declared columns and views on the remote site",
	Long: `Apply connects to the target site and reconciles the manifest: every
declared choice column and filtered view is created if absent, or
converged if present. Choice sets only ever grow, and the filter of an
existing view is never altered. The first failure aborts the run;
whatever was already applied stays applied and the next run picks up
from a converged prefix.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconciliation(cmd, false)
	},
}

func init() {
	registerConnectionFlags(applyCmd)
}

// runReconciliation is the shared body of apply and plan.
func runReconciliation(cmd *cobra.Command, dryRun bool) error {
	cfg, err := loadConnectionConfig()
	if err != nil {
		return err
	}
	m, source, err := loadManifest()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	client, err := sharepoint.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	rec, closeJournal := beginJournal(cfg.SiteURL, source, dryRun)
	defer closeJournal()

	runner := &reconcile.Runner{
		Site:    client,
		DryRun:  dryRun,
		Observe: journalObserver(rec),
	}

	actions, runErr := runner.Run(ctx, m)
	created, updated, unchanged := reconcile.Summarize(actions)
	finishJournal(rec, runErr, created, updated, unchanged)

	if runErr != nil {
		return runErr
	}

	verb := "provisioned"
	if dryRun {
		verb = "planned"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d created, %d updated, %d unchanged\n",
		verb, cfg.SiteURL, created, updated, unchanged)
	return nil
}
