// History command: inspect journaled runs.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sitewright/internal/journal"
	"github.com/mesh-intelligence/sitewright/internal/paths"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List journaled provisioning runs, or show one run's actions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := paths.ResolveDataDir(flagDataDir)
		if err != nil {
			return fmt.Errorf("resolving data dir: %w", err)
		}
		j, err := journal.Open(dataDir)
		if err != nil {
			return err
		}
		defer j.Close()

		if len(args) == 1 {
			return printRunActions(cmd, j, args[0])
		}
		return printRuns(cmd, j)
	},
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "maximum runs to list")
}

func printRuns(cmd *cobra.Command, j *journal.Journal) error {
	runs, err := j.ListRuns(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no journaled runs")
		return nil
	}
	for _, r := range runs {
		mode := "apply"
		if r.DryRun {
			mode = "plan"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-5s %-9s %s  %d created, %d updated, %d unchanged\n",
			r.ID, r.StartedAt.Format(time.RFC3339), mode, r.Status, r.Site,
			r.Created, r.Updated, r.Unchanged)
	}
	return nil
}

func printRunActions(cmd *cobra.Command, j *journal.Journal, runID string) error {
	actions, err := j.RunActions(runID)
	if err != nil {
		return err
	}
	for _, a := range actions {
		line := fmt.Sprintf("%3d  %-5s %-9s %s/%s", a.Seq, a.Kind, a.Op, a.Library, a.Name)
		if a.Detail != "" {
			line += "  (" + a.Detail + ")"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
