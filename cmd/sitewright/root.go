// Root command and global flags for the sitewright CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sitewright/internal/logging"
)

// Global flag values.
var (
	flagManifest  string
	flagDataDir   string
	flagNoJournal bool
)

var rootCmd = &cobra.Command{
	Use:   "sitewright",
	Short: "Sitewright provisions document library metadata as code",
	Long: `Sitewright idempotently provisions choice columns and filtered views
on a set of SharePoint document libraries, authenticating as a
certificate-based service principal. It only ever adds schema: existing
choice values, views, and documents are never removed.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init("sitewright")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagManifest, "manifest", "",
		"YAML manifest replacing the built-in desired-state table")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"directory holding the run journal (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagNoJournal, "no-journal", false,
		"skip journaling this run")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
