// Manifest command: print the effective desired state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the effective manifest as YAML",
	Long: `Manifest prints the desired state an apply would reconcile: the
built-in table, or the file given with --manifest after validation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, source, err := loadManifest()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("encoding manifest: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, out)
		return nil
	},
}
