// Version command for the sitewright CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sitewright/pkg/sitewright"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sitewright version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "sitewright", sitewright.Version)
	},
}
