// Plan command: dry-run reconciliation.
package main

import (
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what apply would change, without writing anything",
	Long: `Plan performs the same reads as apply and reports the create and
update operations a real run would issue. No remote write happens.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconciliation(cmd, true)
	},
}

func init() {
	registerConnectionFlags(planCmd)
}
