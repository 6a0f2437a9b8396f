// Package main provides the sitewright CLI, which provisions choice
// columns and filtered views on SharePoint document libraries.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
