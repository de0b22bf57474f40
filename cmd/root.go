// Package cmd implements the CLI commands for isratest using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "isratest",
	Short: "isratest — transcode the multilingual blog between HTML and the content store",
	Long: `isratest converts the legacy multilingual blog pages into a normalized
per-language content store, and regenerates locale-aware HTML pages from it.

Usage:
  isratest extract  --source ./legacy --content ./content
  isratest generate --content ./content --templates ./templates --out ./public
  isratest export   --content ./content --out ./public --markdown
  isratest serve    --root ./public
  isratest snap http://localhost:8080/ --out ./shots`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
