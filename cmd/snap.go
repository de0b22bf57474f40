// Package cmd — snap command.
// Captures full-page screenshots of the generated pages with headless
// Chrome, one numbered image per URL.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielengelsman/Isratest/snapshot"
)

var (
	flagSnapOut     string
	flagSnapTimeout time.Duration
)

var snapCmd = &cobra.Command{
	Use:   "snap <url>...",
	Short: "Capture full-page screenshots of the given pages",
	Long: `Snap loads each page in headless Chrome, waits for the network to settle,
scrolls through the page to trigger the reveal animations, and writes a
full-page PNG per URL into --out.

Examples:
  isratest snap http://localhost:8080/ http://localhost:8080/index_he.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSnap,
}

func init() {
	rootCmd.AddCommand(snapCmd)

	snapCmd.Flags().StringVar(&flagSnapOut, "out", "shots", "Output directory for screenshots")
	snapCmd.Flags().DurationVar(&flagSnapTimeout, "timeout", 30*time.Second, "Per-page load timeout")
}

func runSnap(cmd *cobra.Command, args []string) error {
	capturer := snapshot.New(flagSnapOut, flagSnapTimeout)
	defer capturer.Close()

	ctx := context.Background()
	for i, pageURL := range args {
		fmt.Fprintf(os.Stdout, "[%d/%d] Capturing %s\n", i+1, len(args), pageURL)
		path, err := capturer.Capture(ctx, pageURL)
		if err != nil {
			return fmt.Errorf("capturing %s: %w", pageURL, err)
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)
	}
	return nil
}
