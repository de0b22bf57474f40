// Package cmd — serve command.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielengelsman/Isratest/serve"
)

var (
	flagServeRoot string
	flagServeAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated site over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(flagServeRoot); err != nil {
			return fmt.Errorf("document root: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Serving %s on %s\n", flagServeRoot, flagServeAddr)
		return serve.New(flagServeRoot).Start(flagServeAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagServeRoot, "root", "public", "Document root to serve")
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":8080", "Listen address")
}
