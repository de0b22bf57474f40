// Package cmd — export command.
// Produces per-language digests of the content store for review:
// Markdown, JSON, or PDF.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielengelsman/Isratest/core"
	"github.com/danielengelsman/Isratest/core/output"
	"github.com/danielengelsman/Isratest/core/render"
	"github.com/danielengelsman/Isratest/core/store"
)

var (
	flagExportContent  string
	flagExportOut      string
	flagExportMarkdown bool
	flagExportJSON     bool
	flagExportPDF      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export per-language digests of the content store",
	Long: `Export reads each language partition and writes a digest document per
language in the chosen format.

Examples:
  isratest export --content ./content --out ./public --markdown
  isratest export --content ./content --out ./public --pdf`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&flagExportContent, "content", "content", "Content store root")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "public", "Output directory for digests")

	// Output format flags (mutually exclusive).
	exportCmd.Flags().BoolVar(&flagExportMarkdown, "markdown", false, "Output Markdown digests")
	exportCmd.Flags().BoolVar(&flagExportJSON, "json", false, "Output JSON digests")
	exportCmd.Flags().BoolVar(&flagExportPDF, "pdf", false, "Output PDF digests")
}

func runExport(cmd *cobra.Command, args []string) error {
	renderer, err := selectDigest()
	if err != nil {
		return err
	}

	st := store.New(flagExportContent)
	writer, err := output.New(flagExportOut)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	for _, lang := range core.Languages {
		loc, err := core.ForLanguage(lang)
		if err != nil {
			return err
		}
		posts, err := st.ReadAll(lang)
		if err != nil {
			return err
		}
		data, err := renderer.Render(loc, posts)
		if err != nil {
			return fmt.Errorf("rendering %s digest: %w", lang, err)
		}
		path, err := writer.WriteDigest(lang, data, renderer.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}
	return nil
}

// selectDigest picks exactly one digest renderer from the format flags.
func selectDigest() (core.DigestRenderer, error) {
	count := 0
	for _, set := range []bool{flagExportMarkdown, flagExportJSON, flagExportPDF} {
		if set {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one output format is required: --markdown, --json, or --pdf")
	}

	switch {
	case flagExportMarkdown:
		return render.NewMarkdownDigest(), nil
	case flagExportJSON:
		return render.NewJSONDigest(), nil
	default:
		return render.NewPDFDigest(), nil
	}
}
