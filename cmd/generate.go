// Package cmd — generate command.
// Runs the generation flow: structured documents + locale templates → one
// HTML page per language. Generation is read-only over the content store.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danielengelsman/Isratest/core"
	"github.com/danielengelsman/Isratest/core/output"
	"github.com/danielengelsman/Isratest/core/render"
	"github.com/danielengelsman/Isratest/core/store"
)

var (
	flagGenContent   string
	flagGenTemplates string
	flagGenOut       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the language pages from the content store",
	Long: `Generate reads each language partition, orders the posts, selects the
featured one, and stitches the rendered fragments with that language's
top/bottom templates into one output page per language.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&flagGenContent, "content", "content", "Content store root")
	generateCmd.Flags().StringVar(&flagGenTemplates, "templates", "templates", "Directory holding <lang>_top.html / <lang>_bottom.html")
	generateCmd.Flags().StringVar(&flagGenOut, "out", "public", "Output directory for generated pages")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	st := store.New(flagGenContent)

	writer, err := output.New(flagGenOut)
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

		top, err := readTemplate(lang, "top")
		if err != nil {
			return err
		}
		bottom, err := readTemplate(lang, "bottom")
		if err != nil {
			return err
		}

		page, err := render.NewPageAssembler(loc).Assemble(posts, top, bottom)
		if err != nil {
			return fmt.Errorf("assembling %s page: %w", lang, err)
		}

		path, err := writer.WritePage(lang, page)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s (%d posts)\n", path, len(posts))
	}
	return nil
}

// readTemplate loads one opaque template file; absence is fatal.
func readTemplate(lang, part string) ([]byte, error) {
	path := filepath.Join(flagGenTemplates, lang+"_"+part+".html")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}
	return data, nil
}
