// Package cmd — extract command.
// Runs the extraction flow: legacy HTML pages → structured documents.
// English is extracted first so its slugs become the canonical identity
// list, applied positionally to every other language before writing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielengelsman/Isratest/core"
	"github.com/danielengelsman/Isratest/core/extract"
	"github.com/danielengelsman/Isratest/core/source"
	"github.com/danielengelsman/Isratest/core/store"
)

var (
	flagExtractSource  string
	flagExtractContent string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract posts from the legacy HTML pages into the content store",
	Long: `Extract parses each language's legacy page into Post records and writes
one structured document per post per language. The English page is required;
other languages are processed when their page exists under --source.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&flagExtractSource, "source", "legacy", "Directory holding the legacy HTML pages")
	extractCmd.Flags().StringVar(&flagExtractContent, "content", "content", "Content store root")
}

func runExtract(cmd *cobra.Command, args []string) error {
	st := store.New(flagExtractContent)

	// Canonical pass: English establishes the slug list before any other
	// language is written.
	canonical, err := extractLanguage(st, core.CanonicalLanguage, nil)
	if err != nil {
		return err
	}

	for _, lang := range source.Discover(flagExtractSource) {
		if lang == core.CanonicalLanguage {
			continue
		}
		if _, err := extractLanguage(st, lang, canonical); err != nil {
			return err
		}
	}
	return nil
}

// extractLanguage runs one language end to end: load, extract, unify
// against the canonical slug list (nil for the canonical pass itself),
// write. It returns the partition's slugs in order.
func extractLanguage(st *store.Store, lang string, canonical []string) ([]string, error) {
	loc, err := core.ForLanguage(lang)
	if err != nil {
		return nil, err
	}

	html, err := source.Load(flagExtractSource, lang)
	if err != nil {
		return nil, err
	}

	posts, err := extract.New(loc).Posts(html)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", lang, err)
	}
	if canonical != nil {
		posts = core.UnifySlugs(canonical, posts)
	}

	for _, p := range posts {
		path, err := st.Write(lang, p)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)
	}
	fmt.Fprintf(os.Stdout, "%s: %d posts extracted\n", lang, len(posts))

	return core.CanonicalSlugs(posts), nil
}
