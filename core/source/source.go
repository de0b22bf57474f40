// Package source resolves and loads the legacy page inputs. It performs
// local file access only: the extraction pipeline never touches the
// network.
package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielengelsman/Isratest/core"
)

// PageFile returns the legacy page filename for a language: index.html for
// the canonical language, index_<lang>.html otherwise. Generated output
// pages follow the same convention.
func PageFile(lang string) string {
	if lang == core.CanonicalLanguage {
		return "index.html"
	}
	return "index_" + lang + ".html"
}

// Load reads a language's legacy page from the source root. A missing page
// is fatal to that language's run.
func Load(root, lang string) (string, error) {
	path := filepath.Join(root, PageFile(lang))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("loading %s page: %w", lang, err)
	}
	return string(data), nil
}

// Discover reports which supported language pages exist under the source
// root, in canonical processing order (English first).
func Discover(root string) []string {
	var langs []string
	for _, lang := range core.Languages {
		if _, err := os.Stat(filepath.Join(root, PageFile(lang))); err == nil {
			langs = append(langs, lang)
		}
	}
	return langs
}
