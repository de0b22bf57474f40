// Package output handles file naming and writing for generated pages and
// digest exports. Pages follow the language naming convention of the
// legacy site (index.html, index_fr.html, ...).
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielengelsman/Isratest/core/source"
)

// Writer writes generated output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WritePage writes one language's generated page.
func (w *Writer) WritePage(lang string, data []byte) (string, error) {
	path := filepath.Join(w.OutputDir, source.PageFile(lang))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing page %s: %w", path, err)
	}
	return path, nil
}

// WriteDigest writes a digest export with the renderer-supplied extension.
func (w *Writer) WriteDigest(lang string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, "digest_"+lang+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing digest %s: %w", path, err)
	}
	return path, nil
}
