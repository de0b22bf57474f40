package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/danielengelsman/Isratest/core"
)

// MarkdownDigest renders a language's posts as a Markdown review document.
// Each post's card markup is converted through html-to-markdown so the
// digest reflects exactly what generation would emit.
type MarkdownDigest struct{}

// NewMarkdownDigest creates a MarkdownDigest.
func NewMarkdownDigest() *MarkdownDigest {
	return &MarkdownDigest{}
}

// Render converts the posts into a single Markdown document.
func (d *MarkdownDigest) Render(loc *core.Locale, posts []core.Post) ([]byte, error) {
	renderer := NewPostRenderer(loc)

	var b strings.Builder
	fmt.Fprintf(&b, "# isratest digest (%s)\n\n", loc.Code)

	for i, p := range posts {
		fragment := renderer.Card(p, i)
		markdown, err := htmltomarkdown.ConvertString(fragment)
		if err != nil {
			return nil, fmt.Errorf("converting post %q: %w", p.Slug, err)
		}
		fmt.Fprintf(&b, "---\n\n%s\n\n", strings.TrimSpace(markdown))
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (d *MarkdownDigest) Extension() string {
	return ".md"
}
