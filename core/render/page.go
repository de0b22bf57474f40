package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/danielengelsman/Isratest/core"
)

// ErrNoPosts means generation was asked to build a page for a partition
// with nothing to feature.
var ErrNoPosts = errors.New("no posts to assemble")

// Grid wrapper emitted around the card fragments. The opening div is the
// extractor's grid anchor.
const (
	gridOpen  = "<section class=\"posts-section\">\n<div class=\"posts-grid\">\n"
	gridClose = "</div>\n</section>\n"
)

// PageAssembler orders a language's posts, selects the featured one, and
// stitches the rendered fragments with the externally supplied templates.
type PageAssembler struct {
	renderer *PostRenderer
}

// NewPageAssembler creates a PageAssembler rendering with the given locale.
func NewPageAssembler(loc *core.Locale) *PageAssembler {
	return &PageAssembler{renderer: NewPostRenderer(loc)}
}

// Assemble builds one output page: topTemplate, the featured fragment, the
// comment-labelled grid of remaining posts, and bottomTemplate. Templates
// are opaque byte sequences; the assembler only concatenates around them.
func (a *PageAssembler) Assemble(posts []core.Post, topTemplate, bottomTemplate []byte) ([]byte, error) {
	if len(posts) == 0 {
		return nil, ErrNoPosts
	}

	// Newest first; equal dates keep their original relative order.
	sorted := make([]core.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	// The featured post is the first flagged one, falling back to the
	// most recent when nothing is flagged.
	featuredIdx := 0
	for i, p := range sorted {
		if p.Featured {
			featuredIdx = i
			break
		}
	}
	featured := sorted[featuredIdx]
	grid := append(sorted[:featuredIdx:featuredIdx], sorted[featuredIdx+1:]...)

	var b strings.Builder
	b.Write(topTemplate)
	b.WriteString(a.renderer.Featured(featured))
	b.WriteString("\n")
	b.WriteString(gridOpen)
	for i, p := range grid {
		fmt.Fprintf(&b, "<!-- Post %d -->\n", i+1)
		b.WriteString(a.renderer.Card(p, i))
		b.WriteString("\n")
	}
	b.WriteString(gridClose)
	b.Write(bottomTemplate)

	return []byte(b.String()), nil
}
