// Package render produces the locale-specific HTML fragments and the
// final language pages, plus the digest export renderers.
package render

import (
	"fmt"
	"strings"

	"github.com/danielengelsman/Isratest/core"
	"github.com/danielengelsman/Isratest/core/dates"
	"github.com/danielengelsman/Isratest/core/entity"
)

// placeholderPalette backs the deterministic placeholder imagery for posts
// without an image. The last entry is reserved for the featured post; card
// posts cycle through the first five by position.
var placeholderPalette = [6]string{
	"0e4c92", "c0392b", "1e8449", "7d3c98", "b7950b", "117a65",
}

const featuredPaletteIndex = len(placeholderPalette) - 1

// revealCycle is the number of reveal-animation classes (rd1..rd6) the
// grid cycles through.
const revealCycle = 6

// PostRenderer renders a Post into a locale-specific HTML fragment.
// Every free-text field goes through the minimal escape, never the broad
// decode table: these are fresh locale-authored strings being embedded,
// not externally sourced entity text.
type PostRenderer struct {
	loc *core.Locale
}

// NewPostRenderer creates a PostRenderer for the given locale.
func NewPostRenderer(loc *core.Locale) *PostRenderer {
	return &PostRenderer{loc: loc}
}

// Featured renders the highlighted post fragment.
func (r *PostRenderer) Featured(p core.Post) string {
	image := fmt.Sprintf(`  <div class="featured-image">
    <img src="%s" alt="%s">
  </div>
`,
		entity.EscapeMinimal(r.imageURL(p, featuredPaletteIndex, "1200x600")),
		entity.EscapeMinimal(p.ImageAlt))

	body := fmt.Sprintf(`  <div class="featured-body">
    <span class="featured-cat">%s</span>
    <span class="featured-date">%s</span>
    <h2 class="featured-title">%s</h2>
    <p class="featured-excerpt">%s</p>
    <a class="featured-link" href="#%s">%s <span class="arrow">%s</span></a>
  </div>
`,
		entity.EscapeMinimal(r.loc.CategoryLabel(p.Category)),
		entity.EscapeMinimal(dates.Format(r.loc, p.Date)),
		entity.EscapeMinimal(p.Title),
		entity.EscapeMinimal(p.Excerpt),
		p.Slug,
		entity.EscapeMinimal(r.loc.LinkLabel(p.Category, true)),
		r.loc.Arrow)

	return fmt.Sprintf(`<section class="featured-post reveal" data-post="featured" data-cat="%s">
%s</section>`,
		entity.EscapeMinimal(p.Category), r.blocks(image, body))
}

// Card renders one grid post. The index drives the reveal-animation class
// and the placeholder color cycle.
func (r *PostRenderer) Card(p core.Post, index int) string {
	image := fmt.Sprintf(`  <div class="card-image">
    <img src="%s" alt="%s" loading="lazy">
  </div>
`,
		entity.EscapeMinimal(r.imageURL(p, index%featuredPaletteIndex, "800x500")),
		entity.EscapeMinimal(p.ImageAlt))

	body := fmt.Sprintf(`  <div class="card-body">
    <span class="post-cat">%s</span>
    <span class="post-date">%s</span>
    <h3 class="post-title">%s</h3>
    <p class="post-excerpt">%s</p>
    <a class="post-link" href="#%s">%s <span class="arrow">%s</span></a>
  </div>
`,
		entity.EscapeMinimal(r.loc.CategoryLabel(p.Category)),
		entity.EscapeMinimal(dates.Format(r.loc, p.Date)),
		entity.EscapeMinimal(p.Title),
		entity.EscapeMinimal(p.Excerpt),
		p.Slug,
		entity.EscapeMinimal(r.loc.LinkLabel(p.Category, false)),
		r.loc.Arrow)

	return fmt.Sprintf(`<article class="post-card reveal rd%d" data-cat="%s">
%s</article>`,
		index%revealCycle+1, entity.EscapeMinimal(p.Category), r.blocks(image, body))
}

// blocks orders the image and body blocks for the locale's direction:
// image first for LTR, body first for RTL. The blocks themselves are
// structurally identical across locales.
func (r *PostRenderer) blocks(image, body string) string {
	if r.loc.RTL {
		return body + image
	}
	return image + body
}

// imageURL returns the post's image, or a deterministic placeholder built
// from the palette when the post has none.
func (r *PostRenderer) imageURL(p core.Post, paletteIndex int, size string) string {
	if p.Image != "" {
		return p.Image
	}
	label := p.Category
	if label == "" {
		label = "isratest"
	}
	return fmt.Sprintf("https://placehold.co/%s/%s/ffffff?text=%s",
		size, placeholderPalette[paletteIndex], strings.ToLower(label))
}
