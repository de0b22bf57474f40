// Package extract parses legacy blog pages into Post records.
// It is not a general-purpose HTML scraper: only the documented structural
// anchors are supported (the featured container's data-post attribute, the
// posts grid, and the sequential post comment markers). Every field is
// matched independently; a fragment missing a field yields an empty string
// for that field instead of aborting the fragment or the document.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/danielengelsman/Isratest/core"
	"github.com/danielengelsman/Isratest/core/dates"
	"github.com/danielengelsman/Isratest/core/entity"
	"github.com/danielengelsman/Isratest/core/slug"
)

// Structural anchors shared with the renderer.
const (
	featuredSelector = `[data-post="featured"]`
	gridSelector     = "div.posts-grid"
)

// postMarker delimits the grid's card fragments (<!-- Post 1 -->, ...).
var postMarker = regexp.MustCompile(`<!--\s*Post\s+\d+\s*-->`)

// fieldSelectors are the role-specific tag/class combinations for the
// free-text fields. Featured and card fragments use distinct selectors.
type fieldSelectors struct {
	date    string
	title   string
	excerpt string
}

var (
	featuredFields = fieldSelectors{".featured-date", ".featured-title", ".featured-excerpt"}
	cardFields     = fieldSelectors{".post-date", ".post-title", ".post-excerpt"}
)

// Extractor parses one language's legacy page.
type Extractor struct {
	loc *core.Locale
}

// New creates an Extractor for the given locale.
func New(loc *core.Locale) *Extractor {
	return &Extractor{loc: loc}
}

// Posts extracts the whole page: the featured post (if the page has one)
// followed by the grid cards, in document order.
func (e *Extractor) Posts(html string) ([]core.Post, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	var posts []core.Post
	if featured := e.featured(doc); featured != nil {
		posts = append(posts, *featured)
	}
	cards, err := e.cards(doc)
	if err != nil {
		return nil, err
	}
	return append(posts, cards...), nil
}

// Featured extracts the single featured block, or nil when the page has
// none. A missing featured block is not an error: the page may simply not
// have one.
func (e *Extractor) Featured(html string) (*core.Post, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return e.featured(doc), nil
}

// Cards extracts the grid posts in document order. A missing grid
// container yields an empty list, not an error.
func (e *Extractor) Cards(html string) ([]core.Post, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return e.cards(doc)
}

func (e *Extractor) featured(doc *goquery.Document) *core.Post {
	sel := doc.Find(featuredSelector).First()
	if sel.Length() == 0 {
		return nil
	}
	p := e.fragment(sel, featuredFields)
	p.Featured = true
	return &p
}

func (e *Extractor) cards(doc *goquery.Document) ([]core.Post, error) {
	grid := doc.Find(gridSelector).First()
	if grid.Length() == 0 {
		return nil, nil
	}

	inner, err := grid.Html()
	if err != nil {
		return nil, fmt.Errorf("serializing grid: %w", err)
	}

	chunks := postMarker.Split(inner, -1)
	if len(chunks) < 2 {
		return nil, nil
	}

	var posts []core.Post
	for _, chunk := range chunks[1:] {
		// Adjacent markers with nothing between them produce no card.
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		frag, err := goquery.NewDocumentFromReader(strings.NewReader(chunk))
		if err != nil {
			return nil, fmt.Errorf("parsing card fragment: %w", err)
		}
		root := frag.Find("[data-cat]").First()
		if root.Length() == 0 {
			root = frag.Find("body").First()
		}
		posts = append(posts, e.fragment(root, cardFields))
	}
	return posts, nil
}

// fragment pulls each field with an independent match. Absent fields stay
// empty; only document-level structural absence is fatal to extraction.
func (e *Extractor) fragment(sel *goquery.Selection, fields fieldSelectors) core.Post {
	var p core.Post

	p.Category = sel.AttrOr("data-cat", "")

	img := sel.Find("img").First()
	p.Image = img.AttrOr("src", "")
	p.ImageAlt = entity.Decode(img.AttrOr("alt", ""))

	p.Date = dates.Parse(e.loc, text(sel, fields.date))
	p.Title = entity.Decode(text(sel, fields.title))
	p.Excerpt = entity.Decode(text(sel, fields.excerpt))

	// Slug from the title for English, from the decoded alt text
	// otherwise. Non-English slugs are later overridden by the canonical
	// English-derived slug at the same position.
	if e.loc.Code == core.CanonicalLanguage {
		p.Slug = slug.Make(p.Title)
	} else {
		p.Slug = slug.Make(p.ImageAlt)
	}
	return p
}

func text(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}
