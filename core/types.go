// Package core defines the shared types and pipeline interfaces for the
// Isratest blog transcoder. Each stage of the pipeline is a clean,
// testable interface.
package core

// Post is one blog entry in one language.
type Post struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Date     string `json:"date"` // ISO YYYY-MM-DD (verbatim text if unparseable)
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	ImageAlt string `json:"image_alt"`
	Featured bool   `json:"featured"`
}

// CanonicalLanguage is the partition whose slugs define post identity
// across all languages.
const CanonicalLanguage = "en"

// Languages lists the supported language partitions in processing order,
// canonical first: its extraction pass produces the canonical slug list.
var Languages = []string{CanonicalLanguage, "fr", "he"}

// PostExtractor parses a legacy HTML page into an ordered list of posts,
// featured post (if any) first.
type PostExtractor interface {
	Posts(html string) ([]Post, error)
}

// PostStore reads and writes structured post documents for one language
// partition at a time.
type PostStore interface {
	Write(lang string, p Post) (string, error)
	ReadAll(lang string) ([]Post, error)
}

// DigestRenderer converts a language's posts into an export format.
type DigestRenderer interface {
	Render(loc *Locale, posts []Post) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md").
	Extension() string
}

// UnifySlugs overwrites each post's slug with the canonical slug at the
// same position. Canonical identity is positional: language partitions are
// assumed to hold the same posts in the same order. Excess canonical slugs
// are unused; posts beyond the canonical list keep their extracted slugs.
func UnifySlugs(canonical []string, posts []Post) []Post {
	for i := range posts {
		if i < len(canonical) && canonical[i] != "" {
			posts[i].Slug = canonical[i]
		}
	}
	return posts
}

// CanonicalSlugs returns the ordered slug list of an extracted partition,
// to be passed explicitly into every other language's write step.
func CanonicalSlugs(posts []Post) []string {
	slugs := make([]string, len(posts))
	for i, p := range posts {
		slugs[i] = p.Slug
	}
	return slugs
}
