// Package store persists posts as structured documents: one file per post
// per language, a front-matter header block of key:value lines between ---
// fences, then a body echoing the title. Write produces the header by hand
// so the key order and quoting stay byte-stable; Read parses it as YAML.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/danielengelsman/Isratest/core"
)

const (
	separator = "---"
	docExt    = ".md"
)

// ErrNoHeader means a document is missing its front-matter fences.
var ErrNoHeader = errors.New("document has no header block")

// Store reads and writes one language partition at a time under a content
// root. A run assumes exclusive ownership of the root for its duration.
type Store struct {
	root string
}

// New creates a Store over the given content root.
func New(root string) *Store {
	return &Store{root: root}
}

// Write serializes a post into its structured document, filed under the
// language partition with the slug as the base filename. It returns the
// written path.
func (s *Store) Write(lang string, p core.Post) (string, error) {
	dir := filepath.Join(s.root, lang)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating partition %s: %w", lang, err)
	}

	path := filepath.Join(dir, p.Slug+docExt)
	if err := os.WriteFile(path, []byte(document(p)), 0644); err != nil {
		return "", fmt.Errorf("writing document %s: %w", path, err)
	}
	return path, nil
}

// document builds the header block, the separator, and the body.
func document(p core.Post) string {
	var b strings.Builder
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "title: %s\n", quote(p.Title))
	fmt.Fprintf(&b, "slug: %s\n", quote(p.Slug))
	fmt.Fprintf(&b, "date: %s\n", quote(p.Date))
	fmt.Fprintf(&b, "category: %s\n", quote(p.Category))
	fmt.Fprintf(&b, "excerpt: %s\n", quote(p.Excerpt))
	fmt.Fprintf(&b, "image: %s\n", quote(p.Image))
	fmt.Fprintf(&b, "image_alt: %s\n", quote(p.ImageAlt))
	fmt.Fprintf(&b, "featured: %t\n", p.Featured)
	b.WriteString(separator + "\n\n")
	b.WriteString(p.Title + "\n")
	return b.String()
}

// quote double-quotes a textual value, escaping embedded backslashes and
// double quotes so the header stays parseable.
func quote(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return `"` + value + `"`
}

// header mirrors the document's key:value block for parsing.
type header struct {
	Title    string    `yaml:"title"`
	Slug     string    `yaml:"slug"`
	Date     dateValue `yaml:"date"`
	Category string    `yaml:"category"`
	Excerpt  string    `yaml:"excerpt"`
	Image    string    `yaml:"image"`
	ImageAlt string    `yaml:"image_alt"`
	Featured bool      `yaml:"featured"`
}

// dateValue accepts a date arriving either as a typed calendar value or as
// a plain string and normalizes both to the ISO YYYY-MM-DD form, so every
// later comparison and formatting sees the same in-memory representation.
type dateValue string

func (d *dateValue) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var t time.Time
	if err := unmarshal(&t); err == nil && !t.IsZero() {
		*d = dateValue(t.UTC().Format("2006-01-02"))
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*d = dateValue(strings.TrimSpace(s))
	return nil
}

// ReadAll reads every document in a language partition, in filename order.
// A missing partition directory is fatal to that language's run.
func (s *Store) ReadAll(lang string) ([]core.Post, error) {
	dir := filepath.Join(s.root, lang)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading partition %s: %w", lang, err)
	}

	var posts []core.Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), docExt) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading document %s: %w", path, err)
		}
		p, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing document %s: %w", path, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// parse splits a document into header and body and decodes the header.
func parse(data []byte) (core.Post, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	rest, ok := strings.CutPrefix(text, separator+"\n")
	if !ok {
		return core.Post{}, ErrNoHeader
	}
	head, _, ok := strings.Cut(rest, "\n"+separator)
	if !ok {
		return core.Post{}, ErrNoHeader
	}

	var h header
	if err := yaml.Unmarshal([]byte(head), &h); err != nil {
		return core.Post{}, fmt.Errorf("decoding header: %w", err)
	}
	return core.Post{
		Title:    h.Title,
		Slug:     h.Slug,
		Date:     string(h.Date),
		Category: h.Category,
		Excerpt:  h.Excerpt,
		Image:    h.Image,
		ImageAlt: h.ImageAlt,
		Featured: h.Featured,
	}, nil
}
