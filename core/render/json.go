package render

import (
	"encoding/json"
	"fmt"

	"github.com/danielengelsman/Isratest/core"
)

// languageDigest is the JSON document for one language partition.
type languageDigest struct {
	Language  string      `json:"language"`
	Direction string      `json:"direction"`
	Posts     []core.Post `json:"posts"`
}

// JSONDigest dumps a language's posts as structured JSON.
type JSONDigest struct{}

// NewJSONDigest creates a JSONDigest.
func NewJSONDigest() *JSONDigest {
	return &JSONDigest{}
}

// Render marshals the posts with language metadata.
func (d *JSONDigest) Render(loc *core.Locale, posts []core.Post) ([]byte, error) {
	direction := "ltr"
	if loc.RTL {
		direction = "rtl"
	}
	doc := languageDigest{
		Language:  loc.Code,
		Direction: direction,
		Posts:     posts,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling digest: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (d *JSONDigest) Extension() string {
	return ".json"
}
