package core

import "fmt"

// Locale is the typed descriptor governing one language's parsing and
// rendering: month-name grammar, category vocabulary, link labels,
// directionality.
type Locale struct {
	Code string
	RTL  bool

	// DayFirst selects the date grammar token order: false means
	// "Month Day, Year" (English), true means "Day Month Year".
	DayFirst bool
	Months   [12]string

	// Categories maps category keys to localized labels.
	// Unknown keys render verbatim.
	Categories map[string]string

	// Link label variants. Listen replaces the other two when the
	// post's category is "podcasts".
	ReadMore string
	ReadFull string
	Listen   string

	// Arrow is the directional glyph appended to link labels.
	Arrow string
}

// PodcastCategory is the category key that selects the listen link variant.
const PodcastCategory = "podcasts"

// CategoryLabel returns the localized label for a category key,
// or the key itself when the vocabulary has no entry.
func (l *Locale) CategoryLabel(key string) string {
	if label, ok := l.Categories[key]; ok {
		return label
	}
	return key
}

// LinkLabel returns the link text for a post of the given category:
// the listen variant for podcasts, otherwise the featured or card variant.
func (l *Locale) LinkLabel(category string, featured bool) string {
	if category == PodcastCategory {
		return l.Listen
	}
	if featured {
		return l.ReadFull
	}
	return l.ReadMore
}

var locales = map[string]*Locale{
	"en": {
		Code:     "en",
		DayFirst: false,
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Categories: map[string]string{
			"news":     "News",
			"economy":  "Economy",
			"tech":     "Technology",
			"culture":  "Culture",
			"travel":   "Travel",
			"podcasts": "Podcasts",
		},
		ReadMore: "Read more",
		ReadFull: "Read the full story",
		Listen:   "Listen now",
		Arrow:    "→",
	},
	"fr": {
		Code:     "fr",
		DayFirst: true,
		Months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		Categories: map[string]string{
			"news":     "Actualités",
			"economy":  "Économie",
			"tech":     "Technologie",
			"culture":  "Culture",
			"travel":   "Voyage",
			"podcasts": "Podcasts",
		},
		ReadMore: "Lire la suite",
		ReadFull: "Lire l'article complet",
		Listen:   "Écouter",
		Arrow:    "→",
	},
	"he": {
		Code:     "he",
		RTL:      true,
		DayFirst: true,
		Months: [12]string{
			"ינואר", "פברואר", "מרץ", "אפריל", "מאי", "יוני",
			"יולי", "אוגוסט", "ספטמבר", "אוקטובר", "נובמבר", "דצמבר",
		},
		Categories: map[string]string{
			"news":     "חדשות",
			"economy":  "כלכלה",
			"tech":     "טכנולוגיה",
			"culture":  "תרבות",
			"travel":   "טיולים",
			"podcasts": "פודקאסטים",
		},
		ReadMore: "קראו עוד",
		ReadFull: "לכתבה המלאה",
		Listen:   "האזינו",
		Arrow:    "←",
	},
}

// ForLanguage returns the built-in locale descriptor for a language code.
func ForLanguage(code string) (*Locale, error) {
	loc, ok := locales[code]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", code)
	}
	return loc, nil
}
