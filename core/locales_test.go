package core

import "testing"

func TestForLanguage(t *testing.T) {
	t.Parallel()

	for _, lang := range Languages {
		loc, err := ForLanguage(lang)
		if err != nil {
			t.Fatalf("ForLanguage(%q): %v", lang, err)
		}
		if loc.Code != lang {
			t.Errorf("descriptor code = %q, want %q", loc.Code, lang)
		}
		for i, m := range loc.Months {
			if m == "" {
				t.Errorf("%s: month %d is empty", lang, i+1)
			}
		}
	}

	if _, err := ForLanguage("de"); err == nil {
		t.Error("unsupported language should be an error")
	}
}

func TestCategoryLabel(t *testing.T) {
	t.Parallel()

	loc, _ := ForLanguage("fr")
	if got := loc.CategoryLabel("economy"); got != "Économie" {
		t.Errorf("known key = %q", got)
	}
	if got := loc.CategoryLabel("opinion"); got != "opinion" {
		t.Errorf("unknown key should pass through verbatim, got %q", got)
	}
}

func TestLinkLabel(t *testing.T) {
	t.Parallel()

	loc, _ := ForLanguage("en")
	tests := []struct {
		category string
		featured bool
		want     string
	}{
		{"news", false, "Read more"},
		{"news", true, "Read the full story"},
		{PodcastCategory, false, "Listen now"},
		{PodcastCategory, true, "Listen now"},
	}
	for _, tt := range tests {
		if got := loc.LinkLabel(tt.category, tt.featured); got != tt.want {
			t.Errorf("LinkLabel(%q, %t) = %q, want %q", tt.category, tt.featured, got, tt.want)
		}
	}
}
