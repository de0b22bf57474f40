package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPageFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		want string
	}{
		{"en", "index.html"},
		{"fr", "index_fr.html"},
		{"he", "index_he.html"},
	}
	for _, tt := range tests {
		if got := PageFile(tt.lang); got != tt.want {
			t.Errorf("PageFile(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index_he.html"), []byte("<html></html>"), 0644); err != nil {
		t.Fatal(err)
	}

	html, err := Load(root, "he")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if html != "<html></html>" {
		t.Errorf("Load = %q", html)
	}

	// A missing page is fatal to that language's run.
	if _, err := Load(root, "fr"); err == nil {
		t.Error("missing page should be an error")
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{"index.html", "index_he.html"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got := Discover(root)
	want := []string{"en", "he"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}
