package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation stripped", "Tel Aviv's Market: Up 12%!", "tel-avivs-market-up-12"},
		{"whitespace collapsed", "a  \t  b\n\nc", "a-b-c"},
		{"existing hyphens collapsed", "pre--baked -- slug", "pre-baked-slug"},
		{"leading and trailing trimmed", "  --edge case--  ", "edge-case"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"hebrew stripped", "שוק תל אביב", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Make(tt.in); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Tel Aviv's Market: Up 12%!",
		"Hello   World --- again",
		strings.Repeat("very long title ", 20),
	}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestMakeLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("abcde ", 30)
	got := Make(long)
	if len(got) > 60 {
		t.Errorf("Make length = %d, want <= 60", len(got))
	}
	if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
		t.Errorf("Make(%q) has leading/trailing hyphen: %q", long, got)
	}
}
