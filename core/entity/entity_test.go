package entity

import "testing"

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no references", "plain text", "plain text"},
		{"named dash", "markets &mdash; weekly", "markets — weekly"},
		{"non-breaking space", "January&nbsp;23, 2025", "January 23, 2025"},
		{"accented latin", "march&eacute; &agrave; Tel Aviv", "marché à Tel Aviv"},
		{"arrow", "next &rarr;", "next →"},
		{"numeric decimal", "caf&#233;", "café"},
		{"numeric hebrew", "&#1513;&#1500;&#1493;&#1501;", "שלום"},
		{"ampersand", "fish &amp; chips", "fish & chips"},
		{"quote pair", "&ldquo;quoted&rdquo;", "“quoted”"},
		{"out of range numeric kept", "&#99999999;", "&#99999999;"},
		{"unknown named kept", "&bogus;", "&bogus;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Decode(tt.in); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"markets &mdash; weekly",
		"caf&#233; &amp; bar",
		"plain text with no references",
	}
	for _, in := range inputs {
		once := Decode(in)
		if twice := Decode(once); twice != once {
			t.Errorf("Decode not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestEscapeMinimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hazardous set", `a < b & c > "d"`, "a &lt; b &amp; c &gt; &quot;d&quot;"},
		{"extended chars pass through", "café — שלום", "café — שלום"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EscapeMinimal(tt.in); got != tt.want {
				t.Errorf("EscapeMinimal(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
