package holocard

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLayoutNameTwoLines(t *testing.T) {
	got := LayoutName("Jane Middle Doe")
	want := NameLayout{Line1: "JANE MIDDLE", Line2: "DOE", HasTwoLines: true}
	if got != want {
		t.Errorf("LayoutName(%q) = %+v, want %+v", "Jane Middle Doe", got, want)
	}
}

func TestLayoutNameSingleToken(t *testing.T) {
	got := LayoutName("Nova")
	want := NameLayout{Line1: "NOVA"}
	if got != want {
		t.Errorf("LayoutName(%q) = %+v, want %+v", "Nova", got, want)
	}
}

func TestLayoutNameTruncation(t *testing.T) {
	name := strings.Repeat("abcdef", 6) // 36 chars
	got := LayoutName(name)
	joined := got.Line1
	if got.HasTwoLines {
		joined = got.Line1 + " " + got.Line2
	}
	want := strings.ToUpper(name[:25]) + "..."
	if joined != want {
		t.Errorf("truncated layout = %q, want %q", joined, want)
	}
}

func TestLayoutNameTruncatesExactlyOnce(t *testing.T) {
	name := "Maximilian Bartholomew Winchester III"
	got := LayoutName(name)
	total := len(got.Line1)
	if got.HasTwoLines {
		total += len(got.Line2)
	}
	// 25 kept characters + "..." minus any whitespace dropped by the
	// line split; never longer than 28.
	if total > 28 {
		t.Errorf("layout keeps %d chars, want <= 28 (%+v)", total, got)
	}
	if !strings.HasSuffix(got.Line1+got.Line2, "...") {
		t.Errorf("layout %+v missing ellipsis", got)
	}
}

func TestLayoutNameBoundary(t *testing.T) {
	// Exactly 25 characters: no truncation.
	name := strings.Repeat("x", 25)
	got := LayoutName(name)
	if got.Line1 != strings.ToUpper(name) {
		t.Errorf("25-char name altered: %+v", got)
	}
	// 26 characters: truncated.
	got = LayoutName(name + "y")
	if !strings.HasSuffix(got.Line1, "...") {
		t.Errorf("26-char name not truncated: %+v", got)
	}
}

func TestLayoutNameEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		got := LayoutName(raw)
		want := LayoutName(DefaultCreatorName)
		if got != want {
			t.Errorf("LayoutName(%q) = %+v, want placeholder layout %+v", raw, got, want)
		}
	}
}

func TestLayoutNameMultiByteWhitespace(t *testing.T) {
	// Copy-pasted names carry no-break spaces and other multi-byte
	// whitespace; the split must step over the whole rune, never leave a
	// stray byte at the head of the second line.
	cases := []struct {
		raw  string
		want NameLayout
	}{
		{"Jane Doe", NameLayout{Line1: "JANE", Line2: "DOE", HasTwoLines: true}},
		{"Jane Doe", NameLayout{Line1: "JANE", Line2: "DOE", HasTwoLines: true}},
		{"Jane　Doe", NameLayout{Line1: "JANE", Line2: "DOE", HasTwoLines: true}},
		// Trailing whitespace is trimmed on entry, then split as usual.
		{"Jane Doe ", NameLayout{Line1: "JANE", Line2: "DOE", HasTwoLines: true}},
	}
	for _, tc := range cases {
		got := LayoutName(tc.raw)
		if got != tc.want {
			t.Errorf("LayoutName(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
		if !utf8.ValidString(got.Line1) || !utf8.ValidString(got.Line2) {
			t.Errorf("LayoutName(%q) produced invalid UTF-8: %+v", tc.raw, got)
		}
	}
}

func TestLayoutNameTruncationDropsStrandedWhitespace(t *testing.T) {
	// 25th character lands on whitespace: the ellipsis follows the last
	// word, not a dangling space, tab, or no-break space.
	for _, ws := range []string{" ", "\t", " "} {
		raw := strings.Repeat("x", 24) + ws + "tail"
		got := LayoutName(raw)
		if got.HasTwoLines {
			t.Errorf("ws %q: unexpected two lines: %+v", ws, got)
			continue
		}
		want := strings.ToUpper(strings.Repeat("x", 24)) + "..."
		if got.Line1 != want {
			t.Errorf("ws %q: Line1 = %q, want %q", ws, got.Line1, want)
		}
	}
}

func TestLayoutNameSplitsAtLastSpace(t *testing.T) {
	got := LayoutName("Anna Maria van der Berg")
	want := NameLayout{Line1: "ANNA MARIA VAN DER", Line2: "BERG", HasTwoLines: true}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNameFromPrompt(t *testing.T) {
	tests := []struct {
		prompt, want string
	}{
		{"my name is Ada Lovelace and I love robots", "Ada Lovelace"},
		{"A portrait please. I am Grace", "Grace"},
		{"I'm Linus, draw me as a penguin", "Linus"},
		{"please call me Ishmael", "Ishmael"},
		{"MY NAME IS shouty mcshoutface", "shouty mcshoutface"},
		{"a dragon flying over mountains", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NameFromPrompt(tt.prompt); got != tt.want {
			t.Errorf("NameFromPrompt(%q) = %q, want %q", tt.prompt, got, tt.want)
		}
	}
}

func TestDisplayNamePrecedence(t *testing.T) {
	c := CardData{CreatorName: "Jane Doe", Prompt: "my name is Someone Else"}
	if got := c.DisplayName(); got != "Jane Doe" {
		t.Errorf("explicit name lost: %q", got)
	}

	c = CardData{Prompt: "my name is Someone Else"}
	if got := c.DisplayName(); got != "Someone Else" {
		t.Errorf("prompt name not used: %q", got)
	}

	c = CardData{}
	if got := c.DisplayName(); got != DefaultCreatorName {
		t.Errorf("placeholder not used: %q", got)
	}
}
