package holocard

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultCreatorName is used when a card has no creator name and none can
// be pulled out of the prompt.
const DefaultCreatorName = "Event Attendee"

// maxNameLength is the character budget for a creator name before the
// ellipsis kicks in. Whitespace stranded at the cut point is dropped
// before the ellipsis, so a truncated name can keep slightly fewer than
// maxNameLength characters rather than show "NAME ...".
const maxNameLength = 25

// NameLayout is the creator name prepared for the card footer: uppercased
// and split across at most two lines.
type NameLayout struct {
	Line1       string
	Line2       string
	HasTwoLines bool
}

// LayoutName normalizes a raw creator name for drawing. Empty input falls
// back to [DefaultCreatorName]. Names longer than 25 characters are
// truncated once to 25 characters plus "...". The result is uppercased
// and split at the last whitespace boundary, so "Jane Middle Doe" becomes
// "JANE MIDDLE" over "DOE". Single-token names stay on one line.
func LayoutName(raw string) NameLayout {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = DefaultCreatorName
	}

	if runes := []rune(name); len(runes) > maxNameLength {
		name = strings.TrimRightFunc(string(runes[:maxNameLength]), unicode.IsSpace) + "..."
	}

	name = strings.ToUpper(name)

	// The boundary rune may be multi-byte (no-break space and friends
	// arrive via copy-pasted names), so step over its full width.
	cut := strings.LastIndexFunc(name, unicode.IsSpace)
	if cut <= 0 {
		return NameLayout{Line1: name}
	}
	_, width := utf8.DecodeRuneInString(name[cut:])
	if cut+width >= len(name) {
		return NameLayout{Line1: strings.TrimSpace(name)}
	}
	return NameLayout{
		Line1:       strings.TrimSpace(name[:cut]),
		Line2:       strings.TrimSpace(name[cut+width:]),
		HasTwoLines: true,
	}
}

// Prompt phrases that tend to carry the speaker's name. Matching is
// case-insensitive; the capture runs to the next clause boundary and is
// trimmed down to at most three tokens afterwards.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmy name is\s+([^,.!?;\n]+)`),
	regexp.MustCompile(`(?i)\bi am\s+([^,.!?;\n]+)`),
	regexp.MustCompile(`(?i)\bi'm\s+([^,.!?;\n]+)`),
	regexp.MustCompile(`(?i)\bcall me\s+([^,.!?;\n]+)`),
}

// Words that end a name candidate when they trail it ("my name is Ada
// Lovelace and I love robots").
var nameStopWords = map[string]bool{
	"and": true, "or": true, "but": true, "the": true, "a": true, "an": true,
	"so": true, "who": true, "with": true,
}

// NameFromPrompt scans free-form prompt text for a self-introduction
// ("my name is X", "I am X", "I'm X", "call me X") and returns the
// candidate name, or "" when nothing matches. This is a best-effort
// heuristic for cards generated without an explicit creator name; it can
// happily mis-extract ("I am hungry" yields "hungry") and its result
// must never override a name the user actually supplied.
func NameFromPrompt(prompt string) string {
	for _, re := range namePatterns {
		m := re.FindStringSubmatch(prompt)
		if m == nil {
			continue
		}
		tokens := strings.Fields(m[1])
		if len(tokens) > 3 {
			tokens = tokens[:3]
		}
		for len(tokens) > 0 && nameStopWords[strings.ToLower(tokens[len(tokens)-1])] {
			tokens = tokens[:len(tokens)-1]
		}
		if len(tokens) > 0 {
			return strings.Join(tokens, " ")
		}
	}
	return ""
}

// DisplayName resolves the name drawn on a card: the explicit creator
// name if present, then the prompt heuristic, then the default
// placeholder.
func (c CardData) DisplayName() string {
	if strings.TrimSpace(c.CreatorName) != "" {
		return c.CreatorName
	}
	if name := NameFromPrompt(c.Prompt); name != "" {
		return name
	}
	return DefaultCreatorName
}
