package cleaner

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reEdgeQuotes = regexp.MustCompile(`^["'‘’“”]+|["'‘’“”]+$`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reItemScrub  = regexp.MustCompile(`[^A-Za-z0-9(),/\- ]+`)
	reSpecScrub  = regexp.MustCompile(`[^A-Za-z0-9(),/\-%.– ]+`)
	reAlpha      = regexp.MustCompile(`[A-Za-z]`)
)

// Normalize repairs the systematic OCR damage every field shares: surrounding
// quote characters (straight and curly), non-canonical unicode forms and runs
// of whitespace. It never fails; empty input yields an empty string.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = reEdgeQuotes.ReplaceAllString(text, "")
	text = norm.NFKD.String(text)
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// scrubItem keeps letters, digits, parentheses, comma, slash, hyphen and
// space; anything else is OCR noise.
func scrubItem(text string) string {
	scrubbed := reItemScrub.ReplaceAllString(text, "")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(scrubbed, " "))
}

// scrubSpec additionally permits %, . and the en-dash that canonical
// specification ranges use, so re-cleaning a cleaned table is a no-op.
func scrubSpec(text string) string {
	scrubbed := reSpecScrub.ReplaceAllString(text, "")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(scrubbed, " "))
}

// alphaCount counts ASCII letters; specifications with fewer than three are
// unrecoverable noise.
func alphaCount(text string) int {
	return len(reAlpha.FindAllString(text, -1))
}
