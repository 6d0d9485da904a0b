// Package normalize provides text normalization shared by the matching and
// ATS scoring subsystems: canonical lowercase text with domain abbreviations
// expanded, plus the word-level tokenization both subsystems match against.
package normalize

import (
	"regexp"
	"strings"
)

// punctuationReplacements maps non-ASCII punctuation variants to canonical
// ASCII equivalents. Applied before the printable-range filter so curly
// quotes and dashes survive as their plain forms instead of being dropped.
var punctuationReplacements = map[string]string{
	"‘": "'",   // left single quote
	"’": "'",   // right single quote
	"“": `"`,   // left double quote
	"”": `"`,   // right double quote
	"–": "-",   // en dash
	"—": "-",   // em dash
	"•": " ",   // bullet
	"·": " ",   // middle dot
	"▪": " ",   // black small square bullet
	"…": "...", // ellipsis
	" ": " ",   // non-breaking space
}

// abbreviation expands a standalone domain abbreviation to its full form.
// Word-boundary anchored so "os" never matches inside "cost". Expansions are
// chosen so no replacement reintroduces a standalone abbreviation, keeping
// the normalizer idempotent.
type abbreviation struct {
	pattern     *regexp.Regexp
	replacement string
}

var abbreviations = []abbreviation{
	{regexp.MustCompile(`\bos\b`), "operating system"},
	{regexp.MustCompile(`\bad\b`), "active directory"},
	{regexp.MustCompile(`\bvpn\b`), "virtual private network"},
	{regexp.MustCompile(`\bpc\b`), "computer"},
	{regexp.MustCompile(`\bit\b`), "information technology"},
	{regexp.MustCompile(`\brdp\b`), "remote desktop protocol"},
	{regexp.MustCompile(`\bsla\b`), "service level agreement"},
	{regexp.MustCompile(`\bmfa\b`), "multi-factor authentication"},
	{regexp.MustCompile(`\bsso\b`), "single sign-on"},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Text normalizes raw text for matching: lowercase, canonical ASCII
// punctuation, printable characters only, single-spaced, with domain
// abbreviations expanded at word boundaries. Pure and idempotent:
// Text(Text(s)) == Text(s).
func Text(raw string) string {
	s := strings.ToLower(raw)

	for variant, ascii := range punctuationReplacements {
		s = strings.ReplaceAll(s, variant, ascii)
	}

	// Drop anything left outside the ASCII printable range. Newlines and
	// tabs become spaces so the whitespace collapse below sees them.
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(' ')
		case r >= 32 && r < 127:
			b.WriteRune(r)
		}
	}
	s = b.String()

	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))

	for _, abbr := range abbreviations {
		s = abbr.pattern.ReplaceAllString(s, abbr.replacement)
	}

	return s
}
