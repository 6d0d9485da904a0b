package normalize

import "strings"

// isTokenRune reports whether r belongs inside a token. Hyphens, dots, '#'
// and '+' are word characters so "c#", "c++", "node.js" and
// "active-directory" survive as single tokens.
func isTokenRune(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= '0' && r <= '9' ||
		r >= 'A' && r <= 'Z' ||
		r == '-' || r == '.' || r == '#' || r == '+'
}

// Tokens splits normalized text into lowercase word tokens, trimming
// punctuation that only appears at token edges (a sentence-final dot is not
// part of the word, the dot in "node.js" is).
func Tokens(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.Trim(word.String(), "-.")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if isTokenRune(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// WordSet returns the set of word tokens in text, for whole-word containment
// checks.
func WordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokens(text) {
		set[tok] = true
	}
	return set
}

// ContainsAllWords reports whether every word of phrase appears as a whole
// word in the given word set. An empty phrase never matches.
func ContainsAllWords(words map[string]bool, phrase string) bool {
	parts := Tokens(phrase)
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if !words[p] {
			return false
		}
	}
	return true
}
