package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tokenSplitPattern matches non-alphanumeric character sequences for tokenization.
var tokenSplitPattern = regexp.MustCompile(`[^a-z0-9]+`)

// accentStripper decomposes text to NFD, removes combining marks, and recomposes.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes diacritical marks from text. "derivación" becomes
// "derivacion". Note that under NFD the tilde of "ñ" is a combining mark,
// so "ñ" maps to "n".
func StripAccents(text string) string {
	stripped, _, err := transform.String(accentStripper, text)
	if err != nil {
		return text
	}
	return stripped
}

// NormalizeToken converts a single surface form to its canonical lookup key:
// trimmed, lowercased, accents stripped.
func NormalizeToken(token string) string {
	return StripAccents(strings.ToLower(strings.TrimSpace(token)))
}

// Tokenize splits text into lowercase accent-stripped tokens. Runs of
// alphanumeric characters become tokens; punctuation and whitespace are
// discarded. Empty input yields an empty slice.
func Tokenize(text string) []string {
	lowered := StripAccents(strings.ToLower(text))
	raw := tokenSplitPattern.Split(lowered, -1)
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
