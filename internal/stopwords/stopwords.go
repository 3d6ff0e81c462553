package stopwords

import "matcompat/internal/textutil"

// defaultWords is the closed-class Spanish stopword list.
var defaultWords = []string{
	"de", "la", "las", "el", "los", "y", "o", "u", "en", "con", "por", "para",
	"a", "un", "una", "unos", "unas", "al", "del", "que", "se", "su", "sus",
	"es", "son", "como", "pero", "si", "no", "lo", "le", "este", "estos",
	"esta", "estas",
}

// Set is an immutable stopword membership set keyed by normalized token.
type Set struct {
	words map[string]struct{}
}

// Default returns the built-in Spanish stopword set.
func Default() Set {
	return newSet(defaultWords, nil)
}

// DefaultWith returns the built-in set extended with extra words. Extras are
// normalized before insertion; blank entries are ignored.
func DefaultWith(extra []string) Set {
	return newSet(defaultWords, extra)
}

func newSet(base, extra []string) Set {
	words := make(map[string]struct{}, len(base)+len(extra))
	for _, w := range base {
		words[w] = struct{}{}
	}
	for _, w := range extra {
		normalized := textutil.NormalizeToken(w)
		if normalized == "" {
			continue
		}
		words[normalized] = struct{}{}
	}
	return Set{words: words}
}

// Contains reports whether the normalized token is a stopword.
func (s Set) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s.words)
}

// Filter removes stopwords from a token stream. Order and duplicates are
// preserved; repeated significant tokens count multiple times toward density.
func (s Set) Filter(tokens []string) []string {
	significant := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if s.Contains(token) {
			continue
		}
		significant = append(significant, token)
	}
	return significant
}
