package vocab

import (
	"strings"

	"matcompat/internal/textutil"
)

// Record is one authored vocabulary entry: a canonical term, its weight in
// [0,100], and alternate surface forms that resolve to the same term.
type Record struct {
	Term     string   `json:"term"`
	Weight   float64  `json:"weight"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// NormalizedTerm returns the record's canonical lookup key.
func (r Record) NormalizedTerm() string {
	return textutil.NormalizeToken(r.Term)
}

// CleanSynonyms returns the record's synonyms normalized, with blanks removed.
func (r Record) CleanSynonyms() []string {
	cleaned := make([]string, 0, len(r.Synonyms))
	for _, syn := range r.Synonyms {
		normalized := textutil.NormalizeToken(syn)
		if normalized == "" {
			continue
		}
		cleaned = append(cleaned, normalized)
	}
	return cleaned
}

// joinSynonyms serializes synonyms in the stored comma-separated format.
func joinSynonyms(synonyms []string) string {
	return strings.Join(synonyms, ",")
}

// splitSynonyms parses the stored comma-separated synonym format.
func splitSynonyms(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	synonyms := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		synonyms = append(synonyms, trimmed)
	}
	return synonyms
}
