package scoring

import (
	"sort"

	"matcompat/internal/stopwords"
	"matcompat/internal/textutil"
	"matcompat/internal/vocab"
)

// Formula coefficients. Weight alone overstates ambiguous-but-present terms;
// density alone overstates short mathematical snippets inside long unrelated
// text. The 55/45 blend damps both failure modes.
const (
	avgWeightShare = 0.55
	densityShare   = 0.45
)

// TermMatch summarizes every occurrence of one canonical term in the text.
// Contribution is count times normalized weight, the sort key for display.
type TermMatch struct {
	Term         string  `json:"term"`
	Weight       float64 `json:"weight"`
	Count        int     `json:"count"`
	Contribution float64 `json:"contribution"`
}

// Result carries the score plus the diagnostics needed to render it without
// recomputation.
type Result struct {
	Score             float64     `json:"score"`
	AvgWeight         float64     `json:"avg_weight"`
	MathDensity       float64     `json:"math_density"`
	TotalTokens       int         `json:"total_tokens"`
	SignificantTokens int         `json:"significant_tokens"`
	MatchedTokens     int         `json:"matched_tokens"`
	DistinctTerms     int         `json:"distinct_terms"`
	Matches           []TermMatch `json:"matches,omitempty"`
}

// Analyzer scores text against a vocabulary index. The zero-value-equivalent
// constructed by NewAnalyzer uses the built-in stopword set; options extend
// it. An Analyzer is immutable and safe for concurrent use.
type Analyzer struct {
	stops stopwords.Set
}

// Option customizes analyzer construction.
type Option func(*analyzerConfig)

type analyzerConfig struct {
	extraStopwords []string
}

// WithExtraStopwords extends the built-in stopword set with additional words.
func WithExtraStopwords(words []string) Option {
	return func(cfg *analyzerConfig) {
		cfg.extraStopwords = append(cfg.extraStopwords, words...)
	}
}

// NewAnalyzer constructs an analyzer with the built-in Spanish stopword set.
func NewAnalyzer(opts ...Option) *Analyzer {
	var cfg analyzerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.extraStopwords) == 0 {
		return &Analyzer{stops: stopwords.Default()}
	}
	return &Analyzer{stops: stopwords.DefaultWith(cfg.extraStopwords)}
}

// Score runs the full pipeline over text against the given index snapshot.
func (a *Analyzer) Score(text string, ix *vocab.Index) Result {
	tokens := textutil.Tokenize(text)
	significant := a.stops.Filter(tokens)

	result := Result{
		TotalTokens:       len(tokens),
		SignificantTokens: len(significant),
	}

	var weightSum float64
	perTerm := make(map[string]*TermMatch)
	for _, token := range significant {
		entry, ok := ix.Lookup(token)
		if !ok {
			continue
		}
		result.MatchedTokens++
		weightSum += entry.Weight / 100
		match := perTerm[entry.Term]
		if match == nil {
			match = &TermMatch{Term: entry.Term, Weight: entry.Weight}
			perTerm[entry.Term] = match
		}
		match.Count++
	}

	result.DistinctTerms = len(perTerm)
	if result.MatchedTokens > 0 {
		result.AvgWeight = weightSum / float64(result.MatchedTokens)
	}
	if result.SignificantTokens > 0 {
		result.MathDensity = float64(result.MatchedTokens) / float64(result.SignificantTokens)
	}
	result.Score = 100 * (avgWeightShare*result.AvgWeight + densityShare*result.MathDensity)

	if len(perTerm) > 0 {
		matches := make([]TermMatch, 0, len(perTerm))
		for _, match := range perTerm {
			match.Contribution = float64(match.Count) * match.Weight / 100
			matches = append(matches, *match)
		}
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Contribution != matches[j].Contribution {
				return matches[i].Contribution > matches[j].Contribution
			}
			return matches[i].Term < matches[j].Term
		})
		result.Matches = matches
	}

	return result
}

// Score runs the pipeline with the default analyzer.
func Score(text string, ix *vocab.Index) Result {
	return NewAnalyzer().Score(text, ix)
}
