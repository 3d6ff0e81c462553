// Package scoring computes how mathematical a piece of text is.
//
// The pipeline is a single pass with no state between calls: tokenize and
// normalize the text, drop stopwords, look each significant token up in the
// vocabulary index, then blend the average matched weight with the match
// density through a fixed 55/45 linear formula into a [0,100] score.
//
// Matches are counted per token occurrence, not per distinct term: a text
// that repeats "derivada" five times contributes five matches to both the
// matched count and the weight average. Density therefore measures how
// saturated the text is with mathematical vocabulary, not how broad its
// vocabulary is. Matching only ever inspects significant tokens, so the
// matched count can never exceed the significant count and density stays
// within [0,1] by construction.
//
// Degenerate input is never an error: empty text, or text made entirely of
// stopwords, scores zero. Unknown tokens are silent non-matches. Scoring the
// same (text, index) pair twice yields bit-identical results.
package scoring
