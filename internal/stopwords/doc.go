// Package stopwords filters closed-class Spanish words out of token streams.
//
// The built-in set covers articles, prepositions, conjunctions, pronouns,
// and common auxiliary forms. Filtering preserves token order and repeated
// tokens: density scoring counts every remaining occurrence, so the filter
// must not deduplicate.
//
// The default set is fixed; callers may extend it with additional normalized
// words but never shrink it.
package stopwords
