// Package textutil provides text normalization and tokenization helpers.
//
// The primary use cases are:
//   - Stripping diacritical marks so accented and unaccented spellings of a
//     word normalize to the same form
//   - Normalizing single surface forms for vocabulary index keys
//   - Splitting free text into lowercase alphanumeric tokens
//
// Normalization lowercases text, decomposes it to NFD, and drops combining
// marks, so "Derivación", "DERIVACION", and "derivación" all tokenize to
// "derivacion". Tokenization splits on runs of non-alphanumeric characters
// and discards the separators.
package textutil
