// Package vocab manages the weighted vocabulary that drives scoring.
//
// A Record is the authored form of an entry: a canonical term, a weight in
// [0,100] expressing how strongly the term signals mathematical content, and
// optional synonyms. BuildIndex compiles records into an immutable Index
// mapping every normalized surface form (canonical term and each synonym) to
// the same (canonical term, weight) entry. Lookup is a plain hash-map probe,
// O(1) on average, and absence is not an error.
//
// Index construction fails fast on configuration errors: empty terms, weights
// outside [0,100], and key collisions across records are all rejected, so a
// partially built index never reaches scoring code. Reloads construct a fresh
// Index and publish it through a Handle; in-flight scoring calls keep the
// snapshot they started with.
//
// The Store persists records in SQLite. Schema changes bump the version in
// schema.go; users re-import their vocabulary to adopt the new schema.
package vocab
