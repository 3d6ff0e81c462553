package vocab

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrEmptyTerm indicates a record whose term normalizes to nothing.
	ErrEmptyTerm = errors.New("vocabulary term is empty")
	// ErrWeightRange indicates a weight outside [0,100].
	ErrWeightRange = errors.New("vocabulary weight out of range")
	// ErrDuplicateKey indicates two records claiming the same surface form.
	ErrDuplicateKey = errors.New("duplicate vocabulary key")
)

// Entry resolves a surface form to its canonical term and weight.
type Entry struct {
	Term   string
	Weight float64
}

// Index maps every normalized surface form to its vocabulary entry. It is
// immutable after construction and safe for concurrent lookups.
type Index struct {
	entries map[string]Entry
}

// BuildIndex compiles records into an Index. Every record registers its
// normalized canonical term plus each normalized synonym as keys to the same
// entry. Duplicate keys across records are rejected rather than resolved by
// insertion order; the error names both colliding terms.
func BuildIndex(records []Record) (*Index, error) {
	entries := make(map[string]Entry, len(records)*2)
	owner := make(map[string]int, len(records)*2)

	for i, record := range records {
		term := record.NormalizedTerm()
		if term == "" {
			return nil, fmt.Errorf("%w (raw term %q)", ErrEmptyTerm, record.Term)
		}
		if record.Weight < 0 || record.Weight > 100 {
			return nil, fmt.Errorf("%w: term %q has weight %v, want [0,100]", ErrWeightRange, record.Term, record.Weight)
		}

		entry := Entry{Term: term, Weight: record.Weight}
		keys := append([]string{term}, record.CleanSynonyms()...)
		for _, key := range keys {
			if previous, taken := owner[key]; taken {
				// A synonym repeated inside its own record is harmless.
				// Ownership is per record, not per canonical term, so a
				// second record re-declaring the same term still collides.
				if previous == i {
					continue
				}
				return nil, fmt.Errorf("%w: %q claimed by both %q and %q", ErrDuplicateKey, key, entries[key].Term, term)
			}
			owner[key] = i
			entries[key] = entry
		}
	}

	return &Index{entries: entries}, nil
}

// Lookup resolves a normalized token. Unknown tokens return ok=false; that
// is the expected common case, not an error.
func (ix *Index) Lookup(token string) (Entry, bool) {
	if ix == nil {
		return Entry{}, false
	}
	entry, ok := ix.entries[token]
	return entry, ok
}

// Len returns the number of registered surface forms.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Handle publishes the current Index to concurrent readers. Reloads build a
// fresh Index and Swap it in; scoring calls already holding a snapshot are
// unaffected. The CLI rebuilds its index on every invocation and has no use
// for one; Handle is for long-lived embedders that reload the vocabulary in
// place.
type Handle struct {
	current atomic.Pointer[Index]
}

// NewHandle creates a handle publishing the given index.
func NewHandle(ix *Index) *Handle {
	h := &Handle{}
	h.current.Store(ix)
	return h
}

// Load returns the currently published index snapshot.
func (h *Handle) Load() *Index {
	return h.current.Load()
}

// Swap atomically replaces the published index.
func (h *Handle) Swap(ix *Index) {
	h.current.Store(ix)
}
