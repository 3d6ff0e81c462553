package testsupport

import (
	"context"
	"testing"

	"matcompat/internal/config"
	"matcompat/internal/vocab"
)

// MustOpenStore opens a vocab.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *vocab.Store {
	t.Helper()

	store, err := vocab.Open(cfg)
	if err != nil {
		t.Fatalf("vocab.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedVocabulary inserts records into the store, failing the test on error.
func SeedVocabulary(t testing.TB, store *vocab.Store, records []vocab.Record) {
	t.Helper()

	for _, record := range records {
		if err := store.Put(context.Background(), record); err != nil {
			t.Fatalf("store.Put(%q): %v", record.Term, err)
		}
	}
}

// MathVocabulary returns a small realistic vocabulary for scoring tests.
func MathVocabulary() []vocab.Record {
	return []vocab.Record{
		{Term: "derivada", Weight: 95, Synonyms: []string{"derivadas", "derivar"}},
		{Term: "integral", Weight: 95, Synonyms: []string{"integrales"}},
		{Term: "matriz", Weight: 90, Synonyms: []string{"matrices"}},
		{Term: "ecuacion", Weight: 85, Synonyms: []string{"ecuaciones"}},
		{Term: "teorema", Weight: 88, Synonyms: []string{"teoremas"}},
		{Term: "calculo", Weight: 80},
	}
}
