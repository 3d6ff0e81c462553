package api_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"matcompat/internal/api"
	"matcompat/internal/testsupport"
	"matcompat/internal/vocab"
)

func writeVocabFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestImportVocabulary(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedVocabulary(t, store, testsupport.MathVocabulary())
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	path := writeVocabFile(t, "vocab.tsv", "limite\t92\tlimites\nvector\t87\t\n")
	summary, err := api.ImportVocabulary(context.Background(), api.ImportVocabularyRequest{
		Config: cfg,
		Path:   path,
	})
	if err != nil {
		t.Fatalf("ImportVocabulary: %v", err)
	}
	if summary.Imported != 2 {
		t.Errorf("Imported = %d, want 2", summary.Imported)
	}
	if summary.Previous != len(testsupport.MathVocabulary()) {
		t.Errorf("Previous = %d, want %d", summary.Previous, len(testsupport.MathVocabulary()))
	}

	records, err := api.ListVocabulary(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ListVocabulary: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Term != "limite" {
		t.Errorf("records[0].Term = %q, want limite", records[0].Term)
	}
}

func TestImportVocabularyRejectsDuplicateKeys(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedVocabulary(t, store, testsupport.MathVocabulary())
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// "derivar" collides across two entries.
	path := writeVocabFile(t, "vocab.tsv", "derivada\t95\tderivar\nderivar\t80\t\n")
	_, err := api.ImportVocabulary(context.Background(), api.ImportVocabularyRequest{
		Config: cfg,
		Path:   path,
	})
	if !errors.Is(err, vocab.ErrDuplicateKey) {
		t.Fatalf("error = %v, want ErrDuplicateKey", err)
	}

	// The rejected import must not touch the stored vocabulary.
	records, err := api.ListVocabulary(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ListVocabulary: %v", err)
	}
	if len(records) != len(testsupport.MathVocabulary()) {
		t.Errorf("len(records) = %d, want %d", len(records), len(testsupport.MathVocabulary()))
	}
}

func TestImportVocabularyRejectsRedeclaredTerm(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	// Same canonical term twice; the second row must not win for any form.
	path := writeVocabFile(t, "vocab.tsv", "derivada\t95\t\nDerivada\t40\tderivar\n")
	_, err := api.ImportVocabulary(context.Background(), api.ImportVocabularyRequest{
		Config: cfg,
		Path:   path,
	})
	if !errors.Is(err, vocab.ErrDuplicateKey) {
		t.Fatalf("error = %v, want ErrDuplicateKey", err)
	}
}

func TestImportVocabularyMissingFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_, err := api.ImportVocabulary(context.Background(), api.ImportVocabularyRequest{
		Config: cfg,
		Path:   filepath.Join(t.TempDir(), "missing.tsv"),
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPutAndRemoveVocabularyTerm(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	err := api.PutVocabularyTerm(ctx, cfg, vocab.Record{Term: "Límite", Weight: 92, Synonyms: []string{"límites"}})
	if err != nil {
		t.Fatalf("PutVocabularyTerm: %v", err)
	}

	records, err := api.ListVocabulary(ctx, cfg)
	if err != nil {
		t.Fatalf("ListVocabulary: %v", err)
	}
	if len(records) != 1 || records[0].Term != "limite" {
		t.Fatalf("records = %+v, want one normalized limite", records)
	}

	removed, err := api.RemoveVocabularyTerm(ctx, cfg, "LIMITE")
	if err != nil {
		t.Fatalf("RemoveVocabularyTerm: %v", err)
	}
	if !removed {
		t.Error("RemoveVocabularyTerm = false, want true")
	}

	removed, err = api.RemoveVocabularyTerm(ctx, cfg, "limite")
	if err != nil {
		t.Fatalf("RemoveVocabularyTerm: %v", err)
	}
	if removed {
		t.Error("RemoveVocabularyTerm on absent term = true, want false")
	}
}

func TestPutVocabularyTermValidation(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	err := api.PutVocabularyTerm(context.Background(), cfg, vocab.Record{Term: "derivada", Weight: 150})
	if !errors.Is(err, vocab.ErrWeightRange) {
		t.Fatalf("error = %v, want ErrWeightRange", err)
	}
}
