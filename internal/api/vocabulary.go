package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"matcompat/internal/config"
	"matcompat/internal/logging"
	"matcompat/internal/vocab"
)

// ImportVocabularyRequest replaces the stored vocabulary from a file.
type ImportVocabularyRequest struct {
	Config *config.Config
	Path   string
	Logger *slog.Logger
}

// ImportSummary reports what an import replaced.
type ImportSummary struct {
	Path     string `json:"path"`
	Imported int    `json:"imported"`
	Previous int    `json:"previous"`
}

// ImportVocabulary loads records from a delimited file and atomically swaps
// them in as the full vocabulary. The new records are validated as an index
// before any write, so a bad file never clobbers the existing vocabulary. A
// file lock serializes concurrent imports against the same database.
func ImportVocabulary(ctx context.Context, req ImportVocabularyRequest) (*ImportSummary, error) {
	cfg := req.Config
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	logger := req.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With("component", "vocab", "request_id", uuid.NewString())

	records, err := vocab.LoadFile(req.Path)
	if err != nil {
		return nil, err
	}
	if _, err := vocab.BuildIndex(records); err != nil {
		return nil, fmt.Errorf("validate vocabulary file %s: %w", req.Path, err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	lock := flock.New(cfg.VocabDBPath() + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another vocabulary import is already running")
	}
	defer func() { _ = lock.Unlock() }()

	store, err := vocab.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary store: %w", err)
	}
	defer store.Close()

	previous, err := store.Count(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := store.ReplaceAll(ctx, records); err != nil {
		return nil, err
	}

	logger.Info("imported vocabulary",
		"path", req.Path,
		"imported", len(records),
		"previous", previous,
		"duration", time.Since(start),
	)
	return &ImportSummary{Path: req.Path, Imported: len(records), Previous: previous}, nil
}

// ListVocabulary returns every stored record ordered by term.
func ListVocabulary(ctx context.Context, cfg *config.Config) ([]vocab.Record, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	store, err := vocab.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary store: %w", err)
	}
	defer store.Close()

	return store.List(ctx)
}

// PutVocabularyTerm inserts or replaces a single record.
func PutVocabularyTerm(ctx context.Context, cfg *config.Config, record vocab.Record) error {
	if cfg == nil {
		return fmt.Errorf("configuration is required")
	}
	store, err := vocab.Open(cfg)
	if err != nil {
		return fmt.Errorf("open vocabulary store: %w", err)
	}
	defer store.Close()

	return store.Put(ctx, record)
}

// RemoveVocabularyTerm deletes a record, reporting whether it existed.
func RemoveVocabularyTerm(ctx context.Context, cfg *config.Config, term string) (bool, error) {
	if cfg == nil {
		return false, fmt.Errorf("configuration is required")
	}
	store, err := vocab.Open(cfg)
	if err != nil {
		return false, fmt.Errorf("open vocabulary store: %w", err)
	}
	defer store.Close()

	return store.Remove(ctx, term)
}
