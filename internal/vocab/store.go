package vocab

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"matcompat/internal/config"
)

// Store manages vocabulary persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the vocabulary database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.VocabDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// List returns every vocabulary record ordered by term.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT term, weight, synonyms FROM vocabulary ORDER BY term`)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			term     string
			weight   float64
			synonyms string
		)
		if err := rows.Scan(&term, &weight, &synonyms); err != nil {
			return nil, fmt.Errorf("scan vocabulary row: %w", err)
		}
		records = append(records, Record{
			Term:     term,
			Weight:   weight,
			Synonyms: splitSynonyms(synonyms),
		})
	}
	return records, rows.Err()
}

// Get fetches a single record by term. Returns nil when the term is absent.
func (s *Store) Get(ctx context.Context, term string) (*Record, error) {
	normalized := Record{Term: term}.NormalizedTerm()
	row := s.db.QueryRowContext(ctx, `SELECT term, weight, synonyms FROM vocabulary WHERE term = ?`, normalized)

	var (
		stored   string
		weight   float64
		synonyms string
	)
	err := row.Scan(&stored, &weight, &synonyms)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vocabulary term: %w", err)
	}
	return &Record{Term: stored, Weight: weight, Synonyms: splitSynonyms(synonyms)}, nil
}

// Put inserts or replaces one record. The term and synonyms are normalized
// before storage so the database only ever holds lookup-ready forms.
func (s *Store) Put(ctx context.Context, record Record) error {
	normalized, err := normalizeRecord(record)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO vocabulary (term, weight, synonyms, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(term) DO UPDATE SET
             weight = excluded.weight,
             synonyms = excluded.synonyms,
             updated_at = excluded.updated_at`,
		normalized.Term,
		normalized.Weight,
		joinSynonyms(normalized.Synonyms),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("put vocabulary term: %w", err)
	}
	return nil
}

// Remove deletes a record by term. Reports whether a row was removed.
func (s *Store) Remove(ctx context.Context, term string) (bool, error) {
	normalized := Record{Term: term}.NormalizedTerm()
	res, err := s.db.ExecContext(ctx, `DELETE FROM vocabulary WHERE term = ?`, normalized)
	if err != nil {
		return false, fmt.Errorf("remove vocabulary term: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM vocabulary`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count vocabulary: %w", err)
	}
	return count, nil
}

// ReplaceAll swaps the entire vocabulary in one transaction. Either every
// record lands or none do; a failed import leaves the previous vocabulary
// intact.
func (s *Store) ReplaceAll(ctx context.Context, records []Record) error {
	normalized := make([]Record, 0, len(records))
	for _, record := range records {
		rec, err := normalizeRecord(record)
		if err != nil {
			return err
		}
		normalized = append(normalized, rec)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vocabulary`); err != nil {
		return fmt.Errorf("clear vocabulary: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, record := range normalized {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO vocabulary (term, weight, synonyms, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			record.Term,
			record.Weight,
			joinSynonyms(record.Synonyms),
			now,
			now,
		); err != nil {
			return fmt.Errorf("insert vocabulary term %q: %w", record.Term, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func normalizeRecord(record Record) (Record, error) {
	term := record.NormalizedTerm()
	if term == "" {
		return Record{}, fmt.Errorf("%w (raw term %q)", ErrEmptyTerm, record.Term)
	}
	if record.Weight < 0 || record.Weight > 100 {
		return Record{}, fmt.Errorf("%w: term %q has weight %v, want [0,100]", ErrWeightRange, record.Term, record.Weight)
	}
	return Record{Term: term, Weight: record.Weight, Synonyms: record.CleanSynonyms()}, nil
}
