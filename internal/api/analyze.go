package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"matcompat/internal/config"
	"matcompat/internal/logging"
	"matcompat/internal/scoring"
	"matcompat/internal/vocab"
)

// defaultBatchConcurrency bounds concurrent file reads during batch scoring.
const defaultBatchConcurrency = 4

// AnalyzeTextRequest scores a single text against the stored vocabulary.
type AnalyzeTextRequest struct {
	Config *config.Config
	Text   string
	Logger *slog.Logger
}

// AnalyzeText runs the full scoring pipeline for one text.
func AnalyzeText(ctx context.Context, req AnalyzeTextRequest) (*scoring.Result, error) {
	cfg := req.Config
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	logger := req.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With("component", "analyze", "request_id", uuid.NewString())

	analyzer, ix, err := loadAnalyzer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := analyzer.Score(req.Text, ix)
	logger.Info("scored text",
		"score", result.Score,
		"matched_tokens", result.MatchedTokens,
		"significant_tokens", result.SignificantTokens,
		"duration", time.Since(start),
	)
	return &result, nil
}

// FileScore pairs a scored file with its result.
type FileScore struct {
	Path   string         `json:"path"`
	Result scoring.Result `json:"result"`
}

// AnalyzeFilesRequest scores several files against one index snapshot.
type AnalyzeFilesRequest struct {
	Config      *config.Config
	Paths       []string
	Concurrency int
	Logger      *slog.Logger
}

// AnalyzeFiles reads and scores each file concurrently. The index is built
// once and shared read-only across goroutines; results come back sorted by
// score descending, then path.
func AnalyzeFiles(ctx context.Context, req AnalyzeFilesRequest) ([]FileScore, error) {
	cfg := req.Config
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if len(req.Paths) == 0 {
		return nil, fmt.Errorf("at least one file is required")
	}
	logger := req.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With("component", "analyze", "request_id", uuid.NewString())

	analyzer, ix, err := loadAnalyzer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	concurrency := req.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	start := time.Now()
	scores := make([]FileScore, len(req.Paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, path := range req.Paths {
		i, path := i, path
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			scores[i] = FileScore{Path: path, Result: analyzer.Score(string(data), ix)}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Result.Score != scores[j].Result.Score {
			return scores[i].Result.Score > scores[j].Result.Score
		}
		return scores[i].Path < scores[j].Path
	})

	logger.Info("scored files", "files", len(scores), "duration", time.Since(start))
	return scores, nil
}

// loadAnalyzer opens the store, builds the index snapshot, and constructs the
// analyzer with the configured extra stopwords.
func loadAnalyzer(ctx context.Context, cfg *config.Config) (*scoring.Analyzer, *vocab.Index, error) {
	store, err := vocab.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open vocabulary store: %w", err)
	}
	defer store.Close()

	records, err := store.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	ix, err := vocab.BuildIndex(records)
	if err != nil {
		return nil, nil, fmt.Errorf("build vocabulary index: %w", err)
	}

	analyzer := scoring.NewAnalyzer(scoring.WithExtraStopwords(cfg.Analysis.ExtraStopwords))
	return analyzer, ix, nil
}
