package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"podstats/internal/config"
	"podstats/internal/logging"
	"podstats/internal/store"
	"podstats/internal/transcript"
)

// Ingester parses transcripts and persists them in a single run.
type Ingester struct {
	cfg    *config.Config
	store  *store.Store
	scorer transcript.Scorer
	logger *slog.Logger
}

// Result summarises one ingest run.
type Result struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Episodes []int         `json:"episodes" yaml:"episodes"`
	Lines    int           `json:"lines" yaml:"lines"`
	Elapsed  time.Duration `json:"elapsed" yaml:"elapsed"`
}

// New constructs an ingester with initialized dependencies.
func New(cfg *config.Config, st *store.Store, scorer transcript.Scorer, logger *slog.Logger) (*Ingester, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("ingest requires config and store")
	}
	return &Ingester{
		cfg:    cfg,
		store:  st,
		scorer: scorer,
		logger: logging.NewComponentLogger(logger, "ingest"),
	}, nil
}

// Run stores every transcript in paths under a new run. It holds the ingest
// lock for its whole duration and stops at the first transcript that fails
// to parse; episodes saved before the failure stay stored.
func (i *Ingester) Run(ctx context.Context, sourceDir string, paths []string) (*Result, error) {
	lock, err := store.AcquireIngestLock(i.cfg.LockPath())
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			i.logger.Warn("failed to release ingest lock", logging.Error(err))
		}
	}()

	started := time.Now()
	run, err := i.store.BeginRun(ctx, sourceDir)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithRunID(ctx, run.ID)
	logger := logging.WithContext(ctx, i.logger)
	logger.Info("ingest started",
		logging.String(logging.FieldSource, sourceDir),
		logging.Int("files", len(paths)),
		logging.String("lock", lock.Path()),
	)

	result := &Result{RunID: run.ID}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		conv, err := transcript.ParseFile(path, i.scorer)
		if err != nil {
			logging.WarnWithContext(logger, "transcript rejected", "parse_error", "ingest stopped",
				logging.String(logging.FieldSource, path), logging.Error(err))
			return result, err
		}
		if err := i.store.SaveConversation(ctx, run.ID, conv); err != nil {
			return result, fmt.Errorf("save %s: %w", path, err)
		}
		result.Episodes = append(result.Episodes, conv.ID)
		result.Lines += len(conv.Lines)
		logger.Debug("episode stored",
			logging.Int(logging.FieldEpisodeID, conv.ID),
			logging.String(logging.FieldSource, path),
			logging.Int("lines", len(conv.Lines)),
		)
	}
	result.Elapsed = time.Since(started)
	logger.Info("ingest finished",
		logging.Int("episodes", len(result.Episodes)),
		logging.Int("lines", result.Lines),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}
