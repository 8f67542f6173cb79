package roster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"paimon/internal/config"
	"paimon/internal/document"
	"paimon/internal/gamedata"
	"paimon/internal/history"
	"paimon/internal/logging"
	"paimon/internal/services"
)

// Summary describes a completed generation run.
type Summary struct {
	RunID      string
	Characters int
	OutputPath string
	Duration   time.Duration
}

// Generate runs the full pipeline: load tables, enrich, write the output
// document. The output is written only after every pass has succeeded, so a
// failed run never leaves a partial document behind. A lock file prevents two
// runs from interleaving over the same data.
func Generate(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Summary, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "generate"))

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "generate", "prepare", "create directories", err)
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another run holds the lock at %s", cfg.LockPath())
	}
	defer func() { _ = lock.Unlock() }()

	started := time.Now()

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg)
		if err != nil {
			// History is an operational convenience; a broken store
			// must not block generation.
			logger.Warn("run history unavailable", logging.Error(err))
		} else {
			defer store.Close()
		}
	}
	record := func(status history.Status, characters int, runErr error) {
		if store == nil {
			return
		}
		run := history.Run{
			ID:         runID,
			StartedAt:  started,
			FinishedAt: time.Now(),
			Status:     status,
			Characters: characters,
			Language:   cfg.TextMap.Language,
			OutputPath: cfg.Paths.OutputPath,
		}
		if runErr != nil {
			run.ErrorMessage = runErr.Error()
		}
		if err := store.RecordRun(ctx, run); err != nil {
			logger.Warn("record run failed", logging.Error(err))
		}
	}

	tables, err := gamedata.Load(cfg, logger)
	if err != nil {
		record(history.StatusFailed, 0, err)
		return nil, err
	}

	index := gamedata.NewIndex(tables, logger)
	characters, err := NewRunner(index, logger).Run(ctx)
	if err != nil {
		record(history.StatusFailed, 0, err)
		return nil, err
	}

	if err := document.Write(cfg.Paths.OutputPath, characters); err != nil {
		logger.Error("output write failed", logging.String("path", cfg.Paths.OutputPath), logging.Error(err))
		record(history.StatusFailed, len(characters), err)
		return nil, err
	}

	summary := &Summary{
		RunID:      runID,
		Characters: len(characters),
		OutputPath: cfg.Paths.OutputPath,
		Duration:   time.Since(started),
	}
	record(history.StatusCompleted, summary.Characters, nil)

	logger.Info("character database written",
		logging.String("path", summary.OutputPath),
		logging.Int("characters", summary.Characters),
		logging.Duration("duration", summary.Duration))
	return summary, nil
}
