package roster

import (
	"context"
	"log/slog"

	"paimon/internal/gamedata"
	"paimon/internal/logging"
	"paimon/internal/services"
)

// Pass is one enrichment step. Given the lookup index and the shared
// accumulator, it adds a single field group to the records in place.
type Pass interface {
	Name() string
	Apply(ctx context.Context, index *gamedata.Index, characters Accumulator) error
}

// Runner executes the enrichment passes in their fixed order.
type Runner struct {
	index  *gamedata.Index
	logger *slog.Logger
	passes []Pass
}

// NewRunner builds a runner with the standard pass sequence.
func NewRunner(index *gamedata.Index, logger *slog.Logger) *Runner {
	base := logging.NewComponentLogger(logger, "roster")
	return &Runner{
		index:  index,
		logger: base,
		passes: []Pass{
			&populatePass{logger: base},
			&descriptionPass{logger: base},
			&rarityPass{logger: base},
			&elementPass{logger: base},
			&weaponPass{logger: base},
		},
	}
}

// Run executes every pass against a fresh accumulator. The first error aborts
// the run; no partial result is returned.
func (r *Runner) Run(ctx context.Context) (Accumulator, error) {
	characters := make(Accumulator)

	for _, pass := range r.passes {
		passCtx := services.WithPass(ctx, pass.Name())
		logger := logging.WithContext(passCtx, r.logger)

		logger.Debug("pass started", logging.Int("characters", len(characters)))
		if err := pass.Apply(passCtx, r.index, characters); err != nil {
			logger.Error("pass failed", logging.Error(err))
			return nil, err
		}
		logger.Info("pass finished", logging.Int("characters", len(characters)))
	}

	return characters, nil
}
