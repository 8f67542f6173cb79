package roster

import (
	"context"
	"fmt"
	"log/slog"

	"paimon/internal/gamedata"
	"paimon/internal/logging"
	"paimon/internal/services"
)

// elementPass reads each character's vision from the fetter table. This is
// the one pass driven by the fetter table rather than the accumulator.
type elementPass struct {
	logger *slog.Logger
}

func (*elementPass) Name() string { return "element" }

func (p *elementPass) Apply(ctx context.Context, index *gamedata.Index, characters Accumulator) error {
	logger := logging.WithContext(ctx, p.logger)

	for _, fetter := range index.Fetters() {
		id := gamedata.Stringify(fetter["AvatarId"])
		record, ok := characters[id]
		if !ok {
			logger.Error("fetter references unknown character", logging.String("avatar_id", id))
			return services.Wrap(services.ErrNotFound, p.Name(), "fetter",
				fmt.Sprintf("fetter record references avatar %s, which the populate pass never inserted", id), nil)
		}

		visionBefore, err := index.TextForHash(gamedata.Stringify(fetter["AvatarVisionBeforTextMapHash"]))
		if err != nil {
			return err
		}
		// The "after" vision is resolved and discarded; for archons both
		// hashes carry the same value.
		visionAfter, err := index.TextForHash(gamedata.Stringify(fetter["AvatarVisionAfterTextMapHash"]))
		if err != nil {
			return err
		}

		logger.Debug("element resolved",
			logging.String("name", record.Name),
			logging.String("vision_before", visionBefore),
			logging.String("vision_after", visionAfter))

		record.Element = visionBefore
	}

	return nil
}
