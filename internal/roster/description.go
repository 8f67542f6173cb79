package roster

import (
	"context"
	"log/slog"

	"paimon/internal/gamedata"
	"paimon/internal/logging"
)

// descriptionPass resolves each character's description text.
type descriptionPass struct {
	logger *slog.Logger
}

func (*descriptionPass) Name() string { return "description" }

func (p *descriptionPass) Apply(ctx context.Context, index *gamedata.Index, characters Accumulator) error {
	logger := logging.WithContext(ctx, p.logger)

	for id, record := range characters {
		avatar, err := index.AvatarByID(id)
		if err != nil {
			return err
		}
		description, err := index.TextForHash(gamedata.Stringify(avatar["DescTextMapHash"]))
		if err != nil {
			return err
		}
		logger.Debug("description resolved", logging.String("name", record.Name))
		record.Description = description
	}

	return nil
}
