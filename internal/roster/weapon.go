package roster

import (
	"context"
	"log/slog"

	"paimon/internal/gamedata"
	"paimon/internal/logging"
)

// weaponPass resolves each character's weapon type code through the manual
// text map into localized display text.
type weaponPass struct {
	logger *slog.Logger
}

func (*weaponPass) Name() string { return "weapon" }

func (p *weaponPass) Apply(ctx context.Context, index *gamedata.Index, characters Accumulator) error {
	logger := logging.WithContext(ctx, p.logger)

	for id, record := range characters {
		avatar, err := index.AvatarByID(id)
		if err != nil {
			return err
		}
		hash, err := index.HashForTextMapID(gamedata.Stringify(avatar["WeaponType"]))
		if err != nil {
			return err
		}
		weapon, err := index.TextForHash(hash)
		if err != nil {
			return err
		}
		logger.Debug("weapon resolved", logging.String("name", record.Name), logging.String("weapon", weapon))
		record.Weapon = weapon
	}

	return nil
}
