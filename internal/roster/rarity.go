package roster

import (
	"context"
	"log/slog"

	"paimon/internal/gamedata"
	"paimon/internal/logging"
)

// rarityByQuality maps avatar quality tiers to star counts. The mapping is
// intentionally partial: an unlisted tier yields a null rarity, not an error.
var rarityByQuality = map[string]string{
	"QUALITY_PURPLE":    "4",
	"QUALITY_ORANGE":    "5",
	"QUALITY_ORANGE_SP": "5",
}

// rarityPass maps each character's quality tier to its star rarity.
type rarityPass struct {
	logger *slog.Logger
}

func (*rarityPass) Name() string { return "rarity" }

func (p *rarityPass) Apply(ctx context.Context, index *gamedata.Index, characters Accumulator) error {
	logger := logging.WithContext(ctx, p.logger)

	for id, record := range characters {
		avatar, err := index.AvatarByID(id)
		if err != nil {
			return err
		}
		quality := gamedata.Stringify(avatar["QualityType"])
		if rarity, ok := rarityByQuality[quality]; ok {
			record.Rarity = &rarity
			logger.Debug("rarity resolved", logging.String("name", record.Name), logging.String("rarity", rarity))
		} else {
			record.Rarity = nil
			logger.Debug("quality tier unmapped", logging.String("name", record.Name), logging.String("quality", quality))
		}
	}

	return nil
}
