package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"paimon/internal/gamedata"
	"paimon/internal/logging"
	"paimon/internal/services"
)

// populatePass inserts one accumulator entry per playable avatar and resolves
// its display name. It is the only pass that inserts new IDs.
type populatePass struct {
	logger *slog.Logger
}

func (*populatePass) Name() string { return "populate" }

func (p *populatePass) Apply(ctx context.Context, index *gamedata.Index, characters Accumulator) error {
	logger := logging.WithContext(ctx, p.logger)

	for _, avatar := range index.Avatars() {
		if !gamedata.IsPlayable(avatar) {
			continue
		}

		id := gamedata.Stringify(avatar["Id"])
		name, err := index.TextForHash(gamedata.Stringify(avatar["NameTextMapHash"]))
		if err != nil {
			return err
		}

		// The traveler entry carries the generic "Traveler" name; the
		// body type distinguishes the two playable variants.
		if strings.EqualFold(name, "traveler") {
			switch bodyType := gamedata.Stringify(avatar["BodyType"]); bodyType {
			case "BODY_BOY":
				name = "Aether"
			case "BODY_GIRL":
				name = "Lumine"
			default:
				logger.Error("unknown traveler body type",
					logging.String("avatar_id", id),
					logging.String("body_type", bodyType))
				return services.Wrap(services.ErrUnhandledCase, p.Name(), "traveler",
					fmt.Sprintf("avatar %s has body type %q", id, bodyType), nil)
			}
		}

		logger.Debug("character discovered", logging.String("avatar_id", id), logging.String("name", name))
		characters[id] = &Record{Name: name}
	}

	return nil
}
