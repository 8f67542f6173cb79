package gamedata

import (
	"fmt"
	"log/slog"

	"paimon/internal/logging"
	"paimon/internal/services"
)

// Index answers the three join queries over the loaded tables. Each query is
// memoized per distinct input, so repeated lookups across passes cost one
// table scan at most. An Index is built once per run and is not safe for
// concurrent use; the pipeline is single-threaded.
type Index struct {
	tables *Tables
	logger *slog.Logger

	avatarCache map[string]map[string]any
	hashCache   map[string]string
	textCache   map[string]string

	// scan counters back the purity/idempotence tests
	avatarScans  int
	manualScans  int
	textMapReads int
}

// NewIndex builds a lookup index over tables.
func NewIndex(tables *Tables, logger *slog.Logger) *Index {
	return &Index{
		tables:      tables,
		logger:      logging.NewComponentLogger(logger, "lookup"),
		avatarCache: make(map[string]map[string]any),
		hashCache:   make(map[string]string),
		textCache:   make(map[string]string),
	}
}

// Avatars returns the raw avatar table backing the index.
func (x *Index) Avatars() []map[string]any {
	return x.tables.Avatars
}

// Fetters returns the raw fetter info table backing the index.
func (x *Index) Fetters() []map[string]any {
	return x.tables.Fetters
}

// AvatarByID returns the playable avatar record whose stringified Id equals id.
func (x *Index) AvatarByID(id string) (map[string]any, error) {
	if avatar, ok := x.avatarCache[id]; ok {
		return avatar, nil
	}

	x.avatarScans++
	for _, avatar := range x.tables.Avatars {
		if IsPlayable(avatar) && Stringify(avatar["Id"]) == id {
			x.logger.Debug("avatar matched", logging.String("avatar_id", id))
			x.avatarCache[id] = avatar
			return avatar, nil
		}
	}

	x.logger.Error("no playable avatar for id", logging.String("avatar_id", id))
	return nil, services.Wrap(services.ErrNotFound, "lookup", "avatar", fmt.Sprintf("no playable avatar with id %s", id), nil)
}

// HashForTextMapID resolves a symbolic text map ID (for example a weapon type
// code) to its text map hash via the manual text map table.
func (x *Index) HashForTextMapID(textMapID string) (string, error) {
	if hash, ok := x.hashCache[textMapID]; ok {
		return hash, nil
	}

	x.manualScans++
	for _, entry := range x.tables.ManualTextMap {
		if Stringify(entry["TextMapId"]) == textMapID {
			hash := Stringify(entry["TextMapContentTextMapHash"])
			x.hashCache[textMapID] = hash
			return hash, nil
		}
	}

	x.logger.Error("text map id missing from manual text map", logging.String("text_map_id", textMapID))
	return "", services.Wrap(services.ErrNotFound, "lookup", "manual text map", fmt.Sprintf("no entry for text map id %s", textMapID), nil)
}

// TextForHash resolves a text map hash to its localized string.
func (x *Index) TextForHash(hash string) (string, error) {
	if text, ok := x.textCache[hash]; ok {
		return text, nil
	}

	x.textMapReads++
	text, ok := x.tables.TextMap[hash]
	if !ok {
		x.logger.Error("invalid text map hash", logging.String("hash", hash))
		return "", services.Wrap(services.ErrNotFound, "lookup", "text map", fmt.Sprintf("invalid hash %s", hash), nil)
	}

	x.logger.Debug("hash resolved", logging.String("hash", hash), logging.String("text", text))
	x.textCache[hash] = text
	return text, nil
}
