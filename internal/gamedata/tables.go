package gamedata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"paimon/internal/config"
	"paimon/internal/document"
	"paimon/internal/logging"
)

// playableUseType marks avatar records that represent playable characters.
const playableUseType = "AVATAR_FORMAL"

// Tables holds the four raw game data tables for one pipeline run.
type Tables struct {
	Avatars       []map[string]any
	Fetters       []map[string]any
	ManualTextMap []map[string]any
	TextMap       map[string]string
}

// Load reads every table referenced by the configuration. A missing document
// aborts the load; nothing is retried.
func Load(cfg *config.Config, logger *slog.Logger) (*Tables, error) {
	logger = logging.NewComponentLogger(logger, "gamedata")

	tables := &Tables{}

	for _, load := range []struct {
		path string
		dst  *[]map[string]any
	}{
		{cfg.AvatarTablePath(), &tables.Avatars},
		{cfg.FetterTablePath(), &tables.Fetters},
		{cfg.ManualTextMapPath(), &tables.ManualTextMap},
	} {
		name := document.Stem(load.path)
		value, err := document.Read(load.path)
		if err != nil {
			logger.Error("table load failed", logging.String("table", name), logging.Error(err))
			return nil, err
		}
		records, err := recordSlice(value, name)
		if err != nil {
			return nil, err
		}
		*load.dst = records
		logger.Info("table loaded", logging.String("table", name), logging.Int("records", len(records)))
	}

	textMapPath := cfg.TextMapPath()
	value, err := document.Read(textMapPath)
	if err != nil {
		logger.Error("table load failed", logging.String("table", document.Stem(textMapPath)), logging.Error(err))
		return nil, err
	}
	textMap, err := stringMap(value, document.Stem(textMapPath))
	if err != nil {
		return nil, err
	}
	tables.TextMap = textMap
	logger.Info("table loaded", logging.String("table", document.Stem(textMapPath)), logging.Int("records", len(textMap)))

	return tables, nil
}

// IsPlayable reports whether an avatar record represents a playable character.
func IsPlayable(avatar map[string]any) bool {
	useType, ok := avatar["UseType"].(string)
	return ok && useType == playableUseType
}

// Stringify renders a raw table value in its canonical string form. IDs and
// hashes are stored as integers in some tables and strings in others; string
// form keeps mapping keys consistent and JSON-serializable.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func recordSlice(value any, name string) ([]map[string]any, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("table %s: expected a record sequence, got %T", name, value)
	}
	records := make([]map[string]any, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("table %s: record %d is %T, not an object", name, i, item)
		}
		records = append(records, record)
	}
	return records, nil
}

func stringMap(value any, name string) (map[string]string, error) {
	entries, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("table %s: expected a flat mapping, got %T", name, value)
	}
	result := make(map[string]string, len(entries))
	for hash, text := range entries {
		result[hash] = Stringify(text)
	}
	return result, nil
}
