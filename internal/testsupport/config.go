// Package testsupport provides config and fixture builders shared by tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"paimon/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.OutputPath = filepath.Join(base, "out", "characters.json")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.History.Path = filepath.Join(base, "logs", "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	return &cfg
}

// WithLanguage overrides the text map language on the test config.
func WithLanguage(code string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TextMap.Language = code
	}
}

// WithHistoryDisabled turns off run-history recording.
func WithHistoryDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = false
	}
}

// WithRefreshScript points the refresh collaborator at the given executable.
func WithRefreshScript(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Refresh.Script = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
