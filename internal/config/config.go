package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and output location configuration.
type Paths struct {
	DataDir    string `toml:"data_dir"`
	OutputPath string `toml:"output_path"`
	LogDir     string `toml:"log_dir"`
}

// TextMap selects which localized text map the pipeline joins against.
type TextMap struct {
	Language string `toml:"language"`
}

// Refresh contains configuration for the external data pull script.
type Refresh struct {
	Script         string `toml:"script"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// History contains configuration for the run-history database.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // Default: <log_dir>/history.db
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for paimon.
//
// Configuration sections by subsystem:
//   - Paths: game data directory, output document path, log directory
//   - TextMap: localized text map language
//   - Refresh: external data pull script and timeout
//   - History: SQLite run-history store
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	TextMap TextMap `toml:"textmap"`
	Refresh Refresh `toml:"refresh"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/paimon/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("paimon.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates required directories for pipeline runs.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.LogDir, filepath.Dir(c.Paths.OutputPath)}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) != "" {
		dirs = append(dirs, filepath.Dir(c.History.Path))
	}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// AvatarTablePath returns the on-disk location of the avatar config table.
func (c *Config) AvatarTablePath() string {
	return filepath.Join(c.Paths.DataDir, "ExcelBinOutput", "AvatarExcelConfigData.json")
}

// FetterTablePath returns the on-disk location of the fetter info table.
func (c *Config) FetterTablePath() string {
	return filepath.Join(c.Paths.DataDir, "ExcelBinOutput", "FetterInfoExcelConfigData.json")
}

// ManualTextMapPath returns the on-disk location of the manual text map table.
func (c *Config) ManualTextMapPath() string {
	return filepath.Join(c.Paths.DataDir, "ExcelBinOutput", "ManualTextMapConfigData.json")
}

// TextMapPath returns the on-disk location of the localized text map for the
// configured language.
func (c *Config) TextMapPath() string {
	return filepath.Join(c.Paths.DataDir, "TextMap", "TextMap"+c.TextMap.Language+".json")
}

// HistoryPath returns the run-history database location.
func (c *Config) HistoryPath() string {
	if strings.TrimSpace(c.History.Path) != "" {
		return c.History.Path
	}
	return filepath.Join(c.Paths.LogDir, "history.db")
}

// LockPath returns the lock file guarding concurrent pipeline runs.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.LogDir, "paimon.lock")
}

// LanguageTag maps the configured text map language code to a BCP 47 tag used
// for display collation. Unknown codes collate without language rules.
func (c *Config) LanguageTag() language.Tag {
	switch c.TextMap.Language {
	case "EN":
		return language.English
	case "CHS":
		return language.SimplifiedChinese
	case "CHT":
		return language.TraditionalChinese
	case "DE":
		return language.German
	case "ES":
		return language.Spanish
	case "FR":
		return language.French
	case "ID":
		return language.Indonesian
	case "IT":
		return language.Italian
	case "JP":
		return language.Japanese
	case "KR":
		return language.Korean
	case "PT":
		return language.Portuguese
	case "RU":
		return language.Russian
	case "TH":
		return language.Thai
	case "TR":
		return language.Turkish
	case "VI":
		return language.Vietnamese
	default:
		return language.Und
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
