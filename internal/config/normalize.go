package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTextMap()
	if err := c.normalizeRefresh(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputPath) == "" {
		c.Paths.OutputPath = defaultOutputPath
	}
	if c.Paths.OutputPath, err = expandPath(c.Paths.OutputPath); err != nil {
		return fmt.Errorf("paths.output_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTextMap() {
	lang := strings.ToUpper(strings.TrimSpace(c.TextMap.Language))
	if lang == "" {
		if value, ok := os.LookupEnv("PAIMON_LANGUAGE"); ok {
			lang = strings.ToUpper(strings.TrimSpace(value))
		}
	}
	if lang == "" {
		lang = defaultTextMapLanguage
	}
	c.TextMap.Language = lang
}

func (c *Config) normalizeRefresh() error {
	c.Refresh.Script = strings.TrimSpace(c.Refresh.Script)
	if c.Refresh.Script == "" {
		c.Refresh.Script = defaultRefreshScript
	}
	// Relative script paths stay relative so the script resolves against the
	// working directory the user launched from.
	if strings.HasPrefix(c.Refresh.Script, "~") {
		expanded, err := expandPath(c.Refresh.Script)
		if err != nil {
			return fmt.Errorf("refresh.script: %w", err)
		}
		c.Refresh.Script = expanded
	}
	if c.Refresh.TimeoutSeconds == 0 {
		c.Refresh.TimeoutSeconds = defaultRefreshTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		return nil
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
