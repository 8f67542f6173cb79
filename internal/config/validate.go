package config

import (
	"errors"
	"fmt"
)

var supportedLanguages = map[string]struct{}{
	"EN": {}, "CHS": {}, "CHT": {}, "DE": {}, "ES": {}, "FR": {}, "ID": {},
	"IT": {}, "JP": {}, "KR": {}, "PT": {}, "RU": {}, "TH": {}, "TR": {}, "VI": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTextMap(); err != nil {
		return err
	}
	if err := c.validateRefresh(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.OutputPath == "" {
		return errors.New("paths.output_path must be set")
	}
	return nil
}

func (c *Config) validateTextMap() error {
	if _, ok := supportedLanguages[c.TextMap.Language]; !ok {
		return fmt.Errorf("textmap.language %q is not a known text map language", c.TextMap.Language)
	}
	return nil
}

func (c *Config) validateRefresh() error {
	if c.Refresh.TimeoutSeconds < 0 {
		return errors.New("refresh.timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
