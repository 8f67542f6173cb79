package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"paimon/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "paimon", "data")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.OutputPath != filepath.Join(tempHome, ".local", "share", "paimon", "characters.json") {
		t.Fatalf("unexpected output path: %q", cfg.Paths.OutputPath)
	}
	if cfg.TextMap.Language != "EN" {
		t.Fatalf("expected default language EN, got %q", cfg.TextMap.Language)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadParsesFileAndNormalizesLanguage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		`output_path = "` + filepath.Join(dir, "out", "characters.json") + `"`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		"[textmap]",
		`language = "jp"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.TextMap.Language != "JP" {
		t.Fatalf("expected language normalized to JP, got %q", cfg.TextMap.Language)
	}
	if cfg.LanguageTag() != language.Japanese {
		t.Fatalf("unexpected language tag: %v", cfg.LanguageTag())
	}
	want := filepath.Join(dir, "data", "TextMap", "TextMapJP.json")
	if cfg.TextMapPath() != want {
		t.Fatalf("unexpected text map path: got %q want %q", cfg.TextMapPath(), want)
	}
}

func TestLoadRejectsUnknownLanguage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[textmap]\nlanguage = \"XX\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown language")
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestTablePathsDeriveFromDataDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = "/data"
	if cfg.AvatarTablePath() != filepath.Join("/data", "ExcelBinOutput", "AvatarExcelConfigData.json") {
		t.Fatalf("unexpected avatar path: %q", cfg.AvatarTablePath())
	}
	if cfg.FetterTablePath() != filepath.Join("/data", "ExcelBinOutput", "FetterInfoExcelConfigData.json") {
		t.Fatalf("unexpected fetter path: %q", cfg.FetterTablePath())
	}
	if cfg.ManualTextMapPath() != filepath.Join("/data", "ExcelBinOutput", "ManualTextMapConfigData.json") {
		t.Fatalf("unexpected manual text map path: %q", cfg.ManualTextMapPath())
	}
}

func TestHistoryPathDefaultsToLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = "/logs"
	if cfg.HistoryPath() != filepath.Join("/logs", "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.HistoryPath())
	}
	cfg.History.Path = "/elsewhere/history.db"
	if cfg.HistoryPath() != "/elsewhere/history.db" {
		t.Fatalf("expected explicit history path to win, got %q", cfg.HistoryPath())
	}
}

func TestCreateSampleWritesParseableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("expected sample config to load, exists=%v err=%v", exists, err)
	}
}
