package roster_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/gofrs/flock"

	"paimon/internal/config"
	"paimon/internal/history"
	"paimon/internal/logging"
	"paimon/internal/roster"
	"paimon/internal/services"
	"paimon/internal/testsupport"
)

const (
	minimalAvatars = `[
  {
    "Id": 10000002,
    "UseType": "AVATAR_FORMAL",
    "NameTextMapHash": "H1",
    "DescTextMapHash": "H2",
    "QualityType": "QUALITY_ORANGE",
    "WeaponType": "WEAPON_SWORD_ONE_HAND"
  }
]`
	minimalFetters = `[
  {
    "AvatarId": 10000002,
    "AvatarVisionBeforTextMapHash": "H3",
    "AvatarVisionAfterTextMapHash": "H3"
  }
]`
	minimalManualTextMap = `[
  {
    "TextMapId": "WEAPON_SWORD_ONE_HAND",
    "TextMapContentTextMapHash": "H4"
  }
]`
	minimalTextMap = `{
  "H1": "Kamisato Ayaka",
  "H2": "A shrine maiden...",
  "H3": "Cryo",
  "H4": "Sword"
}`
)

func writeMinimalFixture(t *testing.T, cfg *config.Config) {
	t.Helper()
	testsupport.WriteTable(t, cfg.AvatarTablePath(), minimalAvatars)
	testsupport.WriteTable(t, cfg.FetterTablePath(), minimalFetters)
	testsupport.WriteTable(t, cfg.ManualTextMapPath(), minimalManualTextMap)
	testsupport.WriteTable(t, cfg.TextMapPath(), minimalTextMap)
}

func TestGenerateMinimalFixture(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeMinimalFixture(t, cfg)

	summary, err := roster.Generate(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if summary.Characters != 1 {
		t.Fatalf("expected 1 character, got %d", summary.Characters)
	}

	data, err := os.ReadFile(cfg.Paths.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want := `{
    "10000002": {
        "description": "A shrine maiden...",
        "element": "Cryo",
        "name": "Kamisato Ayaka",
        "rarity": "5",
        "weapon": "Sword"
    }
}
`
	if string(data) != want {
		t.Fatalf("output mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFixtureTables(t, cfg)

	if _, err := roster.Generate(context.Background(), cfg, logging.NewNop()); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	first, err := os.ReadFile(cfg.Paths.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if _, err := roster.Generate(context.Background(), cfg, logging.NewNop()); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	second, err := os.ReadFile(cfg.Paths.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if string(first) != string(second) {
		t.Fatal("expected byte-identical output across runs on identical input")
	}
}

func TestGenerateStandardFixture(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFixtureTables(t, cfg)

	if _, err := roster.Generate(context.Background(), cfg, logging.NewNop()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(cfg.Paths.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var output map[string]map[string]any
	if err := json.Unmarshal(data, &output); err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if len(output) != 4 {
		t.Fatalf("expected 4 characters, got %d", len(output))
	}
	if _, ok := output["11000008"]; ok {
		t.Fatal("non-playable avatar leaked into output")
	}
	if output["10000005"]["name"] != "Aether" || output["10000007"]["name"] != "Lumine" {
		t.Fatalf("unexpected traveler names: %v / %v", output["10000005"]["name"], output["10000007"]["name"])
	}
	if output["10000021"]["rarity"] != "4" {
		t.Fatalf("expected rarity 4 for Amber, got %v", output["10000021"]["rarity"])
	}
	for id, record := range output {
		switch rarity := record["rarity"]; rarity {
		case "4", "5", nil:
		default:
			t.Fatalf("character %s has rarity %v outside {4, 5, null}", id, rarity)
		}
	}
}

func TestGenerateMissingDocumentWritesNoOutput(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFixtureTables(t, cfg)
	if err := os.Remove(cfg.TextMapPath()); err != nil {
		t.Fatalf("remove text map: %v", err)
	}

	_, err := roster.Generate(context.Background(), cfg, logging.NewNop())
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
	if _, err := os.Stat(cfg.Paths.OutputPath); !os.IsNotExist(err) {
		t.Fatal("expected no output document after failed run")
	}
}

func TestGenerateRecordsRunHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFixtureTables(t, cfg)

	summary, err := roster.Generate(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].ID != summary.RunID {
		t.Fatalf("run id mismatch: %q vs %q", runs[0].ID, summary.RunID)
	}
	if runs[0].Status != history.StatusCompleted || runs[0].Characters != summary.Characters {
		t.Fatalf("unexpected run row: %#v", runs[0])
	}
}

func TestGenerateRecordsFailedRuns(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFixtureTables(t, cfg)
	if err := os.Remove(cfg.AvatarTablePath()); err != nil {
		t.Fatalf("remove avatar table: %v", err)
	}

	if _, err := roster.Generate(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatal("expected failure")
	}

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 || runs[0].Status != history.StatusFailed {
		t.Fatalf("expected one failed run, got %#v", runs)
	}
	if runs[0].ErrorMessage == "" {
		t.Fatal("expected error message on failed run")
	}
}

func TestGenerateRefusesConcurrentRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFixtureTables(t, cfg)

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil || !locked {
		t.Fatalf("prime lock: locked=%v err=%v", locked, err)
	}
	defer func() { _ = lock.Unlock() }()

	if _, err := roster.Generate(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatal("expected lock contention error")
	}
}
