package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"paimon/internal/config"
)

// Fixture table contents modelled on the real game data dump: one fully
// mapped five-star, one four-star, both traveler bodies, and one
// non-playable test avatar that must never reach the output.
const (
	fixtureAvatars = `[
  {
    "Id": 10000002,
    "UseType": "AVATAR_FORMAL",
    "BodyType": "BODY_GIRL",
    "NameTextMapHash": 1006042610,
    "DescTextMapHash": 1932122896,
    "QualityType": "QUALITY_ORANGE",
    "WeaponType": "WEAPON_SWORD_ONE_HAND"
  },
  {
    "Id": 10000005,
    "UseType": "AVATAR_FORMAL",
    "BodyType": "BODY_BOY",
    "NameTextMapHash": 2993038467,
    "DescTextMapHash": 1222008013,
    "QualityType": "QUALITY_ORANGE_SP",
    "WeaponType": "WEAPON_SWORD_ONE_HAND"
  },
  {
    "Id": 10000007,
    "UseType": "AVATAR_FORMAL",
    "BodyType": "BODY_GIRL",
    "NameTextMapHash": 2993038467,
    "DescTextMapHash": 1222008013,
    "QualityType": "QUALITY_ORANGE_SP",
    "WeaponType": "WEAPON_SWORD_ONE_HAND"
  },
  {
    "Id": 10000021,
    "UseType": "AVATAR_FORMAL",
    "BodyType": "BODY_GIRL",
    "NameTextMapHash": 1966438658,
    "DescTextMapHash": 1165269053,
    "QualityType": "QUALITY_PURPLE",
    "WeaponType": "WEAPON_BOW"
  },
  {
    "Id": 11000008,
    "UseType": "AVATAR_TEST",
    "NameTextMapHash": 3817130101
  }
]`

	fixtureFetters = `[
  {
    "AvatarId": 10000002,
    "AvatarVisionBeforTextMapHash": 4734642207,
    "AvatarVisionAfterTextMapHash": 4734642207
  },
  {
    "AvatarId": 10000005,
    "AvatarVisionBeforTextMapHash": 3314031887,
    "AvatarVisionAfterTextMapHash": 3314031887
  },
  {
    "AvatarId": 10000007,
    "AvatarVisionBeforTextMapHash": 3314031887,
    "AvatarVisionAfterTextMapHash": 3314031887
  },
  {
    "AvatarId": 10000021,
    "AvatarVisionBeforTextMapHash": 1071767234,
    "AvatarVisionAfterTextMapHash": 1071767234
  }
]`

	fixtureManualTextMap = `[
  {
    "TextMapId": "WEAPON_SWORD_ONE_HAND",
    "TextMapContentTextMapHash": 4046452053
  },
  {
    "TextMapId": "WEAPON_BOW",
    "TextMapContentTextMapHash": 2279290661
  }
]`

	fixtureTextMap = `{
  "1006042610": "Kamisato Ayaka",
  "2993038467": "Traveler",
  "1966438658": "Amber",
  "1932122896": "Daughter of the Kamisato Clan.",
  "1222008013": "A traveler from another world.",
  "1165269053": "Outrider of the Knights of Favonius.",
  "4734642207": "Cryo",
  "3314031887": "Anemo",
  "1071767234": "Pyro",
  "4046452053": "Sword",
  "2279290661": "Bow"
}`
)

// WriteFixtureTables writes the standard four fixture tables into the data
// directory of cfg, using its configured text map language.
func WriteFixtureTables(t testing.TB, cfg *config.Config) {
	t.Helper()

	WriteTable(t, cfg.AvatarTablePath(), fixtureAvatars)
	WriteTable(t, cfg.FetterTablePath(), fixtureFetters)
	WriteTable(t, cfg.ManualTextMapPath(), fixtureManualTextMap)
	WriteTable(t, cfg.TextMapPath(), fixtureTextMap)
}

// WriteTable writes raw JSON content at path, creating parent directories.
func WriteTable(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteScript writes an executable shell script and returns its path.
func WriteScript(t testing.TB, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script %s: %v", path, err)
	}
	return path
}
