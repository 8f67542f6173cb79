package main

import (
	"errors"
	"strings"
	"testing"

	"paimon/internal/services"
)

func TestShowCommandListsCharacters(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"generate"}, env.configPath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	out, _, err := runCLI(t, []string{"show"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Kamisato Ayaka", "Aether", "Lumine", "Amber", "4 characters"} {
		requireContains(t, out, want)
	}

	// Collation puts Aether ahead of Amber and both ahead of Ayaka.
	if strings.Index(out, "Aether") > strings.Index(out, "Amber") {
		t.Fatalf("expected Aether before Amber in output:\n%s", out)
	}
	if strings.Index(out, "Amber") > strings.Index(out, "Kamisato Ayaka") {
		t.Fatalf("expected Amber before Kamisato Ayaka in output:\n%s", out)
	}
}

func TestShowCommandWithoutDatabase(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"show"}, env.configPath)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
