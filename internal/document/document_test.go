package document_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paimon/internal/document"
	"paimon/internal/services"
)

func TestReadPreservesIntegerIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.json")
	if err := os.WriteFile(path, []byte(`[{"Id": 10000002}]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	value, err := document.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	records, ok := value.([]any)
	if !ok || len(records) != 1 {
		t.Fatalf("unexpected value shape: %#v", value)
	}
	record := records[0].(map[string]any)
	num, ok := record["Id"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", record["Id"])
	}
	if num.String() != "10000002" {
		t.Fatalf("expected exact id string, got %q", num.String())
	}
}

func TestReadMissingDocument(t *testing.T) {
	_, err := document.Read(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
}

func TestWriteSortsKeysAndIndents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	value := map[string]any{"b": "2", "a": "1"}

	if err := document.Write(path, value); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(data)
	if strings.Index(text, `"a"`) > strings.Index(text, `"b"`) {
		t.Fatalf("expected sorted keys, got:\n%s", text)
	}
	if !strings.Contains(text, "\n    \"a\": \"1\"") {
		t.Fatalf("expected four-space indentation, got:\n%s", text)
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	value := map[string]any{"z": "1", "m": "2", "a": "3"}

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	if err := document.Write(first, value); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := document.Write(second, value); err != nil {
		t.Fatalf("Write: %v", err)
	}
	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if string(a) != string(b) {
		t.Fatal("expected byte-identical output for identical values")
	}
}

func TestWriteUnserializableValue(t *testing.T) {
	err := document.Write(filepath.Join(t.TempDir(), "out.json"), map[string]any{"fn": func() {}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrNotSerializable) {
		t.Fatalf("expected not-serializable marker, got %v", err)
	}
}

func TestWriteMissingParent(t *testing.T) {
	err := document.Write(filepath.Join(t.TempDir(), "missing", "out.json"), map[string]any{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"download/ExcelBinOutput/AvatarExcelConfigData.json": "AvatarExcelConfigData",
		"TextMapEN.json": "TextMapEN",
		"plain":          "plain",
	}
	for path, want := range cases {
		if got := document.Stem(path); got != want {
			t.Fatalf("Stem(%q) = %q, want %q", path, got, want)
		}
	}
}
