// Package document reads and writes JSON documents as generic value trees.
//
// Numbers decode as json.Number so integer identifiers survive exact
// stringification, and writes emit indented, key-sorted JSON so output
// documents are byte-stable across runs.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"paimon/internal/services"
)

// Read parses the JSON document at path into a generic value tree.
func Read(path string) (any, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "document", "read", fmt.Sprintf("document %s does not exist", path), err)
		}
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return value, nil
}

// Write serializes value as indented, key-sorted JSON to path, creating or
// overwriting the file.
func Write(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		var unsupportedType *json.UnsupportedTypeError
		var unsupportedValue *json.UnsupportedValueError
		if errors.As(err, &unsupportedType) || errors.As(err, &unsupportedValue) {
			return services.Wrap(services.ErrNotSerializable, "document", "write", fmt.Sprintf("value for %s has no JSON representation", path), err)
		}
		return fmt.Errorf("serialize document %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrNotFound, "document", "write", fmt.Sprintf("parent of %s does not exist", path), err)
		}
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
