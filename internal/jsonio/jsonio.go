// Package jsonio reads and writes the JSON array files the tools operate on.
package jsonio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Read and parse errors. Both are fatal for a run.
var (
	ErrRead  = errors.New("failed to read file")
	ErrParse = errors.New("failed to parse JSON")
)

// ReadArray decodes the JSON array stored at path.
func ReadArray[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrParse, path, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Marshal encodes v with two-space indentation and without escaping
// HTML characters, so text such as "A & B <tag>" stays readable.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile replaces path with data. It writes to a temporary file in the
// same directory and renames it, so readers never see a partial file.
// Missing parent directories are created.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// Write marshals v and writes it to path. It returns the bytes written.
func Write(path string, v any) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	if err := WriteFile(path, data); err != nil {
		return nil, err
	}

	return data, nil
}
