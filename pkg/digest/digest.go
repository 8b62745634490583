// Package digest computes content hashes for generated corpus files.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
)

// ErrHashMismatch is returned by Verify when the file content changed.
var ErrHashMismatch = errors.New("hash mismatch")

// Sum returns the hex-encoded SHA-256 of data.
func Sum(data []byte) string {
	hash := sha256.Sum256(data)

	return hex.EncodeToString(hash[:])
}

// File returns the hex-encoded SHA-256 of the file at path.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Sum(data), nil
}

// Verify checks that the file at path hashes to want.
func Verify(path, want string) error {
	got, err := File(path)
	if err != nil {
		return err
	}

	if got != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, want, got)
	}

	return nil
}
