package digest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSum(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := Sum([]byte("abc")); got != want {
		t.Errorf("Sum = %s, want %s", got, want)
	}
}

func TestFileAndVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	sum, err := File(path)
	if err != nil {
		t.Fatalf("File returned unexpected error: %v", err)
	}

	if sum != Sum([]byte("[]")) {
		t.Errorf("File = %s, want %s", sum, Sum([]byte("[]")))
	}

	if err := Verify(path, sum); err != nil {
		t.Errorf("Verify returned unexpected error: %v", err)
	}

	if err := os.WriteFile(path, []byte("[1]"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := Verify(path, sum); !errors.Is(err, ErrHashMismatch) {
		t.Errorf("Verify error = %v, want ErrHashMismatch", err)
	}
}

func TestFile_Missing(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("File expected error for missing file")
	}
}
