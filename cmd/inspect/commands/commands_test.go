package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

// run executes the root command in a fresh working directory laid out
// with the default file names.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Chdir(t.TempDir())

	writeFile(t, "vector_store_data.json", `[{"text": "Title\nbody", "main_category": "POS", "images": ["https://kb/a.png"]}]`)
	writeFile(t, "vector_stores/a_vector_store.json", `[{"title": "A", "description": "<p>Hi <img src='https://x/a.png'></p>", "category": "POS"}]`)
	writeFile(t, "simplified_vector_store.json", `[{"title": "A", "category": "POS"}, {"title": "B", "category": "RMS"}, {"title": "C", "category": "POS"}]`)

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestStructureCommand(t *testing.T) {
	out, err := run(t, "structure", "--quiet")
	if err != nil {
		t.Fatalf("structure failed: %v", err)
	}

	if !strings.Contains(out, "Total items: 1") || !strings.Contains(out, "Items with images: 1") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCategoriesCommand(t *testing.T) {
	out, err := run(t, "categories", "--quiet")
	if err != nil {
		t.Fatalf("categories failed: %v", err)
	}

	if !strings.Contains(out, "Categories found: 2 (3 items)") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if strings.Index(out, "POS") > strings.Index(out, "RMS") {
		t.Errorf("POS (2 items) should be listed before RMS (1 item):\n%s", out)
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := run(t, "compare", "--quiet")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	for _, want := range []string{"Description contains HTML: true", "Clean text: Hi", "PROPOSED UNIFIED RECORD"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCategoriesCommand_MissingFile(t *testing.T) {
	if _, err := run(t, "categories", "--quiet", "missing.json"); err == nil {
		t.Error("expected error for missing corpus file")
	}
}
