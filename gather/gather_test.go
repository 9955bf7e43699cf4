package gather

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/repodocs/repodoc/common"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.ts"))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestFileReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ts")
	writeFile(t, path, "const x = 1;")

	content, err := File(path)
	if err != nil {
		t.Fatalf("File returned error: %v", err)
	}
	if content != "const x = 1;" {
		t.Errorf("Unexpected content: %q", content)
	}
}

func TestRepositoryGathersMarkedSections(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ts"), "x")
	writeFile(t, filepath.Join(root, "b.ts"), "y")

	content, err := Repository(root, common.WithDefaultSettings().Gather)
	if err != nil {
		t.Fatalf("Repository returned error: %v", err)
	}

	idxA := strings.Index(content, "=== a.ts ===\nx")
	idxB := strings.Index(content, "=== b.ts ===\ny")
	if idxA < 0 {
		t.Error("Expected marker section for a.ts")
	}
	if idxB < 0 {
		t.Error("Expected marker section for b.ts")
	}
	if idxA >= 0 && idxB >= 0 && idxA > idxB {
		t.Error("Expected sections in filesystem walk order")
	}
}

func TestRepositorySkipsUnmatchedExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.ts"), "code")
	writeFile(t, filepath.Join(root, "binary.png"), "not code")

	content, err := Repository(root, common.WithDefaultSettings().Gather)
	if err != nil {
		t.Fatalf("Repository returned error: %v", err)
	}

	if !strings.Contains(content, "=== main.ts ===") {
		t.Error("Expected main.ts to be gathered")
	}
	if strings.Contains(content, "binary.png") {
		t.Error("Expected binary.png to be skipped")
	}
}

func TestRepositorySkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "index.ts"), "code")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "dep code")

	content, err := Repository(root, common.WithDefaultSettings().Gather)
	if err != nil {
		t.Fatalf("Repository returned error: %v", err)
	}

	if !strings.Contains(content, "=== src/index.ts ===") {
		t.Error("Expected src/index.ts to be gathered")
	}
	if strings.Contains(content, "node_modules") {
		t.Error("Expected node_modules to be excluded")
	}
}

func TestRepositoryRejectsMissingRoot(t *testing.T) {
	_, err := Repository(filepath.Join(t.TempDir(), "missing"), common.WithDefaultSettings().Gather)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func makeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip: %v", err)
	}
	defer out.Close()

	writer := zip.NewWriter(out)
	for name, content := range files {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("Failed to add zip entry: %v", err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write zip entry: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
}

func TestExtractZip(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "repo.zip")
	makeZip(t, archive, map[string]string{
		"repo/src/app.ts": "const a = 1;",
		"repo/README.md":  "# readme",
	})

	dest := filepath.Join(dir, "out")
	if err := ExtractZip(archive, dest); err != nil {
		t.Fatalf("ExtractZip returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "repo", "src", "app.ts"))
	if err != nil {
		t.Fatalf("Extracted file missing: %v", err)
	}
	if string(data) != "const a = 1;" {
		t.Errorf("Unexpected extracted content: %q", data)
	}
}

func TestExtractZipRejectsEscapingEntries(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.zip")
	makeZip(t, archive, map[string]string{
		"../escape.txt": "evil",
	})

	err := ExtractZip(archive, filepath.Join(dir, "out"))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for escaping entry, got %v", err)
	}
}

func TestZipsListsOnlyArchives(t *testing.T) {
	dir := t.TempDir()
	makeZip(t, filepath.Join(dir, "one.zip"), map[string]string{"a.txt": "a"})
	makeZip(t, filepath.Join(dir, "two.zip"), map[string]string{"b.txt": "b"})
	writeFile(t, filepath.Join(dir, "notes.md"), "not an archive")

	archives, err := Zips(dir)
	if err != nil {
		t.Fatalf("Zips returned error: %v", err)
	}
	if len(archives) != 2 {
		t.Fatalf("Expected 2 archives, got %d", len(archives))
	}
	for _, archive := range archives {
		if !strings.HasSuffix(archive, ".zip") {
			t.Errorf("Unexpected entry in archive list: %s", archive)
		}
	}
}
