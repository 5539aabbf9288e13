package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// buildZip assembles a ZIP in memory from name → content pairs
func buildZip(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func writeZip(t *testing.T, path string, files map[string][]byte) {
	t.Helper()
	if err := os.WriteFile(path, buildZip(t, files), 0644); err != nil {
		t.Fatalf("write zip %s: %v", path, err)
	}
}

func TestIsArchive(t *testing.T) {
	tmp := t.TempDir()

	zipPath := filepath.Join(tmp, "good.zip")
	writeZip(t, zipPath, map[string][]byte{"a.txt": []byte("a")})
	if !IsArchive(zipPath) {
		t.Errorf("Expected %s to be a valid archive", zipPath)
	}

	textPath := filepath.Join(tmp, "bad.zip")
	if err := os.WriteFile(textPath, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if IsArchive(textPath) {
		t.Error("Expected plain text file to be rejected")
	}

	if IsArchive(filepath.Join(tmp, "missing.zip")) {
		t.Error("Expected missing file to be rejected")
	}
}

func TestDefaultDest(t *testing.T) {
	got := DefaultDest(filepath.Join("a", "b", "papers.zip"))
	want := filepath.Join("a", "b", "papers")
	if got != want {
		t.Errorf("DefaultDest = %q, want %q", got, want)
	}
}

func TestExtract_Flat(t *testing.T) {
	tmp := t.TempDir()
	zipPath := filepath.Join(tmp, "papers.zip")
	writeZip(t, zipPath, map[string][]byte{
		"CS/CS2024.pdf":    []byte("paper"),
		"CS/sub/notes.txt": []byte("notes"),
		"EE/EE2-2021.pdf":  []byte("paper2"),
	})

	dest := filepath.Join(tmp, "out")
	if err := Extract(zipPath, dest); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	checks := []struct{ path, want string }{
		{"CS/CS2024.pdf", "paper"},
		{"CS/sub/notes.txt", "notes"},
		{"EE/EE2-2021.pdf", "paper2"},
	}
	for _, c := range checks {
		data, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(c.path)))
		if err != nil {
			t.Fatalf("read %s: %v", c.path, err)
		}
		if string(data) != c.want {
			t.Errorf("Content of %s = %q, want %q", c.path, data, c.want)
		}
	}
}

func TestExtract_OverwritesExisting(t *testing.T) {
	tmp := t.TempDir()
	zipPath := filepath.Join(tmp, "papers.zip")
	writeZip(t, zipPath, map[string][]byte{"a.txt": []byte("new")})

	dest := filepath.Join(tmp, "out")
	if err := os.MkdirAll(dest, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dest, "a.txt"), []byte("old"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := Extract(zipPath, dest); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dest, "a.txt"))
	if string(data) != "new" {
		t.Errorf("Expected last extraction to win, got %q", data)
	}
}

func TestExtract_RejectsTraversal(t *testing.T) {
	tmp := t.TempDir()
	zipPath := filepath.Join(tmp, "evil.zip")
	writeZip(t, zipPath, map[string][]byte{"../evil.txt": []byte("x")})

	dest := filepath.Join(tmp, "out")
	if err := Extract(zipPath, dest); err == nil {
		t.Fatal("Expected traversal entry to be rejected")
	}
	if _, err := os.Stat(filepath.Join(tmp, "evil.txt")); err == nil {
		t.Error("Traversal entry escaped the destination")
	}
}

func TestExtract_InvalidArchive(t *testing.T) {
	tmp := t.TempDir()
	textPath := filepath.Join(tmp, "bad.zip")
	if err := os.WriteFile(textPath, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := Extract(textPath, filepath.Join(tmp, "out")); err == nil {
		t.Fatal("Expected error for invalid archive")
	}
}

func TestExtractRecursive_NestedZips(t *testing.T) {
	tmp := t.TempDir()

	inner := buildZip(t, map[string][]byte{
		"EE/EE2021.pdf": []byte("inner paper"),
	})
	deep := buildZip(t, map[string][]byte{
		"deepfile.txt": []byte("deep"),
	})
	innerWithDeep := buildZip(t, map[string][]byte{
		"deep.zip": deep,
	})

	zipPath := filepath.Join(tmp, "papers.zip")
	writeZip(t, zipPath, map[string][]byte{
		"CS/CS2024.pdf":    []byte("top paper"),
		"nested/ee.zip":    inner,
		"nested/double.zip": innerWithDeep,
	})

	dest := filepath.Join(tmp, "papers")
	if err := ExtractRecursive(zipPath, dest, ".zip"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Nested archives extract into sibling dirs named after them,
	// recursively
	checks := []struct{ path, want string }{
		{"CS/CS2024.pdf", "top paper"},
		{"nested/ee/EE/EE2021.pdf", "inner paper"},
		{"nested/double/deep/deepfile.txt", "deep"},
	}
	for _, c := range checks {
		data, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(c.path)))
		if err != nil {
			t.Fatalf("read %s: %v", c.path, err)
		}
		if string(data) != c.want {
			t.Errorf("Content of %s = %q, want %q", c.path, data, c.want)
		}
	}

	// No nested archive file survives the run
	leftover, err := findNested(dest, ".zip")
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(leftover) != 0 {
		t.Errorf("Expected no leftover archives, found %v", leftover)
	}
}

func TestExtractRecursive_RerunIsIdentical(t *testing.T) {
	tmp := t.TempDir()

	inner := buildZip(t, map[string][]byte{"b.txt": []byte("b")})
	zipPath := filepath.Join(tmp, "papers.zip")
	writeZip(t, zipPath, map[string][]byte{
		"a.txt":     []byte("a"),
		"inner.zip": inner,
	})

	dest := filepath.Join(tmp, "papers")
	if err := ExtractRecursive(zipPath, dest, ".zip"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := ExtractRecursive(zipPath, dest, ".zip"); err != nil {
		t.Fatalf("second run: %v", err)
	}

	checks := []struct{ path, want string }{
		{"a.txt", "a"},
		{"inner/b.txt", "b"},
	}
	for _, c := range checks {
		data, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(c.path)))
		if err != nil {
			t.Fatalf("read %s: %v", c.path, err)
		}
		if string(data) != c.want {
			t.Errorf("Content of %s = %q, want %q", c.path, data, c.want)
		}
	}

	leftover, err := findNested(dest, ".zip")
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(leftover) != 0 {
		t.Errorf("Expected no leftover archives after re-run, found %v", leftover)
	}
}

func TestExtractRecursive_CorruptNestedAborts(t *testing.T) {
	tmp := t.TempDir()

	zipPath := filepath.Join(tmp, "papers.zip")
	writeZip(t, zipPath, map[string][]byte{
		"a.txt":      []byte("a"),
		"broken.zip": []byte("this is not a zip"),
	})

	dest := filepath.Join(tmp, "papers")
	if err := ExtractRecursive(zipPath, dest, ".zip"); err == nil {
		t.Fatal("Expected corrupt nested archive to abort the run")
	}
}
