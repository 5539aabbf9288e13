package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsArchive reports whether path is a readable ZIP archive.
func IsArchive(path string) bool {
	r, err := zip.OpenReader(path)
	if err != nil {
		return false
	}
	_ = r.Close()
	return true
}

// DefaultDest returns the default extraction destination for an archive:
// a sibling directory named after the archive's base name without extension.
func DefaultDest(archivePath string) string {
	base := filepath.Base(archivePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(archivePath), stem)
}

// Extract unpacks a single ZIP archive into dest, creating dest if absent.
// Existing files at the same paths are overwritten (last extraction wins).
func Extract(archivePath, dest string) (err error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close archive: %w", closeErr)
		}
	}()

	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("create destination %s: %w", dest, err)
	}

	for _, f := range r.File {
		if err := extractEntry(f, dest); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}

	return nil
}

// extractEntry writes one archive entry under dest, rejecting entry names
// that would escape the destination directory.
func extractEntry(f *zip.File, dest string) error {
	target := filepath.Join(dest, f.Name)

	// Guard against ../ traversal in entry names
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal entry path: %s", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// ExtractRecursive unpacks archivePath into dest, then walks the extracted
// tree and recursively unpacks any nested archives found, each into a
// sibling directory named after its base name. Every nested archive is
// deleted after extraction so re-runs find nothing left to process.
// A corrupt nested archive aborts the whole run.
func ExtractRecursive(archivePath, dest, archiveExt string) error {
	fmt.Fprintf(os.Stderr, "Extracting: %s → %s\n", archivePath, dest)

	if err := Extract(archivePath, dest); err != nil {
		return err
	}

	nested, err := findNested(dest, archiveExt)
	if err != nil {
		return fmt.Errorf("walk %s: %w", dest, err)
	}

	for _, item := range nested {
		base := filepath.Base(item)
		innerDest := filepath.Join(filepath.Dir(item), strings.TrimSuffix(base, archiveExt))
		if err := ExtractRecursive(item, innerDest, archiveExt); err != nil {
			return err
		}
		if err := os.Remove(item); err != nil {
			return fmt.Errorf("remove nested archive %s: %w", item, err)
		}
	}

	return nil
}

// findNested returns all files under root bearing the archive extension,
// in lexicographic path order so the output layout is reproducible.
func findNested(root, archiveExt string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), archiveExt) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}
