package scanner

import (
	"fmt"
	"os"
	"path/filepath"
)

// subjectSource pairs a subject's raw name with the directory that
// actually holds its files.
type subjectSource struct {
	Name      string
	Container string
}

// FileContainer resolves the directory to treat as a subject's file
// container. The on-disk convention doubles the subject name
// (e.g. CS/CS/CS2024.pdf); if the inner same-named directory exists it is
// the container, otherwise the subject directory itself is (fallback for
// flatter layouts). The inner name must match exactly.
func FileContainer(subjectDir string) string {
	inner := filepath.Join(subjectDir, filepath.Base(subjectDir))
	if info, err := os.Stat(inner); err == nil && info.IsDir() {
		return inner
	}
	return subjectDir
}

// fileDirs walks the two-level convention <root>/<group>/<subject> and
// returns one subjectSource per subject directory, in sorted group then
// subject order.
func fileDirs(root string) ([]subjectSource, error) {
	groups, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root %s: %w", root, err)
	}

	var sources []subjectSource
	for _, group := range groups {
		if !group.IsDir() {
			continue
		}
		groupPath := filepath.Join(root, group.Name())
		subjects, err := os.ReadDir(groupPath)
		if err != nil {
			return nil, fmt.Errorf("read group %s: %w", groupPath, err)
		}
		for _, subject := range subjects {
			if !subject.IsDir() {
				continue
			}
			sources = append(sources, subjectSource{
				Name:      subject.Name(),
				Container: FileContainer(filepath.Join(groupPath, subject.Name())),
			})
		}
	}
	return sources, nil
}
