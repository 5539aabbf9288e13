package scanner

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"qparchive/internal/model"
)

// octetStream is the fallback MIME type for unknown extensions
const octetStream = "application/octet-stream"

// paperExts are the only extensions considered during a scan
var paperExts = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Scanner walks a question-paper tree and emits JSON metadata for the
// static frontend: one document per subject plus a top-level index.
type Scanner struct {
	Root     string // Tree to scan
	OutDir   string // Where index.json and subject_<id>.json land
	SiteRoot string // rel_paths in output are relative to this
	Verbose  bool
}

// New creates a scanner for root using the scan settings from cfg.
func New(root string, cfg *model.Config) *Scanner {
	return &Scanner{
		Root:     root,
		OutDir:   cfg.Scan.OutDir,
		SiteRoot: cfg.Scan.SiteRoot,
		Verbose:  cfg.Output.Verbose,
	}
}

// Result summarizes a completed scan
type Result struct {
	Subjects int
	Papers   int
	OutDir   string
}

// Run scans the tree and writes all metadata documents. Files whose names
// carry no parseable year are warned about and skipped; everything else
// is fatal.
func (s *Scanner) Run() (*Result, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	out, err := filepath.Abs(s.OutDir)
	if err != nil {
		return nil, fmt.Errorf("resolve out dir: %w", err)
	}
	siteRoot, err := filepath.Abs(s.SiteRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve site root: %w", err)
	}

	if err := os.MkdirAll(out, 0755); err != nil {
		return nil, fmt.Errorf("create out dir %s: %w", out, err)
	}

	sources, err := fileDirs(root)
	if err != nil {
		return nil, err
	}

	subjects := make(map[string]*model.Subject)
	for _, src := range sources {
		if err := s.scanContainer(src, siteRoot, subjects); err != nil {
			return nil, err
		}
	}

	for _, subject := range subjects {
		sortSubject(subject)
	}

	return s.write(out, subjects)
}

// scanContainer collects paper entries from one subject's file container
// into the shared subject map. Subjects spanning multiple group
// directories accumulate into a single entry.
func (s *Scanner) scanContainer(src subjectSource, siteRoot string, subjects map[string]*model.Subject) error {
	id := Slugify(src.Name)
	subject, ok := subjects[id]
	if !ok {
		subject = &model.Subject{
			ID:     id,
			Name:   src.Name,
			Years:  []string{},
			Papers: []*model.Paper{},
		}
		subjects[id] = subject
	}

	if s.Verbose {
		fmt.Fprintf(os.Stderr, "Scanning %s (%s)\n", src.Name, src.Container)
	}

	entries, err := os.ReadDir(src.Container)
	if err != nil {
		return fmt.Errorf("read container %s: %w", src.Container, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(src.Container, name)

		if !paperExts[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		year, part := ParseYearPart(name)
		if year == "" {
			fmt.Fprintf(os.Stderr, "  [warn] cannot parse year from: %s — skipping\n", name)
			continue
		}

		if !contains(subject.Years, year) {
			subject.Years = append(subject.Years, year)
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		relPath, err := makeRel(siteRoot, path)
		if err != nil {
			return err
		}

		paper := &model.Paper{
			Year:    year,
			Type:    DetectType(name),
			RelPath: relPath,
			Size:    info.Size(),
			Mime:    guessMime(name),
			Part:    part,
		}

		if thumb := findThumb(path, src.Container); thumb != "" {
			thumbRel, err := makeRel(siteRoot, thumb)
			if err != nil {
				return err
			}
			paper.ThumbRelPath = thumbRel
		}

		subject.Papers = append(subject.Papers, paper)
	}

	return nil
}

// findThumb locates a thumbnail for path: same stem with .png or .jpg
// beside the file, then thumbs/<stem>.png inside the container. Returns
// "" when no candidate exists.
func findThumb(path, container string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	withoutExt := strings.TrimSuffix(path, filepath.Ext(path))

	candidates := []string{
		withoutExt + ".png",
		withoutExt + ".jpg",
		filepath.Join(container, "thumbs", stem+".png"),
	}
	for _, cand := range candidates {
		if cand == path {
			continue
		}
		if _, err := os.Stat(cand); err == nil {
			return cand
		}
	}
	return ""
}

// guessMime maps a filename to a MIME type by extension
func guessMime(name string) string {
	if m := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); m != "" {
		return m
	}
	return octetStream
}

// makeRel returns path relative to base with forward slashes, for use as
// a URL path regardless of the host separator.
func makeRel(base, path string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", fmt.Errorf("relativize %s against %s: %w", path, base, err)
	}
	return filepath.ToSlash(rel), nil
}

// sortSubject fixes the ordering invariants: years descending, papers by
// year descending then part ascending with an absent part sorting lowest.
func sortSubject(subject *model.Subject) {
	sort.Sort(sort.Reverse(sort.StringSlice(subject.Years)))

	sort.SliceStable(subject.Papers, func(i, j int) bool {
		a, b := subject.Papers[i], subject.Papers[j]
		if a.Year != b.Year {
			ya, _ := strconv.Atoi(a.Year)
			yb, _ := strconv.Atoi(b.Year)
			return ya > yb
		}
		return a.PartOrZero() < b.PartOrZero()
	})
}

// write emits one JSON document per subject plus the index, in sorted
// subject-id order so output is reproducible.
func (s *Scanner) write(out string, subjects map[string]*model.Subject) (*Result, error) {
	ids := make([]string, 0, len(subjects))
	for id := range subjects {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	index := model.Index{Subjects: []model.IndexEntry{}}
	totalPapers := 0

	for _, id := range ids {
		subject := subjects[id]
		fname := "subject_" + id + ".json"

		if err := writeJSON(filepath.Join(out, fname), subject); err != nil {
			return nil, err
		}

		index.Subjects = append(index.Subjects, model.IndexEntry{
			ID:         id,
			Name:       subject.Name,
			FullName:   model.FullName(subject.Name),
			Years:      subject.Years,
			PaperCount: len(subject.Papers),
			Meta:       fname,
		})
		totalPapers += len(subject.Papers)

		if s.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s (%d papers)\n", fname, len(subject.Papers))
		}
	}

	if err := writeJSON(filepath.Join(out, "index.json"), index); err != nil {
		return nil, err
	}

	return &Result{Subjects: len(ids), Papers: totalPapers, OutDir: out}, nil
}

// writeJSON marshals v with two-space indentation and writes it to path
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
