package scanner

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"qparchive/internal/model"
)

// yearRe extracts an optional part number and a 4-digit year from a
// filename stem. The year must be followed by a non-digit or the end of
// the stem. Matches patterns like CS2024, CS1-2017, EE2-2021.
var yearRe = regexp.MustCompile(`(?:(\d+)-)?(\d{4})(?:\D|$)`)

// keyWords classify a file as an answer key; first match wins.
var keyWords = []string{"key", "answer", "solution", "ans", "soln"}

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9]+`)
	slugCollapse = regexp.MustCompile(`_+`)
)

// ParseYearPart parses (year, part) from a filename. The leftmost match
// of yearRe in the stem is used. Returns year "" when the stem contains
// no parseable year; part is nil when the filename carries no part prefix.
func ParseYearPart(filename string) (string, *int) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	m := yearRe.FindStringSubmatch(stem)
	if m == nil {
		return "", nil
	}

	var part *int
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return "", nil
		}
		part = &n
	}
	return m[2], part
}

// DetectType classifies a filename as an answer key or a question paper
// by case-insensitive keyword search.
func DetectType(filename string) model.PaperType {
	n := strings.ToLower(filename)
	for _, kw := range keyWords {
		if strings.Contains(n, kw) {
			return model.TypeKey
		}
	}
	return model.TypePaper
}

// Slugify derives a lowercase identifier from a name, safe for use as a
// filename or id. Idempotent: slugifying a slug returns it unchanged.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalid.ReplaceAllString(s, "_")
	s = slugCollapse.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
