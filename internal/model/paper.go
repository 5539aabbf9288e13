package model

// PaperType classifies a scanned file
type PaperType string

const (
	TypePaper PaperType = "paper" // Question paper
	TypeKey   PaperType = "key"   // Answer key / solutions
)

// Paper represents one scanned file's metadata record
type Paper struct {
	Year         string    `json:"year"`                     // 4-digit year parsed from the filename
	Type         PaperType `json:"type"`                     // "paper" or "key"
	RelPath      string    `json:"rel_path"`                 // Path relative to the site root, forward slashes
	Size         int64     `json:"size"`                     // File size in bytes
	Mime         string    `json:"mime"`                     // MIME type guessed from the extension
	Part         *int      `json:"part,omitempty"`           // Part number (e.g. CS1-2017 → 1); nil when absent
	ThumbRelPath string    `json:"thumb_rel_path,omitempty"` // Optional thumbnail, relative to the site root
}

// PartOrZero returns the part number, treating an absent part as 0.
// Used for ordering: papers without a part sort before part 1, 2, ...
func (p *Paper) PartOrZero() int {
	if p.Part == nil {
		return 0
	}
	return *p.Part
}

// Subject groups all papers of one exam code (e.g. CS, EE, XH-C1)
type Subject struct {
	ID     string   `json:"id"`     // Slug derived from the directory name
	Name   string   `json:"name"`   // Raw directory name
	Years  []string `json:"years"`  // Distinct years, sorted descending
	Papers []*Paper `json:"papers"` // Sorted by year desc, then part asc
}

// IndexEntry summarizes one subject in the top-level index
type IndexEntry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	FullName   string   `json:"fullName"` // From the full-name table, falling back to Name
	Years      []string `json:"years"`
	PaperCount int      `json:"paperCount"`
	Meta       string   `json:"meta"` // Filename of the subject's detail document
}

// Index is the top-level metadata document listing every subject
type Index struct {
	Subjects []IndexEntry `json:"subjects"`
}
