package model

// fullNames maps GATE subject codes to human-readable discipline names.
// Consulted only when building the index; unknown codes fall back to the
// raw directory name.
var fullNames = map[string]string{
	"AE":    "Aerospace Engineering",
	"AG":    "Agricultural Engineering",
	"AR":    "Architecture and Planning",
	"BM":    "Biomedical Engineering",
	"BT":    "Biotechnology",
	"CE":    "Civil Engineering",
	"CH":    "Chemical Engineering",
	"CS":    "Computer Science and Information Technology",
	"CY":    "Chemistry",
	"DA":    "Data Science and Artificial Intelligence",
	"EC":    "Electronics and Communication Engineering",
	"EE":    "Electrical Engineering",
	"ES":    "Environmental Science and Engineering",
	"EY":    "Ecology and Evolution",
	"GE":    "Geomatics Engineering",
	"GG":    "Geology and Geophysics",
	"IN":    "Instrumentation Engineering",
	"MA":    "Mathematics",
	"ME":    "Mechanical Engineering",
	"MN":    "Mining Engineering",
	"MT":    "Metallurgical Engineering",
	"NM":    "Naval Architecture and Marine Engineering",
	"PE":    "Petroleum Engineering",
	"PH":    "Physics",
	"PI":    "Production and Industrial Engineering",
	"ST":    "Statistics",
	"TF":    "Textile Engineering and Fibre Science",
	"XE":    "Engineering Sciences",
	"XH-C1": "Humanities & Social Sciences – Economics",
	"XH-C2": "Humanities & Social Sciences – English",
	"XH-C3": "Humanities & Social Sciences – Linguistics",
	"XH-C4": "Humanities & Social Sciences – Philosophy",
	"XH-C5": "Humanities & Social Sciences – Psychology",
	"XH-C6": "Humanities & Social Sciences – Sociology",
	"XL":    "Life Sciences",
}

// FullName resolves a subject code to its full discipline name,
// returning the code itself when no mapping exists.
func FullName(code string) string {
	if name, ok := fullNames[code]; ok {
		return name
	}
	return code
}
