package grading

import "github.com/volatiletech/null/v8"

// Grading scales
const (
	Scale4  = 4
	Scale10 = 10
)

// Grade input types
const (
	GradeTypeLetter = "letter"
	GradeTypeMarks  = "marks"
)

// Repeat policies
const (
	PolicyLatest  = "latest"
	PolicyHighest = "highest"
	PolicyAverage = "average"
)

// Scale conversion methods
const (
	MethodLinear   = "linear"
	MethodOfficial = "official"
)

// Mapping is one marks band of a grading template: marks in
// [MinMarks, MaxMarks] (inclusive both ends) earn LetterGrade worth GradePoint.
type Mapping struct {
	MinMarks    float64 `json:"minMarks" db:"min_marks"`
	MaxMarks    float64 `json:"maxMarks" db:"max_marks"`
	LetterGrade string  `json:"letterGrade" db:"letter_grade"`
	GradePoint  float64 `json:"gradePoint" db:"grade_point"`
}

// Contains reports whether marks falls within the band.
func (m Mapping) Contains(marks float64) bool {
	return m.MinMarks <= marks && marks <= m.MaxMarks
}

// Template is a named, ordered set of marks bands defining one institution's
// grading convention. Bands are expected to partition [0, 100]; overlaps
// resolve by first match in declared order. Immutable once constructed.
type Template struct {
	Name        string    `json:"name"`
	Scale       int       `json:"scale"` // 4 or 10
	Mappings    []Mapping `json:"mappings"`
	Description string    `json:"description,omitempty"`
}

// Course is a single user-entered course record. An invalid (absent) GradePoint
// means the course is excluded from GPA math; it represents ungraded states
// such as Pass/Fail, Incomplete, Withdraw or Audit.
type Course struct {
	Code       string       `json:"code"`
	Name       string       `json:"name"`
	Credits    float64      `json:"credits"`
	GradeType  string       `json:"gradeType"` // "letter" | "marks"
	Grade      string       `json:"grade,omitempty"`
	Marks      null.Float64 `json:"marks,omitempty"`
	GradePoint null.Float64 `json:"gradePoint"`
}

// Semester holds an ordered list of courses. GPA is derived, never trusted
// from input; the aggregator recomputes it.
type Semester struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Courses []Course     `json:"courses"`
	GPA     null.Float64 `json:"gpa"`
	Order   int          `json:"order"`
}
