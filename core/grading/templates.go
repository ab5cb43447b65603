package grading

// Built-in grading templates. Process-wide constants: created at load time,
// never mutated. The exact band cutoffs are part of the external contract.
var (
	BitMesra10Point = Template{
		Name:        "BIT Mesra 10-Point",
		Scale:       Scale10,
		Description: "Official BIT Mesra grading system (10-point scale)",
		Mappings: []Mapping{
			{MinMarks: 91, MaxMarks: 100, LetterGrade: "A+/O", GradePoint: 10.0},
			{MinMarks: 81, MaxMarks: 90, LetterGrade: "A", GradePoint: 9.0},
			{MinMarks: 71, MaxMarks: 80, LetterGrade: "B", GradePoint: 8.0},
			{MinMarks: 61, MaxMarks: 70, LetterGrade: "C", GradePoint: 7.0},
			{MinMarks: 51, MaxMarks: 60, LetterGrade: "D", GradePoint: 6.0},
			{MinMarks: 41, MaxMarks: 50, LetterGrade: "E", GradePoint: 5.0},
			{MinMarks: 0, MaxMarks: 40, LetterGrade: "F", GradePoint: 0.0},
		},
	}

	Standard4Point = Template{
		Name:        "Standard 4-Point",
		Scale:       Scale4,
		Description: "Standard US 4.0 grading scale",
		Mappings: []Mapping{
			{MinMarks: 93, MaxMarks: 100, LetterGrade: "A+", GradePoint: 4.0},
			{MinMarks: 90, MaxMarks: 92, LetterGrade: "A", GradePoint: 4.0},
			{MinMarks: 87, MaxMarks: 89, LetterGrade: "A-", GradePoint: 3.7},
			{MinMarks: 83, MaxMarks: 86, LetterGrade: "B+", GradePoint: 3.3},
			{MinMarks: 80, MaxMarks: 82, LetterGrade: "B", GradePoint: 3.0},
			{MinMarks: 77, MaxMarks: 79, LetterGrade: "B-", GradePoint: 2.7},
			{MinMarks: 73, MaxMarks: 76, LetterGrade: "C+", GradePoint: 2.3},
			{MinMarks: 70, MaxMarks: 72, LetterGrade: "C", GradePoint: 2.0},
			{MinMarks: 67, MaxMarks: 69, LetterGrade: "C-", GradePoint: 1.7},
			{MinMarks: 63, MaxMarks: 66, LetterGrade: "D+", GradePoint: 1.3},
			{MinMarks: 60, MaxMarks: 62, LetterGrade: "D", GradePoint: 1.0},
			{MinMarks: 0, MaxMarks: 59, LetterGrade: "F", GradePoint: 0.0},
		},
	}
)

// BuiltinTemplates returns all built-in grading templates in a fixed, stable order.
func BuiltinTemplates() []Template {
	return []Template{BitMesra10Point, Standard4Point}
}

// TemplateByName finds a built-in template by name.
func TemplateByName(name string) (Template, bool) {
	for _, tmpl := range BuiltinTemplates() {
		if tmpl.Name == name {
			return tmpl, true
		}
	}
	return Template{}, false
}
