package grading

import "strings"

// Letter grade direct mappings, used when the user inputs a letter directly
// and no template letter matches.
var (
	letterToPoints10 = map[string]float64{
		"A+/O": 10.0, "A+": 10.0, "O": 10.0, // all map to 10
		"A": 9.0,
		"B": 8.0,
		"C": 7.0,
		"D": 6.0,
		"E": 5.0,
		"F": 0.0,
	}

	letterToPoints4 = map[string]float64{
		"A+": 4.0, "A": 4.0, "A-": 3.7,
		"B+": 3.3, "B": 3.0, "B-": 2.7,
		"C+": 2.3, "C": 2.0, "C-": 1.7,
		"D+": 1.3, "D": 1.0, "D-": 0.7,
		"F": 0.0,
	}
)

// MarksToGrade converts numerical marks (0-100) to a letter grade using the
// template's bands, first match in declared order. If no band matches it falls
// back to the last declared band; this tie-break is part of the
// template-authoring contract and must not change.
func MarksToGrade(marks float64, tmpl Template) string {
	for _, m := range tmpl.Mappings {
		if m.Contains(marks) {
			return m.LetterGrade
		}
	}
	return tmpl.Mappings[len(tmpl.Mappings)-1].LetterGrade
}

// GradeToPoints converts a letter grade to its grade point value. A template,
// if given, takes precedence: the first case-insensitive letter match wins.
// Otherwise the hard-coded per-scale table applies. Unknown grades yield 0.0
// rather than an error; callers needing strictness must validate upstream.
func GradeToPoints(grade string, scale int, tmpl ...Template) float64 {
	grade = strings.ToUpper(strings.TrimSpace(grade))

	if len(tmpl) > 0 {
		for _, m := range tmpl[0].Mappings {
			if strings.ToUpper(m.LetterGrade) == grade {
				return m.GradePoint
			}
		}
	}

	if scale == Scale10 {
		return letterToPoints10[grade]
	}
	return letterToPoints4[grade]
}

// MarksToPoints converts marks to grade points via the letter grade.
func MarksToPoints(marks float64, tmpl Template) (string, float64) {
	letter := MarksToGrade(marks, tmpl)
	points := GradeToPoints(letter, tmpl.Scale, tmpl)
	return letter, points
}
