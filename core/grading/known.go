package grading

import "strings"

// LetterKnown reports whether a letter grade is recognized, either by the
// template or by the per-scale default table. Callers deriving grade points
// should check this first: GradeToPoints maps unknown letters to 0.0, which is
// indistinguishable from a genuine F, and ungraded letters (P/W/I/AU) must
// stay excluded from GPA math rather than count as failures.
func LetterKnown(grade string, scale int, tmpl ...Template) bool {
	grade = strings.ToUpper(strings.TrimSpace(grade))

	if len(tmpl) > 0 {
		for _, m := range tmpl[0].Mappings {
			if strings.ToUpper(m.LetterGrade) == grade {
				return true
			}
		}
	}

	if scale == Scale10 {
		_, ok := letterToPoints10[grade]
		return ok
	}
	_, ok := letterToPoints4[grade]
	return ok
}
