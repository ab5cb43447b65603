package grading

import "fmt"

// ValidateCourse checks a single course record and returns advisory warnings,
// one per violated rule; an empty slice means no issues. Warnings never block
// aggregation and the course is never mutated. The scale is accepted for
// contract parity with callers that validate per-scale payloads.
func ValidateCourse(c Course, scale int) []string {
	var warnings []string

	if c.Credits < 0 {
		warnings = append(warnings, fmt.Sprintf("Course %s: Negative credits not allowed", c.Code))
	}
	if c.Credits == 0 {
		warnings = append(warnings, fmt.Sprintf("Course %s: Zero credits - will not affect GPA", c.Code))
	}

	if c.GradeType == GradeTypeMarks {
		if !c.Marks.Valid {
			warnings = append(warnings, fmt.Sprintf("Course %s: Marks not provided", c.Code))
		} else if c.Marks.Float64 < 0 || c.Marks.Float64 > 100 {
			warnings = append(warnings, fmt.Sprintf("Course %s: Marks out of range (0-100)", c.Code))
		}
	}

	if c.GradeType == GradeTypeLetter {
		if c.Grade == "" {
			warnings = append(warnings, fmt.Sprintf("Course %s: Letter grade not provided", c.Code))
		}
	}

	return warnings
}
