package session

import (
	"fmt"

	"github.com/volatiletech/null/v8"

	"github.com/getgradient/gradient/core/grading"
)

// Result is the derived view of a gradebook: semesters with per-course grade
// points and per-semester GPAs filled in, the overall CGPA after repeat
// resolution, and any data-quality warnings gathered along the way.
type Result struct {
	Semesters []grading.Semester `json:"semesters"`
	CGPA      null.Float64       `json:"cgpa"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// resolveTemplate picks the grading template for a computation. Explicit
// custom mappings win, then a named builtin, then the scale default.
func resolveTemplate(meta Metadata, customMappings []grading.Mapping) grading.Template {
	if len(customMappings) > 0 {
		return grading.Template{
			Name:     "custom",
			Scale:    meta.Scale,
			Mappings: customMappings,
		}
	}
	if meta.CustomTemplate != "" {
		if tmpl, ok := grading.TemplateByName(meta.CustomTemplate); ok {
			return tmpl
		}
	}
	if meta.Scale == grading.Scale4 {
		return grading.Standard4Point
	}
	return grading.BitMesra10Point
}

// Compute derives grade points, semester GPAs and the CGPA for a gradebook.
// Inputs are not mutated. Per-semester GPAs are computed over each semester's
// courses as entered; the CGPA is computed over the repeat-resolved pool of
// all courses.
func Compute(semesters []grading.Semester, meta Metadata, customMappings []grading.Mapping) Result {
	tmpl := resolveTemplate(meta, customMappings)

	res := Result{Semesters: make([]grading.Semester, len(semesters))}
	for i, sem := range semesters {
		out := sem
		out.Courses = make([]grading.Course, len(sem.Courses))
		for j, c := range sem.Courses {
			out.Courses[j] = deriveGradePoint(c, tmpl, meta.Scale)
			res.Warnings = append(res.Warnings, grading.ValidateCourse(out.Courses[j], meta.Scale)...)
		}
		out.GPA = grading.Round(grading.GPA(out.Courses), meta.roundTo())
		res.Semesters[i] = out
	}

	var pool []grading.Course
	for _, sem := range res.Semesters {
		pool = append(pool, sem.Courses...)
	}
	pool = grading.ApplyRepeatPolicy(pool, meta.RepeatPolicy)
	res.CGPA = grading.Round(grading.GPA(pool), meta.roundTo())
	return res
}

// deriveGradePoint fills in Course.GradePoint from marks or a letter grade.
// An explicit grade point from the client is kept as-is. Unrecognized letters
// are left without a point instead of defaulting to a fail, so withdrawn or
// pass/fail entries stay out of the GPA.
func deriveGradePoint(c grading.Course, tmpl grading.Template, scale int) grading.Course {
	if c.GradePoint.Valid {
		return c
	}
	switch c.GradeType {
	case grading.GradeTypeMarks:
		if c.Marks.Valid {
			grade, points := grading.MarksToPoints(c.Marks.Float64, tmpl)
			c.Grade = grade
			c.GradePoint = null.Float64From(points)
		}
	default:
		if c.Grade != "" && grading.LetterKnown(c.Grade, scale, tmpl) {
			c.GradePoint = null.Float64From(grading.GradeToPoints(c.Grade, scale, tmpl))
		}
	}
	return c
}

// summarize renders a one-line description of a computed result, used by the
// admin CLI and logs.
func summarize(res Result) string {
	cgpa := "n/a"
	if res.CGPA.Valid {
		cgpa = fmt.Sprintf("%.2f", res.CGPA.Float64)
	}
	return fmt.Sprintf("%d semester(s), CGPA %s, %d warning(s)", len(res.Semesters), cgpa, len(res.Warnings))
}
