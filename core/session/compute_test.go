package session

import (
	"testing"

	"github.com/volatiletech/null/v8"

	"github.com/getgradient/gradient/core/grading"
)

func marksCourse(code string, credits, marks float64) grading.Course {
	return grading.Course{
		Code:      code,
		Credits:   credits,
		GradeType: grading.GradeTypeMarks,
		Marks:     null.Float64From(marks),
	}
}

func letterCourse(code string, credits float64, grade string) grading.Course {
	return grading.Course{
		Code:      code,
		Credits:   credits,
		GradeType: grading.GradeTypeLetter,
		Grade:     grade,
	}
}

func TestCompute_marksDerivation(t *testing.T) {
	meta := DefaultMetadata()
	res := Compute([]grading.Semester{
		{Name: "Sem 1", Courses: []grading.Course{
			marksCourse("CS101", 4, 95), // A+/O, 10
			marksCourse("MA101", 3, 75), // B, 8
		}},
	}, meta, nil)

	c := res.Semesters[0].Courses[0]
	if c.Grade != "A+/O" || !c.GradePoint.Valid || c.GradePoint.Float64 != 10 {
		t.Errorf("expected A+/O 10, got %q %v", c.Grade, c.GradePoint)
	}
	// GPA = (4*10 + 3*8) / 7 = 64/7 = 9.142857.. -> 9.14
	if gpa := res.Semesters[0].GPA; !gpa.Valid || gpa.Float64 != 9.14 {
		t.Errorf("expected GPA 9.14, got %v", gpa)
	}
	if !res.CGPA.Valid || res.CGPA.Float64 != 9.14 {
		t.Errorf("expected CGPA 9.14, got %v", res.CGPA)
	}
}

func TestCompute_letterDerivation(t *testing.T) {
	meta := DefaultMetadata()
	res := Compute([]grading.Semester{
		{Courses: []grading.Course{
			letterCourse("CS101", 4, "A"), // 9 on 10-point
			letterCourse("PE101", 1, "W"), // unknown letter, stays out
		}},
	}, meta, nil)

	if c := res.Semesters[0].Courses[0]; !c.GradePoint.Valid || c.GradePoint.Float64 != 9 {
		t.Errorf("expected A -> 9, got %v", c.GradePoint)
	}
	if c := res.Semesters[0].Courses[1]; c.GradePoint.Valid {
		t.Errorf("expected W to stay without points, got %v", c.GradePoint)
	}
	// only CS101 counts
	if gpa := res.Semesters[0].GPA; !gpa.Valid || gpa.Float64 != 9 {
		t.Errorf("expected GPA 9, got %v", gpa)
	}
}

func TestCompute_explicitGradePointKept(t *testing.T) {
	crs := letterCourse("CS101", 3, "B")
	crs.GradePoint = null.Float64From(8.5)

	res := Compute([]grading.Semester{{Courses: []grading.Course{crs}}}, DefaultMetadata(), nil)
	if c := res.Semesters[0].Courses[0]; c.GradePoint.Float64 != 8.5 {
		t.Errorf("expected explicit 8.5 kept, got %v", c.GradePoint)
	}
}

func TestCompute_repeatPolicyAffectsOnlyCGPA(t *testing.T) {
	meta := DefaultMetadata() // latest
	res := Compute([]grading.Semester{
		{Name: "Sem 1", Courses: []grading.Course{marksCourse("CS101", 4, 35)}}, // F, 0
		{Name: "Sem 2", Courses: []grading.Course{marksCourse("CS101", 4, 95)}}, // A+/O, 10
	}, meta, nil)

	if gpa := res.Semesters[0].GPA; !gpa.Valid || gpa.Float64 != 0 {
		t.Errorf("expected Sem 1 GPA 0 to stand, got %v", gpa)
	}
	// retake replaces the original in the CGPA pool
	if !res.CGPA.Valid || res.CGPA.Float64 != 10 {
		t.Errorf("expected CGPA 10 after retake, got %v", res.CGPA)
	}
}

func TestCompute_customMappingsWin(t *testing.T) {
	meta := DefaultMetadata()
	meta.CustomTemplate = grading.BitMesra10Point.Name
	custom := []grading.Mapping{
		{MinMarks: 50, MaxMarks: 100, LetterGrade: "P", GradePoint: 10},
		{MinMarks: 0, MaxMarks: 49, LetterGrade: "F", GradePoint: 0},
	}

	res := Compute([]grading.Semester{
		{Courses: []grading.Course{marksCourse("CS101", 3, 55)}},
	}, meta, custom)

	if c := res.Semesters[0].Courses[0]; c.Grade != "P" || c.GradePoint.Float64 != 10 {
		t.Errorf("expected custom mapping P/10, got %q %v", c.Grade, c.GradePoint)
	}
}

func TestCompute_namedTemplate(t *testing.T) {
	meta := Metadata{Scale: grading.Scale4, RoundTo: null.IntFrom(2), RepeatPolicy: grading.PolicyLatest,
		CustomTemplate: grading.Standard4Point.Name}

	res := Compute([]grading.Semester{
		{Courses: []grading.Course{marksCourse("CS101", 3, 95)}},
	}, meta, nil)

	if c := res.Semesters[0].Courses[0]; c.Grade != "A+" || c.GradePoint.Float64 != 4 {
		t.Errorf("expected A+ 4.0 from 4-point template, got %q %v", c.Grade, c.GradePoint)
	}
}

func TestCompute_warnings(t *testing.T) {
	res := Compute([]grading.Semester{
		{Courses: []grading.Course{
			marksCourse("CS101", -2, 80),
			letterCourse("MA101", 3, ""),
		}},
	}, DefaultMetadata(), nil)

	if len(res.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(res.Warnings), res.Warnings)
	}
}

func TestCompute_roundTo(t *testing.T) {
	meta := DefaultMetadata()
	meta.RoundTo = null.IntFrom(1)
	res := Compute([]grading.Semester{
		{Courses: []grading.Course{
			marksCourse("CS101", 4, 95), // 10
			marksCourse("MA101", 3, 75), // 8
		}},
	}, meta, nil)

	// 64/7 = 9.1428.. -> 9.1
	if gpa := res.Semesters[0].GPA; gpa.Float64 != 9.1 {
		t.Errorf("expected 9.1, got %v", gpa)
	}
}

func TestCompute_roundToUnsetDefaultsToTwoDecimals(t *testing.T) {
	meta := Metadata{Scale: grading.Scale10, RepeatPolicy: grading.PolicyLatest}
	res := Compute([]grading.Semester{
		{Courses: []grading.Course{
			marksCourse("CS101", 4, 95), // 10
			marksCourse("MA101", 3, 75), // 8
		}},
	}, meta, nil)

	// 64/7 = 9.1428.. -> 9.14, not 9
	if gpa := res.Semesters[0].GPA; gpa.Float64 != 9.14 {
		t.Errorf("expected 9.14, got %v", gpa)
	}
	if cgpa := res.CGPA; cgpa.Float64 != 9.14 {
		t.Errorf("expected CGPA 9.14, got %v", cgpa)
	}
}

func TestCompute_doesNotMutateInput(t *testing.T) {
	in := []grading.Semester{
		{Courses: []grading.Course{marksCourse("CS101", 4, 95)}},
	}
	Compute(in, DefaultMetadata(), nil)

	if in[0].Courses[0].GradePoint.Valid || in[0].GPA.Valid {
		t.Error("input semesters were mutated")
	}
}

func TestCompute_empty(t *testing.T) {
	res := Compute(nil, DefaultMetadata(), nil)
	if res.CGPA.Valid {
		t.Errorf("expected no CGPA for empty gradebook, got %v", res.CGPA)
	}
	if len(res.Semesters) != 0 {
		t.Errorf("expected no semesters, got %d", len(res.Semesters))
	}
}
