package grading

import (
	"math"

	"github.com/volatiletech/null/v8"
)

// GPA computes the credit-weighted mean of grade points:
// sum(gradePoint × credits) / sum(credits).
//
// Courses with an absent grade point (P/F/I/W/Audit) and courses without
// positive credits contribute to neither numerator nor denominator. When no
// eligible credits remain, the result is the invalid null.Float64, so "not
// computable" stays distinguishable from an actual 0.0 GPA downstream.
func GPA(courses []Course) null.Float64 {
	var totalPoints, totalCredits float64

	for _, c := range courses {
		// skip if no grade point assigned (P/F/I/W/Audit)
		if !c.GradePoint.Valid {
			continue
		}
		// zero-credit courses are still displayed, just never counted
		if c.Credits <= 0 {
			continue
		}
		totalPoints += c.GradePoint.Float64 * c.Credits
		totalCredits += c.Credits
	}

	if totalCredits == 0 {
		return null.Float64{}
	}
	return null.Float64From(totalPoints / totalCredits)
}

// CGPA computes the cumulative GPA over all semesters, pooling every course
// into one flat list; semester boundaries carry no weight. Repeat-policy
// resolution, if desired, is the caller's job before aggregation.
func CGPA(semesters []Semester) null.Float64 {
	var all []Course
	for _, sem := range semesters {
		all = append(all, sem.Courses...)
	}
	return GPA(all)
}

// Round rounds a value for display, 2 decimals by default. Internal
// aggregation always keeps full precision; absent values pass through.
func Round(v null.Float64, decimals ...int) null.Float64 {
	if !v.Valid {
		return v
	}
	d := 2
	if len(decimals) > 0 {
		d = decimals[0]
	}
	pow := math.Pow10(d)
	return null.Float64From(math.Round(v.Float64*pow) / pow)
}
