package grading

import (
	"math"
	"testing"

	"github.com/volatiletech/null/v8"
)

func letterCourse(code string, credits float64, grade string, points ...float64) Course {
	c := Course{Code: code, Name: code, Credits: credits, GradeType: GradeTypeLetter, Grade: grade}
	if len(points) > 0 {
		c.GradePoint = null.Float64From(points[0])
	}
	return c
}

func TestGPA(t *testing.T) {
	tests := []struct {
		name    string
		courses []Course
		want    float64
		wantNil bool
	}{
		{
			name: "credit weighted mean",
			courses: []Course{
				letterCourse("CS101", 4, "A", 8.0),
				letterCourse("MA101", 3, "B", 7.0),
			},
			want: (4*8.0 + 3*7.0) / 7.0,
		},
		{
			name: "zero credit courses excluded",
			courses: []Course{
				letterCourse("CS101", 4, "A", 8.0),
				letterCourse("AUDIT", 0, "A", 10.0),
			},
			want: 8.0,
		},
		{
			name: "absent grade points excluded",
			courses: []Course{
				letterCourse("CS101", 4, "A", 8.0),
				letterCourse("PF101", 2, "P"), // pass/fail, no grade point
			},
			want: 8.0,
		},
		{name: "no courses", wantNil: true},
		{
			name: "all zero credit",
			courses: []Course{
				letterCourse("SEM1", 0, "A", 9.0),
				letterCourse("SEM2", 0, "B", 8.0),
			},
			wantNil: true,
		},
		{
			name: "all ungraded",
			courses: []Course{
				letterCourse("PF101", 2, "P"),
				letterCourse("PF102", 3, "W"),
			},
			wantNil: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GPA(tt.courses)
			if tt.wantNil {
				if got.Valid {
					t.Errorf("GPA() = %v, want not computable", got.Float64)
				}
				return
			}
			if !got.Valid {
				t.Fatalf("GPA() not computable, want %v", tt.want)
			}
			if math.Abs(got.Float64-tt.want) > 0.001 {
				t.Errorf("GPA() = %v, want %v", got.Float64, tt.want)
			}
		})
	}
}

func TestGPA_zeroIsNotNone(t *testing.T) {
	// an all-F semester has a real 0.0 GPA; it must not read as "not computable"
	got := GPA([]Course{letterCourse("CS101", 4, "F", 0.0)})
	if !got.Valid {
		t.Fatal("GPA() not computable, want 0.0")
	}
	if got.Float64 != 0.0 {
		t.Errorf("GPA() = %v, want 0.0", got.Float64)
	}
}

func TestCGPA(t *testing.T) {
	semesters := []Semester{
		{ID: "s1", Name: "Semester 1", Courses: []Course{letterCourse("CS101", 4, "B", 8.0)}},
		{ID: "s2", Name: "Semester 2", Courses: []Course{letterCourse("CS201", 4, "C", 7.0)}},
	}

	got := CGPA(semesters)
	if !got.Valid {
		t.Fatal("CGPA() not computable")
	}
	if got.Float64 != 7.5 {
		t.Errorf("CGPA() = %v, want 7.5", got.Float64)
	}

	if empty := CGPA(nil); empty.Valid {
		t.Errorf("CGPA(nil) = %v, want not computable", empty.Float64)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    null.Float64
		decimals []int
		want     null.Float64
	}{
		{name: "default 2 decimals", value: null.Float64From(7.5714285), want: null.Float64From(7.57)},
		{name: "rounds up", value: null.Float64From(7.575), want: null.Float64From(7.58)},
		{name: "explicit decimals", value: null.Float64From(7.5714285), decimals: []int{3}, want: null.Float64From(7.571)},
		{name: "absent passes through", value: null.Float64{}, want: null.Float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.value, tt.decimals...); got != tt.want {
				t.Errorf("Round() = %v, want %v", got, tt.want)
			}
		})
	}
}
