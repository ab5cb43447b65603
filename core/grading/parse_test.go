package grading

import "testing"

func TestParseTranscriptText(t *testing.T) {
	text := `
CS101   Data Structures   3.0   A   8.0
MA102   Linear Algebra   4   B+
random noise line
PHY103   Waves and Optics   3.5   A+/O   10
`
	res := ParseTranscriptText(text)

	if len(res.Courses) != 3 {
		t.Fatalf("expected 3 courses, got %d: %+v", len(res.Courses), res.Courses)
	}

	c := res.Courses[0]
	if c.Code != "CS101" || c.Name != "Data Structures" || c.Credits != 3 || c.Grade != "A" {
		t.Errorf("unexpected first course: %+v", c)
	}
	if res.Courses[1].Grade != "B+" || res.Courses[1].Credits != 4 {
		t.Errorf("unexpected second course: %+v", res.Courses[1])
	}
	if res.Courses[2].Grade != "A+/O" {
		t.Errorf("unexpected third course: %+v", res.Courses[2])
	}

	if len(res.Warnings) != 1 {
		t.Errorf("expected 1 warning for the noise line, got %v", res.Warnings)
	}
	if res.OverallConfidence <= 0 || res.OverallConfidence >= 0.85 {
		t.Errorf("expected partial confidence, got %v", res.OverallConfidence)
	}
}

func TestParseTranscriptText_empty(t *testing.T) {
	res := ParseTranscriptText("  \n\n ")
	if len(res.Courses) != 0 || res.OverallConfidence != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a manual-entry warning")
	}
}
