package grading

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedCourse is one line recovered from a pasted transcript, with a rough
// confidence score for the match.
type ParsedCourse struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Credits    float64 `json:"credits"`
	Grade      string  `json:"grade"`
	Confidence float64 `json:"confidence"`
}

// ParseResult is the outcome of a transcript text parse.
type ParseResult struct {
	Courses           []ParsedCourse `json:"courses"`
	OverallConfidence float64        `json:"overallConfidence"`
	Warnings          []string       `json:"warnings,omitempty"`
}

// lines like "CS101   Data Structures   3.0   A" with an optional trailing
// grade point column
var courseLineRx = regexp.MustCompile(`^([A-Z]{2,4}\d{3})\s+(.+?)\s+(\d+(?:\.\d+)?)\s+([A-F][+-]?|[OEP]|A\+/O)(?:\s+(\d+(?:\.\d+)?))?$`)

// ParseTranscriptText extracts course rows from pasted transcript text, one
// course per line. Lines that do not look like a course row are skipped and
// reported as warnings.
func ParseTranscriptText(text string) ParseResult {
	var res ParseResult
	var matched, total int

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		total++

		m := courseLineRx.FindStringSubmatch(line)
		if m == nil {
			res.Warnings = append(res.Warnings, "Unrecognized line: "+line)
			continue
		}
		matched++

		credits, _ := strconv.ParseFloat(m[3], 64)
		res.Courses = append(res.Courses, ParsedCourse{
			Code:       m[1],
			Name:       strings.TrimSpace(m[2]),
			Credits:    credits,
			Grade:      m[4],
			Confidence: 0.85,
		})
	}

	if total > 0 {
		res.OverallConfidence = 0.85 * float64(matched) / float64(total)
	}
	if len(res.Courses) == 0 {
		res.Warnings = append(res.Warnings, "No course rows recognized. Please enter your courses manually.")
	}
	return res
}
