package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/getgradient/gradient/core/grading"
)

func Test_gradingApi_templates(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/v1/official-templates")
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; want %v", rec.Code, http.StatusOK)
	}

	var resp struct {
		Templates []grading.Template `json:"templates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(resp.Templates))
	}
	if resp.Templates[0].Name != grading.BitMesra10Point.Name {
		t.Errorf("unexpected first template %q", resp.Templates[0].Name)
	}
}

func Test_gradingApi_convertScale(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantValue float64
	}{
		{
			name:      "linear 10 to 4",
			body:      `{"value": 8.5, "fromScale": 10, "toScale": 4, "method": "linear"}`,
			wantCode:  http.StatusOK,
			wantValue: 3.4,
		},
		{
			name:      "official 10 to 4",
			body:      `{"value": 9.6, "fromScale": 10, "toScale": 4, "method": "official"}`,
			wantCode:  http.StatusOK,
			wantValue: 4.0,
		},
		{
			name:      "same scale",
			body:      `{"value": 3.2, "fromScale": 4, "toScale": 4}`,
			wantCode:  http.StatusOK,
			wantValue: 3.2,
		},
		{
			name:     "bad scale",
			body:     `{"value": 3.2, "fromScale": 5, "toScale": 4}`,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/convert-scale", []byte(tt.body))
			app.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("code = %v; want %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var resp struct {
				ConvertedValue float64 `json:"convertedValue"`
				Formula        string  `json:"formula"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.ConvertedValue != tt.wantValue {
				t.Errorf("convertedValue = %v; want %v", resp.ConvertedValue, tt.wantValue)
			}
			if resp.Formula == "" {
				t.Error("expected a formula description")
			}
		})
	}
}

func Test_gradingApi_computeGPA(t *testing.T) {
	body := `{
		"semesters": [
			{"name": "Sem 1", "courses": [
				{"code": "CS101", "credits": 4, "gradeType": "marks", "marks": 95},
				{"code": "MA101", "credits": 3, "gradeType": "marks", "marks": 75}
			]}
		],
		"metadata": {"scale": 10, "roundTo": 2, "repeatPolicy": "latest"}
	}`
	req, rec := newRequest(http.MethodPost, "/v1/gpa", []byte(body))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Semesters []grading.Semester `json:"semesters"`
		CGPA      *float64           `json:"cgpa"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.CGPA == nil || *resp.CGPA != 9.14 {
		t.Errorf("cgpa = %v; want 9.14", resp.CGPA)
	}
	if len(resp.Semesters) != 1 || resp.Semesters[0].Courses[0].Grade != "A+/O" {
		t.Errorf("unexpected semesters: %+v", resp.Semesters)
	}
}

func Test_gradingApi_parseTranscript(t *testing.T) {
	body := `{"text": "CS101   Data Structures   3.0   A   8.0"}`
	req, rec := newRequest(http.MethodPost, "/v1/parse-transcript", []byte(body))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}

	var resp grading.ParseResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Courses) != 1 || resp.Courses[0].Code != "CS101" {
		t.Errorf("unexpected parse result: %+v", resp)
	}
}
