package session

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/getgradient/gradient/core"
	"github.com/getgradient/gradient/core/grading"
)

func newValidate() *validator.Validate {
	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)
	return validate
}

func TestSaveSession_Validate_metadataDefaults(t *testing.T) {
	validate := newValidate()

	tests := []struct {
		name string
		meta Metadata
		want Metadata
	}{
		{
			name: "empty metadata",
			want: DefaultMetadata(),
		},
		{
			name: "scale only",
			meta: Metadata{Scale: grading.Scale4},
			want: Metadata{Scale: grading.Scale4, RoundTo: null.IntFrom(2), RepeatPolicy: grading.PolicyLatest},
		},
		{
			name: "missing roundTo",
			meta: Metadata{Scale: grading.Scale10, RepeatPolicy: grading.PolicyLatest},
			want: Metadata{Scale: grading.Scale10, RoundTo: null.IntFrom(2), RepeatPolicy: grading.PolicyLatest},
		},
		{
			name: "missing policy",
			meta: Metadata{Scale: grading.Scale10, RoundTo: null.IntFrom(3)},
			want: Metadata{Scale: grading.Scale10, RoundTo: null.IntFrom(3), RepeatPolicy: grading.PolicyLatest},
		},
		{
			name: "explicit zero roundTo is kept",
			meta: Metadata{Scale: grading.Scale10, RoundTo: null.IntFrom(0), RepeatPolicy: grading.PolicyHighest},
			want: Metadata{Scale: grading.Scale10, RoundTo: null.IntFrom(0), RepeatPolicy: grading.PolicyHighest},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss := SaveSession{Metadata: tt.meta}
			if err := ss.Validate(validate); err != nil {
				t.Fatalf("Validate() unexpected error = %v", err)
			}
			if ss.Metadata != tt.want {
				t.Errorf("Metadata = %+v, want %+v", ss.Metadata, tt.want)
			}
		})
	}
}

func TestSaveSession_Validate_rejectsBadMetadata(t *testing.T) {
	validate := newValidate()

	tests := []struct {
		name string
		meta Metadata
	}{
		{name: "bad scale", meta: Metadata{Scale: 5}},
		{name: "bad policy", meta: Metadata{RepeatPolicy: "newest"}},
		{name: "roundTo above max", meta: Metadata{RoundTo: null.IntFrom(7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss := SaveSession{Metadata: tt.meta}
			if err := ss.Validate(validate); err == nil {
				t.Error("Validate() expected error, got nil")
			}
		})
	}
}
