package session

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/getgradient/gradient/core/grading"
)

// Metadata carries the per-user calculation settings. RoundTo is nullable so
// that an omitted value can be defaulted while an explicit 0 still means
// whole-number display.
type Metadata struct {
	Scale          int      `json:"scale" validate:"scale"`
	RoundTo        null.Int `json:"roundTo" validate:"omitempty,min=0,max=6"`
	RepeatPolicy   string   `json:"repeatPolicy" validate:"oneof=latest highest average"`
	CustomTemplate string   `json:"customTemplate,omitempty"`
}

// roundTo returns the display precision, defaulting when unset.
func (m Metadata) roundTo() int {
	if m.RoundTo.Valid {
		return m.RoundTo.Int
	}
	return 2
}

// DefaultMetadata matches the original product defaults: 10-point scale,
// 2 display decimals, retakes overwrite.
func DefaultMetadata() Metadata {
	return Metadata{
		Scale:        grading.Scale10,
		RoundTo:      null.IntFrom(2),
		RepeatPolicy: grading.PolicyLatest,
	}
}

// Session is one user's saved gradebook. GPA/CGPA fields are derived on save;
// values supplied by the client are discarded and recomputed.
type Session struct {
	ID             string             `json:"id"`
	UserID         string             `json:"-"`
	Semesters      []grading.Semester `json:"semesters"`
	Metadata       Metadata           `json:"metadata"`
	CustomMappings []grading.Mapping  `json:"customMappings,omitempty"`
	CGPA           null.Float64       `json:"cgpa"`
	CreatedAt      time.Time          `json:"created_at"` // UTC
	UpdatedAt      time.Time          `json:"updated_at"` // UTC
}

// SaveSession is the payload to create or replace a user's session.
type SaveSession struct {
	Semesters      []grading.Semester `json:"semesters"`
	Metadata       Metadata           `json:"metadata"`
	CustomMappings []grading.Mapping  `json:"customMappings,omitempty" validate:"omitempty,min=1,dive"`
}

// Validate defaults each omitted metadata field independently before
// validating; a partially supplied metadata object is not an error.
func (ss *SaveSession) Validate(validate *validator.Validate) error {
	if ss.Metadata.Scale == 0 {
		ss.Metadata.Scale = grading.Scale10
	}
	if !ss.Metadata.RoundTo.Valid {
		ss.Metadata.RoundTo = null.IntFrom(2)
	}
	if ss.Metadata.RepeatPolicy == "" {
		ss.Metadata.RepeatPolicy = grading.PolicyLatest
	}
	return validate.Struct(ss)
}
