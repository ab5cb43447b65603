package peer

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/getgradient/gradient/core"
	"github.com/getgradient/gradient/core/grading"
)

// Peer is another student's shared result, kept for side-by-side comparison.
// The CGPA is stored as entered by the owner; peers are display data, never
// fed back into the owner's own computation.
type Peer struct {
	ID        string             `json:"id"`
	UserID    string             `json:"-"`
	Name      string             `json:"name"`
	CGPA      null.String        `json:"cgpa"`
	Semesters []grading.Semester `json:"semesters,omitempty"`
	CreatedAt time.Time          `json:"created_at"` // UTC
}

type NewPeer struct {
	Name      string             `json:"name" validate:"required"`
	CGPA      null.String        `json:"cgpa"`
	Semesters []grading.Semester `json:"semesters,omitempty"`
}

func (np *NewPeer) Validate(validate *validator.Validate) error {
	np.Name = core.CleanString(np.Name)
	return validate.Struct(np)
}
