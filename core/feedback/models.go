package feedback

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/internhub/backend/core"
)

// Visibility controls which audience may view a feedback record.
type Visibility string

const (
	// VisibilityManagerIntern makes the record visible to the manager and the intern.
	VisibilityManagerIntern Visibility = "manager_intern"
	// VisibilityManagerOnly restricts the record to the owning manager.
	VisibilityManagerOnly Visibility = "manager_only"
)

// Feedback is a commentary record about an intern, optionally tied to
// assignments. UserID is the identity of the creating manager and is immutable.
type Feedback struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	AssignedIntern    string     `json:"assigned_intern"`
	Title             string     `json:"title"`
	Comments          string     `json:"comments"`
	Visibility        Visibility `json:"visibility"`
	LinkedAssignments []string   `json:"linked_assignments"`
	SubmittedAt       time.Time  `json:"submitted_at"` // UTC
	CreatedAt         time.Time  `json:"created_at"`   // UTC
	UpdatedAt         time.Time  `json:"updated_at"`   // UTC
}

func (f Feedback) OwnerID() string { return f.UserID }

// NewFeedback contains information needed to create a new Feedback.
// SubmittedAt may be supplied by the caller; it defaults to creation time.
type NewFeedback struct {
	AssignedIntern    string     `json:"assigned_intern" validate:"required"`
	Title             string     `json:"title" validate:"required"`
	Comments          string     `json:"comments"`
	Visibility        Visibility `json:"visibility" validate:"omitempty,oneof=manager_intern manager_only"`
	LinkedAssignments []string   `json:"linked_assignments"`
	SubmittedAt       *time.Time `json:"submitted_at"`
}

func (nf *NewFeedback) Validate(validate *validator.Validate) error {
	nf.AssignedIntern = core.CleanString(nf.AssignedIntern)
	nf.Title = core.CleanString(nf.Title)
	nf.Comments = core.CleanString(nf.Comments)
	return validate.Struct(nf)
}

// UpdateFeedback defines what information may be provided to modify an existing
// Feedback. All fields use presence semantics: a key present in the request
// replaces the stored value even when empty; absent keys are untouched.
type UpdateFeedback struct {
	AssignedIntern    *string     `json:"assigned_intern"`
	Title             *string     `json:"title"`
	Comments          *string     `json:"comments"`
	Visibility        *Visibility `json:"visibility" validate:"omitempty,oneof=manager_intern manager_only"`
	LinkedAssignments *[]string   `json:"linked_assignments"`
}

func (uf *UpdateFeedback) Validate(validate *validator.Validate) error {
	return validate.Struct(uf)
}
