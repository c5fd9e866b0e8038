package assignment

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/internhub/backend/core"
)

var errAssignedInternChanged = errors.New("Assigned intern cannot be changed.")

// Assignment is a task record linking a title/description/date-range to one intern.
// UserID is the identity of the creating manager and is immutable.
type Assignment struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	AssignedIntern string    `json:"assigned_intern"`
	StartDate      core.Date `json:"start_date"`
	Deadline       core.Date `json:"deadline"`
	Completed      bool      `json:"completed"`
	CreatedAt      time.Time `json:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at"` // UTC
}

func (a Assignment) OwnerID() string { return a.UserID }

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	AssignedIntern string    `json:"assigned_intern"`
	StartDate      core.Date `json:"start_date"`
	Deadline       core.Date `json:"deadline"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.AssignedIntern = core.CleanString(na.AssignedIntern)
	return validate.Struct(na)
}

// UpdateAssignment defines what information may be provided to modify an existing Assignment.
//
// Update policy, per field:
//   - Title, Description, StartDate, Deadline: replace-if-set; an empty/zero
//     value keeps the stored one (these fields cannot be cleared).
//   - Completed: applied whenever the key is present, explicit false included.
//   - AssignedIntern: immutable; supplying a value different from the stored
//     one is a validation error.
type UpdateAssignment struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	AssignedIntern *string   `json:"assigned_intern"`
	StartDate      core.Date `json:"start_date"`
	Deadline       core.Date `json:"deadline"`
	Completed      *bool     `json:"completed"`
}

// Validate checks the request against the stored record and merges the
// stored values into unset fields.
func (ua *UpdateAssignment) Validate(orig Assignment, validate *validator.Validate) error {
	if ua.AssignedIntern != nil && core.CleanString(*ua.AssignedIntern) != orig.AssignedIntern {
		return core.NewValidationError(
			errAssignedInternChanged,
			core.FieldError{Field: "assigned_intern", Error: errAssignedInternChanged.Error()},
		)
	}

	if title := core.CleanString(ua.Title); title != "" {
		ua.Title = title
	} else {
		ua.Title = orig.Title
	}

	if desc := core.CleanString(ua.Description); desc != "" {
		ua.Description = desc
	} else {
		ua.Description = orig.Description
	}

	if ua.StartDate.IsZero() {
		ua.StartDate = orig.StartDate
	}
	if ua.Deadline.IsZero() {
		ua.Deadline = orig.Deadline
	}

	return validate.Struct(ua)
}
