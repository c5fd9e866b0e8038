package assignment

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/backend/core"
)

func TestNewAssignmentValidate(t *testing.T) {
	validate := validator.New()

	na := NewAssignment{Title: "  Build landing page  ", AssignedIntern: " Amal "}
	require.NoError(t, na.Validate(validate))
	assert.Equal(t, "Build landing page", na.Title)
	assert.Equal(t, "Amal", na.AssignedIntern)

	na = NewAssignment{Description: "no title"}
	err := na.Validate(validate)
	require.Error(t, err)
	assert.IsType(t, validator.ValidationErrors{}, err)
}

func TestUpdateAssignmentValidate(t *testing.T) {
	validate := validator.New()

	orig := Assignment{
		ID:             "asg-1",
		UserID:         "usr-1",
		Title:          "Build landing page",
		Description:    "First draft",
		AssignedIntern: "Amal",
		StartDate:      core.NewDate(2026, time.March, 2),
		Deadline:       core.NewDate(2026, time.April, 10),
		Completed:      true,
	}

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("blank fields fall back to stored values", func(t *testing.T) {
		ua := UpdateAssignment{Description: "Now with wireframes"}
		require.NoError(t, ua.Validate(orig, validate))
		assert.Equal(t, orig.Title, ua.Title)
		assert.Equal(t, "Now with wireframes", ua.Description)
		assert.Equal(t, orig.StartDate, ua.StartDate)
		assert.Equal(t, orig.Deadline, ua.Deadline)
		assert.Nil(t, ua.Completed) // untouched; presence only matters later
	})

	t.Run("set fields are trimmed and kept", func(t *testing.T) {
		ua := UpdateAssignment{Title: "  Build landing page v2  ", Deadline: core.NewDate(2026, time.May, 1)}
		require.NoError(t, ua.Validate(orig, validate))
		assert.Equal(t, "Build landing page v2", ua.Title)
		assert.Equal(t, core.NewDate(2026, time.May, 1), ua.Deadline)
	})

	t.Run("explicit completed false survives", func(t *testing.T) {
		ua := UpdateAssignment{Completed: boolPtr(false)}
		require.NoError(t, ua.Validate(orig, validate))
		require.NotNil(t, ua.Completed)
		assert.False(t, *ua.Completed)
	})

	t.Run("changing the assigned intern is rejected", func(t *testing.T) {
		ua := UpdateAssignment{AssignedIntern: strPtr("Somebody Else")}
		err := ua.Validate(orig, validate)
		require.Error(t, err)

		vErr, ok := err.(*core.ValidationError)
		require.True(t, ok)
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "assigned_intern", vErr.Fields[0].Field)
		assert.Equal(t, "Assigned intern cannot be changed.", vErr.Fields[0].Error)
	})

	t.Run("resubmitting the same intern is fine", func(t *testing.T) {
		ua := UpdateAssignment{AssignedIntern: strPtr(" Amal ")}
		assert.NoError(t, ua.Validate(orig, validate))
	})
}
