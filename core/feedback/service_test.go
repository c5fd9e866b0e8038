package feedback_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/backend/core/feedback"
	dummydb "github.com/internhub/backend/storage/database/dummy"
)

func newService(t *testing.T) *feedback.Service {
	t.Helper()

	db, err := dummydb.Open()
	require.NoError(t, err)
	return feedback.NewService(dummydb.NewFeedbackRepository(db))
}

func TestServiceCreate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		fb, err := svc.Create(ctx, "usr-1", feedback.NewFeedback{
			AssignedIntern: "Amal",
			Title:          "Strong first sprint",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, fb.ID)
		assert.Equal(t, "usr-1", fb.UserID)
		assert.Equal(t, feedback.VisibilityManagerIntern, fb.Visibility)
		assert.WithinDuration(t, time.Now().UTC(), fb.SubmittedAt, time.Minute)
		assert.Equal(t, fb.CreatedAt, fb.UpdatedAt)
	})

	t.Run("caller overrides", func(t *testing.T) {
		submitted := time.Date(2026, time.February, 14, 9, 30, 0, 0, time.UTC)
		fb, err := svc.Create(ctx, "usr-1", feedback.NewFeedback{
			AssignedIntern: "Ben",
			Title:          "Retro notes",
			Visibility:     feedback.VisibilityManagerOnly,
			SubmittedAt:    &submitted,
		})
		require.NoError(t, err)
		assert.Equal(t, feedback.VisibilityManagerOnly, fb.Visibility)
		assert.Equal(t, submitted, fb.SubmittedAt)
	})
}

func TestServiceUpdate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	orig, err := svc.Create(ctx, "usr-1", feedback.NewFeedback{
		AssignedIntern:    "Amal",
		Title:             "Strong first sprint",
		Comments:          "Shipped ahead of schedule",
		LinkedAssignments: []string{"asg-1"},
	})
	require.NoError(t, err)

	strPtr := func(s string) *string { return &s }

	t.Run("absent keys are untouched", func(t *testing.T) {
		fb, err := svc.Update(ctx, orig, feedback.UpdateFeedback{Title: strPtr("Strong first sprint (rev)")})
		require.NoError(t, err)
		assert.Equal(t, "Strong first sprint (rev)", fb.Title)
		assert.Equal(t, orig.Comments, fb.Comments)
		assert.Equal(t, orig.LinkedAssignments, fb.LinkedAssignments)
		assert.Equal(t, orig.SubmittedAt, fb.SubmittedAt)
	})

	t.Run("present empty values replace", func(t *testing.T) {
		links := []string{}
		fb, err := svc.Update(ctx, orig, feedback.UpdateFeedback{
			Comments:          strPtr(""),
			LinkedAssignments: &links,
		})
		require.NoError(t, err)
		assert.Empty(t, fb.Comments)
		assert.Empty(t, fb.LinkedAssignments)
	})

	t.Run("unknown record", func(t *testing.T) {
		_, err := svc.Update(ctx, feedback.Feedback{ID: "missing"}, feedback.UpdateFeedback{})
		assert.Equal(t, feedback.ErrNotFound, err)
	})
}
