package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/internhub/backend/core"
	"github.com/internhub/backend/core/assignment"
	"github.com/internhub/backend/core/feedback"
	"github.com/internhub/backend/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, email, pwd string,
	isActive bool,
	createdAt ...time.Time,
) user.User {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Name:      name,
		Email:     email,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	usr.SetActive(isActive)
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateAssignment(
	t *testing.T,
	repo assignment.Repository,
	ownerID, title, intern string,
	startDate, deadline core.Date,
	createdAt ...time.Time,
) assignment.Assignment {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	asg, err := repo.CreateAssignment(context.Background(), assignment.Assignment{
		UserID:         ownerID,
		Title:          title,
		AssignedIntern: intern,
		StartDate:      startDate,
		Deadline:       deadline,
		CreatedAt:      tstamp,
		UpdatedAt:      tstamp,
	})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return asg
}

func CreateFeedback(
	t *testing.T,
	repo feedback.Repository,
	ownerID, intern, title string,
	visibility feedback.Visibility,
	createdAt ...time.Time,
) feedback.Feedback {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	fb, err := repo.CreateFeedback(context.Background(), feedback.Feedback{
		UserID:         ownerID,
		AssignedIntern: intern,
		Title:          title,
		Visibility:     visibility,
		SubmittedAt:    tstamp,
		CreatedAt:      tstamp,
		UpdatedAt:      tstamp,
	})
	if err != nil {
		t.Fatalf("CreateFeedback() failed: %v", err)
	}
	return fb
}
