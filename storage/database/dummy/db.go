package dummydb

import (
	"sync"

	"github.com/internhub/backend/core/assignment"
	"github.com/internhub/backend/core/feedback"
	"github.com/internhub/backend/core/user"
)

// DB is an in-memory store used in tests and local development.
type (
	DB struct {
		user       *userTable
		assignment *assignmentTable
		feedback   *feedbackTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*assignment.Assignment
	}

	feedbackTable struct {
		sync.RWMutex
		table map[string]*feedback.Feedback
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		assignment: &assignmentTable{table: make(map[string]*assignment.Assignment)},
		feedback:   &feedbackTable{table: make(map[string]*feedback.Feedback)},
	}
	return db, nil
}
