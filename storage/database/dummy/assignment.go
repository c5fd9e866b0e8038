package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/internhub/backend/core"
	"github.com/internhub/backend/core/assignment"
)

type assignmentRepository struct {
	db *assignmentTable
}

var _ assignment.Repository = (*assignmentRepository)(nil)

func NewAssignmentRepository(db *DB) *assignmentRepository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) CreateAssignment(_ context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	asg.ID = uuid.New().String()
	repo.db.table[asg.ID] = &asg
	return asg, nil
}

func (repo *assignmentRepository) QueryOwnerAssignments(_ context.Context, ownerID string, ordering []core.DBOrdering) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	asgs := make([]assignment.Assignment, 0, len(repo.db.table))
	for _, asg := range repo.db.table {
		if asg.UserID == ownerID {
			asgs = append(asgs, *asg)
		}
	}
	// store-default order: creation time
	sort.Slice(asgs, func(i, j int) bool { return asgs[i].CreatedAt.Before(asgs[j].CreatedAt) })
	for i := len(ordering) - 1; i >= 0; i-- {
		sortAssignments(asgs, ordering[i])
	}
	return asgs, nil
}

func (repo *assignmentRepository) GetAssignmentByID(_ context.Context, id string) (assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if asg, ok := repo.db.table[id]; ok {
		return *asg, nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) UpdateAssignment(_ context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[asg.ID]; !ok {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	repo.db.table[asg.ID] = &asg
	return asg, nil
}

func (repo *assignmentRepository) DeleteAssignment(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return assignment.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func sortAssignments(asgs []assignment.Assignment, ord core.DBOrdering) {
	sort.SliceStable(asgs, func(i, j int) bool {
		a, b := asgs[i], asgs[j]
		if !ord.Ascending {
			a, b = b, a
		}
		switch ord.Field {
		case "title":
			return a.Title < b.Title
		case "assigned_intern":
			return a.AssignedIntern < b.AssignedIntern
		case "start_date":
			return a.StartDate.Before(b.StartDate.Time)
		case "deadline":
			return a.Deadline.Before(b.Deadline.Time)
		case "completed":
			return !a.Completed && b.Completed
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		case "updated_at":
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
		return false
	})
}
