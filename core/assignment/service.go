package assignment

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/internhub/backend/core"
)

var ErrNotFound = errors.New("assignment not found")

type (
	Repository interface {
		CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		// QueryOwnerAssignments returns all assignments created by ownerID,
		// in store-default order unless an ordering is given.
		QueryOwnerAssignments(ctx context.Context, ownerID string, ordering []core.DBOrdering) ([]Assignment, error)
		GetAssignmentByID(ctx context.Context, id string) (Assignment, error)
		UpdateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		DeleteAssignment(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, callerID string, na NewAssignment) (Assignment, error) {
	now := time.Now().UTC()
	asg := Assignment{
		UserID:         callerID,
		Title:          na.Title,
		Description:    na.Description,
		AssignedIntern: na.AssignedIntern,
		StartDate:      na.StartDate,
		Deadline:       na.Deadline,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return svc.repo.CreateAssignment(ctx, asg)
}

func (svc *Service) Query(ctx context.Context, callerID string, ordering []core.DBOrdering) ([]Assignment, error) {
	return svc.repo.QueryOwnerAssignments(ctx, callerID, ordering)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Assignment, error) {
	return svc.repo.GetAssignmentByID(ctx, id)
}

// Update persists a validated update request onto orig.
// Read-modify-write sequences are not transactionally guarded: two concurrent
// updates to the same record race and the later write wins.
func (svc *Service) Update(ctx context.Context, orig Assignment, ua UpdateAssignment) (Assignment, error) {
	orig.Title = ua.Title
	orig.Description = ua.Description
	orig.StartDate = ua.StartDate
	orig.Deadline = ua.Deadline
	if ua.Completed != nil {
		orig.Completed = *ua.Completed
	}
	orig.UpdatedAt = time.Now().UTC()

	return svc.repo.UpdateAssignment(ctx, orig)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteAssignment(ctx, id)
}
