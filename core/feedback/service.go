package feedback

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("feedback not found")

type (
	Repository interface {
		CreateFeedback(ctx context.Context, fb Feedback) (Feedback, error)
		// QueryOwnerFeedbacks returns all feedback records created by ownerID.
		QueryOwnerFeedbacks(ctx context.Context, ownerID string) ([]Feedback, error)
		GetFeedbackByID(ctx context.Context, id string) (Feedback, error)
		UpdateFeedback(ctx context.Context, fb Feedback) (Feedback, error)
		DeleteFeedback(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, callerID string, nf NewFeedback) (Feedback, error) {
	now := time.Now().UTC()
	fb := Feedback{
		UserID:            callerID,
		AssignedIntern:    nf.AssignedIntern,
		Title:             nf.Title,
		Comments:          nf.Comments,
		Visibility:        nf.Visibility,
		LinkedAssignments: nf.LinkedAssignments,
		SubmittedAt:       now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if fb.Visibility == "" {
		fb.Visibility = VisibilityManagerIntern
	}
	if nf.SubmittedAt != nil {
		fb.SubmittedAt = nf.SubmittedAt.UTC()
	}
	return svc.repo.CreateFeedback(ctx, fb)
}

func (svc *Service) Query(ctx context.Context, callerID string) ([]Feedback, error) {
	return svc.repo.QueryOwnerFeedbacks(ctx, callerID)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Feedback, error) {
	return svc.repo.GetFeedbackByID(ctx, id)
}

// Update persists a validated update request onto orig.
// A present key replaces the stored value, an empty one included; absent keys
// are untouched. Read-modify-write sequences are not transactionally guarded.
func (svc *Service) Update(ctx context.Context, orig Feedback, uf UpdateFeedback) (Feedback, error) {
	if uf.AssignedIntern != nil {
		orig.AssignedIntern = *uf.AssignedIntern
	}
	if uf.Title != nil {
		orig.Title = *uf.Title
	}
	if uf.Comments != nil {
		orig.Comments = *uf.Comments
	}
	if uf.Visibility != nil {
		orig.Visibility = *uf.Visibility
	}
	if uf.LinkedAssignments != nil {
		orig.LinkedAssignments = *uf.LinkedAssignments
	}
	orig.UpdatedAt = time.Now().UTC()

	return svc.repo.UpdateFeedback(ctx, orig)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteFeedback(ctx, id)
}
