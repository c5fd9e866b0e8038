package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/internhub/backend/core/feedback"
)

type feedbackRepository struct {
	db *feedbackTable
}

var _ feedback.Repository = (*feedbackRepository)(nil)

func NewFeedbackRepository(db *DB) *feedbackRepository {
	return &feedbackRepository{db: db.feedback}
}

func (repo *feedbackRepository) CreateFeedback(_ context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	fb.ID = uuid.New().String()
	repo.db.table[fb.ID] = &fb
	return fb, nil
}

func (repo *feedbackRepository) QueryOwnerFeedbacks(_ context.Context, ownerID string) ([]feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	fbs := make([]feedback.Feedback, 0, len(repo.db.table))
	for _, fb := range repo.db.table {
		if fb.UserID == ownerID {
			fbs = append(fbs, *fb)
		}
	}
	sort.Slice(fbs, func(i, j int) bool { return fbs[i].CreatedAt.Before(fbs[j].CreatedAt) })
	return fbs, nil
}

func (repo *feedbackRepository) GetFeedbackByID(_ context.Context, id string) (feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if fb, ok := repo.db.table[id]; ok {
		return *fb, nil
	}
	return feedback.Feedback{}, feedback.ErrNotFound
}

func (repo *feedbackRepository) UpdateFeedback(_ context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[fb.ID]; !ok {
		return feedback.Feedback{}, feedback.ErrNotFound
	}
	repo.db.table[fb.ID] = &fb
	return fb, nil
}

func (repo *feedbackRepository) DeleteFeedback(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return feedback.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
