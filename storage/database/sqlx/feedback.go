package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/internhub/backend/core/feedback"
)

type feedbackRow struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	AssignedIntern    string         `db:"assigned_intern"`
	Title             string         `db:"title"`
	Comments          string         `db:"comments"`
	Visibility        string         `db:"visibility"`
	LinkedAssignments pq.StringArray `db:"linked_assignments"`
	SubmittedAt       time.Time      `db:"submitted_at"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (r feedbackRow) unpack() feedback.Feedback {
	return feedback.Feedback{
		ID:                r.ID,
		UserID:            r.UserID,
		AssignedIntern:    r.AssignedIntern,
		Title:             r.Title,
		Comments:          r.Comments,
		Visibility:        feedback.Visibility(r.Visibility),
		LinkedAssignments: r.LinkedAssignments,
		SubmittedAt:       r.SubmittedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func packFeedback(fb feedback.Feedback) feedbackRow {
	links := fb.LinkedAssignments
	if links == nil {
		links = []string{}
	}
	return feedbackRow{
		ID:                fb.ID,
		UserID:            fb.UserID,
		AssignedIntern:    fb.AssignedIntern,
		Title:             fb.Title,
		Comments:          fb.Comments,
		Visibility:        string(fb.Visibility),
		LinkedAssignments: links,
		SubmittedAt:       fb.SubmittedAt.UTC(),
		CreatedAt:         fb.CreatedAt.UTC(),
		UpdatedAt:         fb.UpdatedAt.UTC(),
	}
}

type feedbackRepository struct {
	db *sqlx.DB
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *sqlx.DB) *feedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo feedbackRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return feedback.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo feedbackRepository) CreateFeedback(ctx context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	fb.ID = uuid.New().String()
	row := packFeedback(fb)
	query := `
		INSERT INTO feedback (id, user_id, assigned_intern, title, comments, visibility, linked_assignments, submitted_at, created_at, updated_at)
		VALUES (:id, :user_id, :assigned_intern, :title, :comments, :visibility, :linked_assignments, :submitted_at, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, row); err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "inserting feedback")
	}
	return row.unpack(), nil
}

func (repo feedbackRepository) QueryOwnerFeedbacks(ctx context.Context, ownerID string) ([]feedback.Feedback, error) {
	var rows []feedbackRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM feedback WHERE user_id = $1`, ownerID); err != nil {
		return nil, errors.Wrap(err, "querying feedbacks")
	}

	fbs := make([]feedback.Feedback, 0, len(rows))
	for _, row := range rows {
		fbs = append(fbs, row.unpack())
	}
	return fbs, nil
}

func (repo feedbackRepository) GetFeedbackByID(ctx context.Context, id string) (feedback.Feedback, error) {
	var row feedbackRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM feedback WHERE id = $1`, id); err != nil {
		return feedback.Feedback{}, repo.trapNoRowsErr(err, "getting feedback by id")
	}
	return row.unpack(), nil
}

func (repo feedbackRepository) UpdateFeedback(ctx context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	row := packFeedback(fb)
	query := `
		UPDATE feedback
		SET assigned_intern = :assigned_intern, title = :title, comments = :comments,
		    visibility = :visibility, linked_assignments = :linked_assignments, updated_at = :updated_at
		WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "updating feedback")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return feedback.Feedback{}, feedback.ErrNotFound
	}
	return row.unpack(), nil
}

func (repo feedbackRepository) DeleteFeedback(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting feedback")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return feedback.ErrNotFound
	}
	return nil
}
