package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/internhub/backend/core"
	"github.com/internhub/backend/core/assignment"
)

// orderable assignment columns for the ordering query param
var assignmentColumns = map[string]bool{
	"title":           true,
	"assigned_intern": true,
	"start_date":      true,
	"deadline":        true,
	"completed":       true,
	"created_at":      true,
	"updated_at":      true,
}

type assignmentRow struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	AssignedIntern string    `db:"assigned_intern"`
	StartDate      null.Time `db:"start_date"`
	Deadline       null.Time `db:"deadline"`
	Completed      bool      `db:"completed"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r assignmentRow) unpack() assignment.Assignment {
	return assignment.Assignment{
		ID:             r.ID,
		UserID:         r.UserID,
		Title:          r.Title,
		Description:    r.Description,
		AssignedIntern: r.AssignedIntern,
		StartDate:      core.Date{Time: r.StartDate.Time},
		Deadline:       core.Date{Time: r.Deadline.Time},
		Completed:      r.Completed,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func packAssignment(asg assignment.Assignment) assignmentRow {
	return assignmentRow{
		ID:             asg.ID,
		UserID:         asg.UserID,
		Title:          asg.Title,
		Description:    asg.Description,
		AssignedIntern: asg.AssignedIntern,
		StartDate:      null.NewTime(asg.StartDate.Time, !asg.StartDate.IsZero()),
		Deadline:       null.NewTime(asg.Deadline.Time, !asg.Deadline.IsZero()),
		Completed:      asg.Completed,
		CreatedAt:      asg.CreatedAt.UTC(),
		UpdatedAt:      asg.UpdatedAt.UTC(),
	}
}

type assignmentRepository struct {
	db *sqlx.DB
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *sqlx.DB) *assignmentRepository {
	return &assignmentRepository{db: db}
}

func (repo assignmentRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return assignment.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo assignmentRepository) CreateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	asg.ID = uuid.New().String()
	row := packAssignment(asg)
	query := `
		INSERT INTO assignment (id, user_id, title, description, assigned_intern, start_date, deadline, completed, created_at, updated_at)
		VALUES (:id, :user_id, :title, :description, :assigned_intern, :start_date, :deadline, :completed, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, row); err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "inserting assignment")
	}
	return row.unpack(), nil
}

func (repo assignmentRepository) QueryOwnerAssignments(ctx context.Context, ownerID string, ordering []core.DBOrdering) ([]assignment.Assignment, error) {
	query := `SELECT * FROM assignment WHERE user_id = $1`
	if clause := orderByClause(ordering, assignmentColumns); clause != "" {
		query += " ORDER BY " + clause
	}

	var rows []assignmentRow
	if err := repo.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}

	asgs := make([]assignment.Assignment, 0, len(rows))
	for _, row := range rows {
		asgs = append(asgs, row.unpack())
	}
	return asgs, nil
}

func (repo assignmentRepository) GetAssignmentByID(ctx context.Context, id string) (assignment.Assignment, error) {
	var row assignmentRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM assignment WHERE id = $1`, id); err != nil {
		return assignment.Assignment{}, repo.trapNoRowsErr(err, "getting assignment by id")
	}
	return row.unpack(), nil
}

func (repo assignmentRepository) UpdateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	row := packAssignment(asg)
	query := `
		UPDATE assignment
		SET title = :title, description = :description, start_date = :start_date,
		    deadline = :deadline, completed = :completed, updated_at = :updated_at
		WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "updating assignment")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	return row.unpack(), nil
}

func (repo assignmentRepository) DeleteAssignment(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM assignment WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return assignment.ErrNotFound
	}
	return nil
}

// orderByClause builds an ORDER BY clause from ordering, dropping fields
// that are not known columns.
func orderByClause(ordering []core.DBOrdering, columns map[string]bool) string {
	terms := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		if columns[ord.Field] {
			terms = append(terms, ord.String())
		}
	}
	return strings.Join(terms, ", ")
}
