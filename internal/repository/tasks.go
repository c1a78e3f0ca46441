package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/erp/internal/entity"
)

var taskColumns = []string{
	"id",
	"company_id",
	"title",
	"description",
	"status",
	"priority",
	"due_date",
	"assignee_id",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateTask(ctx context.Context, t entity.Task) error {
	sqlQuery :=
		`INSERT INTO activities
			(id, company_id, title, description, status, priority, due_date, assignee_id, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, sqlQuery,
		t.ID,
		t.CompanyID,
		t.Title,
		t.Description,
		t.Status,
		t.Priority,
		t.DueDate,
		t.AssigneeID,
		t.CreatedAt,
		t.UpdatedAt,
	)

	return err
}

func (r *Repository) Task(ctx context.Context, companyID, id uuid.UUID) (entity.Task, error) {
	stmt := psql.Select(taskColumns...).
		From("activities").
		Where(sq.Eq{"id": id, "company_id": companyID})

	return one[entity.Task](ctx, r.db, stmt)
}

// Tasks lists the newest tasks first.
func (r *Repository) Tasks(ctx context.Context, f entity.TaskFilter) ([]entity.Task, error) {
	stmt := psql.Select(taskColumns...).
		From("activities").
		Where(sq.Eq{"company_id": f.CompanyID}).
		OrderBy("created_at DESC", "id")

	if len(f.Statuses) > 0 {
		stmt = stmt.Where(sq.Eq{"status": f.Statuses})
	}

	if len(f.Priorities) > 0 {
		stmt = stmt.Where(sq.Eq{"priority": f.Priorities})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}

	return many[entity.Task](ctx, r.db, stmt)
}

// Backslash is the default LIKE escape character in Postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// TaskByTitle finds the newest open task whose title contains the given text literally.
func (r *Repository) TaskByTitle(ctx context.Context, companyID uuid.UUID, title string) (entity.Task, error) {
	stmt := psql.Select(taskColumns...).
		From("activities").
		Where(sq.Eq{"company_id": companyID}).
		Where(sq.NotEq{"status": entity.TaskCompleted}).
		Where(sq.ILike{"title": "%" + likeEscaper.Replace(title) + "%"}).
		OrderBy("created_at DESC").
		Limit(1)

	return one[entity.Task](ctx, r.db, stmt)
}

func (r *Repository) UpdateTaskStatus(
	ctx context.Context,
	companyID, id uuid.UUID,
	status entity.TaskStatus,
	updatedAt time.Time,
) error {
	const sqlQuery = `UPDATE activities SET status = $1, updated_at = $2 WHERE id = $3 AND company_id = $4`

	result, err := r.db.Exec(ctx, sqlQuery, status, updatedAt, id, companyID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) TaskStats(ctx context.Context, companyID uuid.UUID, now time.Time) (entity.TaskStats, error) {
	sqlQuery := `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = $2),
			count(*) FILTER (WHERE status = $3),
			count(*) FILTER (WHERE status = $4),
			count(*) FILTER (WHERE status <> $4 AND due_date < $5)
		FROM activities
		WHERE company_id = $1`

	var s entity.TaskStats

	err := r.db.QueryRow(ctx, sqlQuery,
		companyID,
		entity.TaskTodo,
		entity.TaskInProgress,
		entity.TaskCompleted,
		now,
	).Scan(&s.Total, &s.Pending, &s.InProgress, &s.Completed, &s.Overdue)
	if err != nil {
		return entity.TaskStats{}, err
	}

	return s, nil
}
