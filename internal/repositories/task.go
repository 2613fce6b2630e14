package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
)

const taskColumns = `
	task_id, title, description, category, priority, status, assigned_to,
	created_by, due_date, completed_date, is_recurring, recurrence_months,
	location, notes, is_active, created_at, updated_at
`

// TaskReadRepository handles task read operations
type TaskReadRepository struct {
	db *sqlx.DB
}

func NewTaskReadRepository(db *sqlx.DB) *TaskReadRepository {
	return &TaskReadRepository{db: db}
}

// GetByID returns an active task by id or ErrNotFound.
func (r *TaskReadRepository) GetByID(ctx context.Context, taskID uuid.UUID) (*models.TaskDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE task_id = $1 AND is_active`, taskColumns)

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, taskID)

	logger.Log.Debugw("task query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{taskID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// List returns a page of active tasks matching the filter together with the
// total match count. Open tasks with the nearest due dates come first.
func (r *TaskReadRepository) List(ctx context.Context, filter models.TaskFilter, page models.Page) ([]models.TaskDB, int, error) {
	where := []string{"is_active"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		where = append(where, fmt.Sprintf("assigned_to = $%d", len(args)))
	}
	if filter.OverdueOnly {
		where = append(where, "due_date IS NOT NULL AND due_date < CURRENT_DATE AND status NOT IN ('completed', 'cancelled')")
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE %s`, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Debugw("task query", "query", countQuery, "error", err)
		return nil, 0, err
	}

	args = append(args, page.PerPage, page.Offset())
	listQuery := fmt.Sprintf(
		`SELECT %s FROM tasks WHERE %s ORDER BY due_date NULLS LAST, title LIMIT $%d OFFSET $%d`,
		taskColumns, whereClause, len(args)-1, len(args),
	)

	tasks := make([]models.TaskDB, 0)
	err := r.db.SelectContext(ctx, &tasks, listQuery, args...)

	logger.Log.Debugw("task query",
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", args,
		"rows", len(tasks),
		"error", err,
	)

	return tasks, total, err
}

// CountByStatus returns the number of active tasks per status.
func (r *TaskReadRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	const query = `SELECT status, COUNT(*) AS count FROM tasks WHERE is_active GROUP BY status`

	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Debugw("task query", "query", query, "rows", len(rows), "error", err)

	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountOverdue returns the number of open tasks past their due date.
func (r *TaskReadRepository) CountOverdue(ctx context.Context) (int, error) {
	const query = `
		SELECT COUNT(*) FROM tasks
		WHERE is_active AND due_date IS NOT NULL AND due_date < CURRENT_DATE
		  AND status NOT IN ('completed', 'cancelled')
	`

	var count int
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Debugw("task query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", count,
		"error", err,
	)

	return count, err
}

// ListComments returns the comments on a task, oldest first.
func (r *TaskReadRepository) ListComments(ctx context.Context, taskID uuid.UUID) ([]models.TaskCommentDB, error) {
	const query = `
		SELECT comment_id, task_id, author_id, comment, created_at
		FROM task_comments
		WHERE task_id = $1
		ORDER BY created_at
	`

	comments := make([]models.TaskCommentDB, 0)
	err := r.db.SelectContext(ctx, &comments, query, taskID)

	logger.Log.Debugw("task comment query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{taskID},
		"rows", len(comments),
		"error", err,
	)

	return comments, err
}

// TaskWriteRepository handles task write operations
type TaskWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTaskWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TaskWriteRepository {
	return &TaskWriteRepository{db: db, txGetter: txGetter}
}

func (r *TaskWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new task and returns its id.
func (r *TaskWriteRepository) Save(ctx context.Context, task *models.TaskDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO tasks (
			title, description, category, priority, status, assigned_to,
			created_by, due_date, is_recurring, recurrence_months, location,
			notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING task_id
	`
	args := []any{
		task.Title, task.Description, task.Category, task.Priority, task.Status,
		task.AssignedTo, task.CreatedBy, task.DueDate, task.IsRecurring,
		task.RecurrenceMonths, task.Location, task.Notes,
	}

	var taskID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &taskID, query, args...)

	logger.Log.Debugw("task insert",
		"query", strings.Join(strings.Fields(query), " "),
		"title", task.Title,
		"category", task.Category,
		"error", err,
	)

	return taskID, err
}

// Update overwrites the mutable fields of a task.
func (r *TaskWriteRepository) Update(ctx context.Context, task *models.TaskDB) error {
	const query = `
		UPDATE tasks
		SET title = $2, description = $3, category = $4, priority = $5,
		    status = $6, due_date = $7, is_recurring = $8, recurrence_months = $9,
		    location = $10, notes = $11, updated_at = NOW()
		WHERE task_id = $1 AND is_active
	`
	args := []any{
		task.TaskID, task.Title, task.Description, task.Category, task.Priority,
		task.Status, task.DueDate, task.IsRecurring, task.RecurrenceMonths,
		task.Location, task.Notes,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Debugw("task update",
		"query", strings.Join(strings.Fields(query), " "),
		"task_id", task.TaskID,
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Assign sets the task assignee.
func (r *TaskWriteRepository) Assign(ctx context.Context, taskID, assigneeID uuid.UUID) error {
	const query = `UPDATE tasks SET assigned_to = $2, updated_at = NOW() WHERE task_id = $1 AND is_active`

	res, err := r.executor(ctx).ExecContext(ctx, query, taskID, assigneeID)

	logger.Log.Debugw("task assign",
		"query", query,
		"task_id", taskID,
		"assignee_id", assigneeID,
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Complete stamps a task completed, or rolls a recurring task forward to its
// next due date and resets it to pending.
func (r *TaskWriteRepository) Complete(ctx context.Context, taskID uuid.UUID, status string, completedDate time.Time, nextDueDate *time.Time) error {
	const query = `
		UPDATE tasks
		SET status = $2, completed_date = $3, due_date = COALESCE($4, due_date),
		    updated_at = NOW()
		WHERE task_id = $1 AND is_active
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, taskID, status, completedDate, nextDueDate)

	logger.Log.Debugw("task complete",
		"query", strings.Join(strings.Fields(query), " "),
		"task_id", taskID,
		"status", status,
		"next_due_date", nextDueDate,
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete marks a task inactive.
func (r *TaskWriteRepository) SoftDelete(ctx context.Context, taskID uuid.UUID) error {
	const query = `UPDATE tasks SET is_active = FALSE, updated_at = NOW() WHERE task_id = $1 AND is_active`

	res, err := r.executor(ctx).ExecContext(ctx, query, taskID)

	logger.Log.Debugw("task delete",
		"query", query,
		"args", []any{taskID},
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveComment inserts a task comment and returns its id.
func (r *TaskWriteRepository) SaveComment(ctx context.Context, comment *models.TaskCommentDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO task_comments (task_id, author_id, comment, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING comment_id
	`

	var commentID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &commentID, query, comment.TaskID, comment.AuthorID, comment.Comment)

	logger.Log.Debugw("task comment insert",
		"query", strings.Join(strings.Fields(query), " "),
		"task_id", comment.TaskID,
		"author_id", comment.AuthorID,
		"error", err,
	)

	return commentID, err
}
