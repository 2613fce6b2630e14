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

const maintenanceColumns = `
	item_id, name, description, category, location, frequency_months,
	next_due_date, last_completed_date, priority, status, is_recurring,
	is_active, estimated_cost, actual_cost, notes, created_by, assigned_to,
	created_at, updated_at
`

// MaintenanceReadRepository handles maintenance read operations
type MaintenanceReadRepository struct {
	db *sqlx.DB
}

func NewMaintenanceReadRepository(db *sqlx.DB) *MaintenanceReadRepository {
	return &MaintenanceReadRepository{db: db}
}

// GetByID returns an active maintenance item by id or ErrNotFound.
func (r *MaintenanceReadRepository) GetByID(ctx context.Context, itemID uuid.UUID) (*models.MaintenanceItemDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM maintenance_items WHERE item_id = $1 AND is_active`, maintenanceColumns)

	var item models.MaintenanceItemDB
	err := r.db.GetContext(ctx, &item, query, itemID)

	logger.Log.Debugw("maintenance query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// List returns a page of active maintenance items matching the filter,
// ordered by due date, together with the total match count.
func (r *MaintenanceReadRepository) List(ctx context.Context, filter models.MaintenanceFilter, page models.Page) ([]models.MaintenanceItemDB, int, error) {
	where := []string{"is_active"}
	args := []any{}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.OverdueOnly {
		where = append(where, "next_due_date IS NOT NULL AND next_due_date < CURRENT_DATE")
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM maintenance_items WHERE %s`, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Debugw("maintenance query", "query", countQuery, "error", err)
		return nil, 0, err
	}

	args = append(args, page.PerPage, page.Offset())
	listQuery := fmt.Sprintf(
		`SELECT %s FROM maintenance_items WHERE %s ORDER BY next_due_date NULLS LAST, name LIMIT $%d OFFSET $%d`,
		maintenanceColumns, whereClause, len(args)-1, len(args),
	)

	items := make([]models.MaintenanceItemDB, 0)
	err := r.db.SelectContext(ctx, &items, listQuery, args...)

	logger.Log.Debugw("maintenance query",
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", args,
		"rows", len(items),
		"error", err,
	)

	return items, total, err
}

// ListUpcoming returns the next scheduled items ordered by due date.
func (r *MaintenanceReadRepository) ListUpcoming(ctx context.Context, limit int) ([]models.MaintenanceItemDB, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM maintenance_items
		WHERE is_active AND next_due_date IS NOT NULL
		ORDER BY next_due_date
		LIMIT $1
	`, maintenanceColumns)

	items := make([]models.MaintenanceItemDB, 0)
	err := r.db.SelectContext(ctx, &items, query, limit)

	logger.Log.Debugw("maintenance query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"rows", len(items),
		"error", err,
	)

	return items, err
}

// ListHistory returns completion records for an item, newest first.
func (r *MaintenanceReadRepository) ListHistory(ctx context.Context, itemID uuid.UUID) ([]models.MaintenanceHistoryDB, error) {
	const query = `
		SELECT history_id, item_id, completion_date, actual_cost, provider_id,
		       service_provider, work_performed, quality_rating, satisfaction_rating,
		       follow_up_required, follow_up_notes, notes, completed_by, created_at
		FROM maintenance_history
		WHERE item_id = $1
		ORDER BY completion_date DESC
	`

	records := make([]models.MaintenanceHistoryDB, 0)
	err := r.db.SelectContext(ctx, &records, query, itemID)

	logger.Log.Debugw("maintenance history query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID},
		"rows", len(records),
		"error", err,
	)

	return records, err
}

// MaintenanceWriteRepository handles maintenance write operations
type MaintenanceWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMaintenanceWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MaintenanceWriteRepository {
	return &MaintenanceWriteRepository{db: db, txGetter: txGetter}
}

func (r *MaintenanceWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new maintenance item and returns its id.
func (r *MaintenanceWriteRepository) Save(ctx context.Context, item *models.MaintenanceItemDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO maintenance_items (
			name, description, category, location, frequency_months, next_due_date,
			priority, status, is_recurring, estimated_cost, notes, created_by,
			assigned_to, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING item_id
	`
	args := []any{
		item.Name, item.Description, item.Category, item.Location,
		item.FrequencyMonths, item.NextDueDate, item.Priority, item.Status,
		item.IsRecurring, item.EstimatedCost, item.Notes, item.CreatedBy,
		item.AssignedTo,
	}

	var itemID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &itemID, query, args...)

	logger.Log.Debugw("maintenance insert",
		"query", strings.Join(strings.Fields(query), " "),
		"name", item.Name,
		"category", item.Category,
		"error", err,
	)

	return itemID, err
}

// Update overwrites the mutable fields of an item.
func (r *MaintenanceWriteRepository) Update(ctx context.Context, item *models.MaintenanceItemDB) error {
	const query = `
		UPDATE maintenance_items
		SET name = $2, description = $3, category = $4, location = $5,
		    frequency_months = $6, next_due_date = $7, priority = $8, status = $9,
		    is_recurring = $10, estimated_cost = $11, notes = $12, assigned_to = $13,
		    updated_at = NOW()
		WHERE item_id = $1 AND is_active
	`
	args := []any{
		item.ItemID, item.Name, item.Description, item.Category, item.Location,
		item.FrequencyMonths, item.NextDueDate, item.Priority, item.Status,
		item.IsRecurring, item.EstimatedCost, item.Notes, item.AssignedTo,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Debugw("maintenance update",
		"query", strings.Join(strings.Fields(query), " "),
		"item_id", item.ItemID,
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

// SoftDelete marks an item inactive.
func (r *MaintenanceWriteRepository) SoftDelete(ctx context.Context, itemID uuid.UUID) error {
	const query = `UPDATE maintenance_items SET is_active = FALSE, updated_at = NOW() WHERE item_id = $1 AND is_active`

	res, err := r.executor(ctx).ExecContext(ctx, query, itemID)

	logger.Log.Debugw("maintenance delete",
		"query", query,
		"args", []any{itemID},
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

// SaveCompletion records a completion in the history table and updates the
// item's schedule in one statement pair. The guarded item update runs first
// so a missing or soft-deleted item returns ErrNotFound before any history
// row is written. Callers run it inside the request transaction so both
// writes commit together.
func (r *MaintenanceWriteRepository) SaveCompletion(
	ctx context.Context,
	record *models.MaintenanceHistoryDB,
	status string,
	nextDueDate *time.Time,
	lastCompleted time.Time,
) error {
	ex := r.executor(ctx)

	const itemQuery = `
		UPDATE maintenance_items
		SET status = $2, next_due_date = $3, last_completed_date = $4,
		    actual_cost = $5, updated_at = NOW()
		WHERE item_id = $1 AND is_active
	`
	res, err := ex.ExecContext(ctx, itemQuery,
		record.ItemID, status, nextDueDate, lastCompleted, record.ActualCost,
	)

	logger.Log.Debugw("maintenance update",
		"item_id", record.ItemID,
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

	const historyQuery = `
		INSERT INTO maintenance_history (
			item_id, completion_date, actual_cost, provider_id, service_provider,
			work_performed, quality_rating, satisfaction_rating,
			follow_up_required, follow_up_notes, notes, completed_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
	`
	_, err = ex.ExecContext(ctx, historyQuery,
		record.ItemID, record.CompletionDate, record.ActualCost,
		record.ProviderID, record.ServiceProvider, record.WorkPerformed,
		record.QualityRating, record.SatisfactionRating,
		record.FollowUpRequired, record.FollowUpNotes, record.Notes, record.CompletedBy,
	)

	logger.Log.Debugw("maintenance history insert",
		"item_id", record.ItemID,
		"completion_date", record.CompletionDate,
		"error", err,
	)

	return err
}
