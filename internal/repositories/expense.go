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

const expenseColumns = `
	expense_id, title, description, category, amount, expense_date, due_date,
	is_paid, paid_date, is_recurring, recurrence_months, vendor, created_by,
	created_at, updated_at
`

func expenseClauses(f models.ExpenseFilter) ([]string, []any) {
	where := []string{"TRUE"}
	args := []any{}

	if f.Category != nil {
		args = append(args, *f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.IsPaid != nil {
		args = append(args, *f.IsPaid)
		where = append(where, fmt.Sprintf("is_paid = $%d", len(args)))
	}
	if f.FromDate != nil {
		args = append(args, *f.FromDate)
		where = append(where, fmt.Sprintf("expense_date >= $%d", len(args)))
	}
	if f.ToDate != nil {
		args = append(args, *f.ToDate)
		where = append(where, fmt.Sprintf("expense_date <= $%d", len(args)))
	}

	return where, args
}

// ExpenseReadRepository handles expense read operations
type ExpenseReadRepository struct {
	db *sqlx.DB
}

func NewExpenseReadRepository(db *sqlx.DB) *ExpenseReadRepository {
	return &ExpenseReadRepository{db: db}
}

// GetByID returns an expense by id or ErrNotFound.
func (r *ExpenseReadRepository) GetByID(ctx context.Context, expenseID uuid.UUID) (*models.ExpenseDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE expense_id = $1`, expenseColumns)

	var expense models.ExpenseDB
	err := r.db.GetContext(ctx, &expense, query, expenseID)

	logger.Log.Debugw("expense query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{expenseID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &expense, nil
}

// List returns a page of expenses matching the filter, newest first, together
// with the total match count.
func (r *ExpenseReadRepository) List(ctx context.Context, filter models.ExpenseFilter, page models.Page) ([]models.ExpenseDB, int, error) {
	where, args := expenseClauses(filter)
	whereClause := strings.Join(where, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM expenses WHERE %s`, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Debugw("expense query", "query", countQuery, "error", err)
		return nil, 0, err
	}

	args = append(args, page.PerPage, page.Offset())
	listQuery := fmt.Sprintf(
		`SELECT %s FROM expenses WHERE %s ORDER BY expense_date DESC, title LIMIT $%d OFFSET $%d`,
		expenseColumns, whereClause, len(args)-1, len(args),
	)

	expenses := make([]models.ExpenseDB, 0)
	err := r.db.SelectContext(ctx, &expenses, listQuery, args...)

	logger.Log.Debugw("expense query",
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", args,
		"rows", len(expenses),
		"error", err,
	)

	return expenses, total, err
}

// ListAll returns every expense matching the filter without pagination.
// Used by the CSV export.
func (r *ExpenseReadRepository) ListAll(ctx context.Context, filter models.ExpenseFilter) ([]models.ExpenseDB, error) {
	where, args := expenseClauses(filter)
	query := fmt.Sprintf(
		`SELECT %s FROM expenses WHERE %s ORDER BY expense_date DESC, title`,
		expenseColumns, strings.Join(where, " AND "),
	)

	expenses := make([]models.ExpenseDB, 0)
	err := r.db.SelectContext(ctx, &expenses, query, args...)

	logger.Log.Debugw("expense query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(expenses),
		"error", err,
	)

	return expenses, err
}

// Summary aggregates expense totals per category and per month for a date range.
func (r *ExpenseReadRepository) Summary(ctx context.Context, from, to time.Time) (*models.ExpenseSummary, error) {
	const categoryQuery = `
		SELECT category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM expenses
		WHERE expense_date >= $1 AND expense_date <= $2
		GROUP BY category
		ORDER BY total DESC
	`

	byCategory := make([]models.CategoryTotal, 0)
	if err := r.db.SelectContext(ctx, &byCategory, categoryQuery, from, to); err != nil {
		logger.Log.Debugw("expense summary query", "query", categoryQuery, "error", err)
		return nil, err
	}

	const monthQuery = `
		SELECT TO_CHAR(expense_date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0) AS total
		FROM expenses
		WHERE expense_date >= $1 AND expense_date <= $2
		GROUP BY month
		ORDER BY month
	`

	byMonth := make([]models.MonthTotal, 0)
	if err := r.db.SelectContext(ctx, &byMonth, monthQuery, from, to); err != nil {
		logger.Log.Debugw("expense summary query", "query", monthQuery, "error", err)
		return nil, err
	}

	var total float64
	for _, c := range byCategory {
		total += c.Total
	}

	logger.Log.Debugw("expense summary",
		"from", from,
		"to", to,
		"categories", len(byCategory),
		"months", len(byMonth),
		"total", total,
	)

	return &models.ExpenseSummary{
		Total:      total,
		ByCategory: byCategory,
		ByMonth:    byMonth,
	}, nil
}

// UnpaidTotal returns the sum of unpaid bill amounts.
func (r *ExpenseReadRepository) UnpaidTotal(ctx context.Context) (float64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE NOT is_paid`

	var total float64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Debugw("expense query", "query", query, "total", total, "error", err)

	return total, err
}

// ExpenseWriteRepository handles expense write operations
type ExpenseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExpenseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExpenseWriteRepository {
	return &ExpenseWriteRepository{db: db, txGetter: txGetter}
}

func (r *ExpenseWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new expense and returns its id.
func (r *ExpenseWriteRepository) Save(ctx context.Context, expense *models.ExpenseDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO expenses (
			title, description, category, amount, expense_date, due_date,
			is_recurring, recurrence_months, vendor, created_by,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING expense_id
	`
	args := []any{
		expense.Title, expense.Description, expense.Category, expense.Amount,
		expense.ExpenseDate, expense.DueDate, expense.IsRecurring,
		expense.RecurrenceMonths, expense.Vendor, expense.CreatedBy,
	}

	var expenseID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &expenseID, query, args...)

	logger.Log.Debugw("expense insert",
		"query", strings.Join(strings.Fields(query), " "),
		"title", expense.Title,
		"amount", expense.Amount,
		"error", err,
	)

	return expenseID, err
}

// Update overwrites the mutable fields of an expense.
func (r *ExpenseWriteRepository) Update(ctx context.Context, expense *models.ExpenseDB) error {
	const query = `
		UPDATE expenses
		SET title = $2, description = $3, category = $4, amount = $5,
		    expense_date = $6, due_date = $7, is_recurring = $8,
		    recurrence_months = $9, vendor = $10, updated_at = NOW()
		WHERE expense_id = $1
	`
	args := []any{
		expense.ExpenseID, expense.Title, expense.Description, expense.Category,
		expense.Amount, expense.ExpenseDate, expense.DueDate,
		expense.IsRecurring, expense.RecurrenceMonths, expense.Vendor,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Debugw("expense update",
		"query", strings.Join(strings.Fields(query), " "),
		"expense_id", expense.ExpenseID,
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

// MarkPaid stamps an expense as paid and rolls recurring bills forward.
func (r *ExpenseWriteRepository) MarkPaid(ctx context.Context, expenseID uuid.UUID, paidDate time.Time, nextDueDate *time.Time) error {
	const query = `
		UPDATE expenses
		SET is_paid = ($3::DATE IS NULL), paid_date = $2, due_date = COALESCE($3, due_date),
		    updated_at = NOW()
		WHERE expense_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, expenseID, paidDate, nextDueDate)

	logger.Log.Debugw("expense pay",
		"query", strings.Join(strings.Fields(query), " "),
		"expense_id", expenseID,
		"paid_date", paidDate,
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

// Delete removes an expense permanently.
func (r *ExpenseWriteRepository) Delete(ctx context.Context, expenseID uuid.UUID) error {
	const query = `DELETE FROM expenses WHERE expense_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, expenseID)

	logger.Log.Debugw("expense delete",
		"query", query,
		"args", []any{expenseID},
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
