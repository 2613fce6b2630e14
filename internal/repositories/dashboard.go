package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/evstratovd/home-manager/internal/logger"
)

// DashboardReadRepository runs the aggregate queries behind the dashboard.
type DashboardReadRepository struct {
	db *sqlx.DB
}

func NewDashboardReadRepository(db *sqlx.DB) *DashboardReadRepository {
	return &DashboardReadRepository{db: db}
}

// MaintenanceCounts holds the headline maintenance metrics.
type MaintenanceCounts struct {
	Total              int `db:"total"`                // Active items
	Overdue            int `db:"overdue"`              // Items past due
	DueSoon            int `db:"due_soon"`             // Items due within a week
	CompletedThisMonth int `db:"completed_this_month"` // Completions this calendar month
}

// GetMaintenanceCounts computes the headline maintenance metrics in one query.
func (r *DashboardReadRepository) GetMaintenanceCounts(ctx context.Context) (*MaintenanceCounts, error) {
	const query = `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (
				WHERE next_due_date IS NOT NULL AND next_due_date < CURRENT_DATE
			) AS overdue,
			COUNT(*) FILTER (
				WHERE next_due_date IS NOT NULL
				  AND next_due_date >= CURRENT_DATE
				  AND next_due_date <= CURRENT_DATE + 7
			) AS due_soon,
			COUNT(*) FILTER (
				WHERE last_completed_date IS NOT NULL
				  AND DATE_TRUNC('month', last_completed_date) = DATE_TRUNC('month', CURRENT_DATE)
			) AS completed_this_month
		FROM maintenance_items
		WHERE is_active
	`

	var counts MaintenanceCounts
	err := r.db.GetContext(ctx, &counts, query)

	logger.Log.Debugw("dashboard query",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// CountByCategory returns active maintenance item counts per category.
func (r *DashboardReadRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	const query = `SELECT category AS label, COUNT(*) AS count FROM maintenance_items WHERE is_active GROUP BY category`
	return r.countBy(ctx, query)
}

// CountByPriority returns active maintenance item counts per priority.
func (r *DashboardReadRepository) CountByPriority(ctx context.Context) (map[string]int, error) {
	const query = `SELECT priority AS label, COUNT(*) AS count FROM maintenance_items WHERE is_active GROUP BY priority`
	return r.countBy(ctx, query)
}

// CountLowStock returns the number of inventory items at or below threshold.
func (r *DashboardReadRepository) CountLowStock(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM inventory_items WHERE is_active AND quantity <= min_quantity`

	var count int
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Debugw("dashboard query", "query", query, "count", count, "error", err)

	return count, err
}

func (r *DashboardReadRepository) countBy(ctx context.Context, query string) (map[string]int, error) {
	rows := []struct {
		Label string `db:"label"`
		Count int    `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Debugw("dashboard query", "query", query, "rows", len(rows), "error", err)

	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}
	return counts, nil
}
