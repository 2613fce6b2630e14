package services

import (
	"context"
	"time"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/repositories"
)

// DashboardReader runs the aggregate queries behind the dashboard.
type DashboardReader interface {
	GetMaintenanceCounts(ctx context.Context) (*repositories.MaintenanceCounts, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
	CountByPriority(ctx context.Context) (map[string]int, error)
	CountLowStock(ctx context.Context) (int, error)
}

// DashboardMaintenanceReader lists soon-due maintenance items.
type DashboardMaintenanceReader interface {
	ListUpcoming(ctx context.Context, limit int) ([]models.MaintenanceItemDB, error)
}

// DashboardTaskReader counts open and overdue tasks.
type DashboardTaskReader interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountOverdue(ctx context.Context) (int, error)
}

// DashboardExpenseReader sums unpaid bills.
type DashboardExpenseReader interface {
	UnpaidTotal(ctx context.Context) (float64, error)
}

// DashboardCache stores computed summaries between requests.
type DashboardCache interface {
	GetSummary(ctx context.Context) (*models.DashboardSummary, error)
	SetSummary(ctx context.Context, summary *models.DashboardSummary) error
}

// upcomingLimit caps the upcoming maintenance list on the dashboard.
const upcomingLimit = 10

// DashboardService assembles the household dashboard summary.
type DashboardService struct {
	reader      DashboardReader
	maintenance DashboardMaintenanceReader
	tasks       DashboardTaskReader
	expenses    DashboardExpenseReader
	cache       DashboardCache
	now         func() time.Time
}

// NewDashboardService creates a new DashboardService. cache may be nil, in
// which case every request recomputes the summary.
func NewDashboardService(
	reader DashboardReader,
	maintenance DashboardMaintenanceReader,
	tasks DashboardTaskReader,
	expenses DashboardExpenseReader,
	cache DashboardCache,
) *DashboardService {
	return &DashboardService{
		reader:      reader,
		maintenance: maintenance,
		tasks:       tasks,
		expenses:    expenses,
		cache:       cache,
		now:         time.Now,
	}
}

// Summary returns the dashboard summary, serving a cached copy when one is
// fresh. Cache failures are logged and fall through to recomputation.
func (svc *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	if svc.cache != nil {
		if summary, err := svc.cache.GetSummary(ctx); err == nil {
			return summary, nil
		}
	}

	summary, err := svc.build(ctx)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetSummary(ctx, summary); err != nil {
			logger.Log.Warnw("failed to cache dashboard summary", "err", err)
		}
	}

	return summary, nil
}

func (svc *DashboardService) build(ctx context.Context) (*models.DashboardSummary, error) {
	counts, err := svc.reader.GetMaintenanceCounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get maintenance counts", "err", err)
		return nil, err
	}

	byCategory, err := svc.reader.CountByCategory(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count by category", "err", err)
		return nil, err
	}

	byPriority, err := svc.reader.CountByPriority(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count by priority", "err", err)
		return nil, err
	}

	lowStock, err := svc.reader.CountLowStock(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count low stock", "err", err)
		return nil, err
	}

	taskCounts, err := svc.tasks.CountByStatus(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count tasks", "err", err)
		return nil, err
	}

	tasksOverdue, err := svc.tasks.CountOverdue(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count overdue tasks", "err", err)
		return nil, err
	}

	unpaidTotal, err := svc.expenses.UnpaidTotal(ctx)
	if err != nil {
		logger.Log.Errorw("failed to sum unpaid bills", "err", err)
		return nil, err
	}

	items, err := svc.maintenance.ListUpcoming(ctx, upcomingLimit)
	if err != nil {
		logger.Log.Errorw("failed to list upcoming maintenance", "err", err)
		return nil, err
	}

	now := svc.now()
	upcoming := make([]models.UpcomingItem, 0, len(items))
	for _, item := range items {
		if item.NextDueDate == nil {
			continue
		}
		upcoming = append(upcoming, models.UpcomingItem{
			ItemID:       item.ItemID,
			Name:         item.Name,
			Category:     item.Category,
			Location:     item.Location,
			NextDueDate:  *item.NextDueDate,
			DaysUntilDue: item.DaysUntilDue(now),
			Overdue:      item.IsOverdue(now),
		})
	}

	return &models.DashboardSummary{
		GeneratedAt:        now,
		MaintenanceTotal:   counts.Total,
		MaintenanceOverdue: counts.Overdue,
		MaintenanceDueSoon: counts.DueSoon,
		CompletedThisMonth: counts.CompletedThisMonth,
		ByCategory:         byCategory,
		ByPriority:         byPriority,
		TasksPending:       taskCounts[models.StatusPending] + taskCounts[models.StatusInProgress],
		TasksOverdue:       tasksOverdue,
		UnpaidBillsTotal:   unpaidTotal,
		LowStockCount:      lowStock,
		Upcoming:           upcoming,
	}, nil
}
