package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/repositories"
	"github.com/evstratovd/home-manager/internal/services"
)

type dashboardMocks struct {
	reader      *services.MockDashboardReader
	maintenance *services.MockDashboardMaintenanceReader
	tasks       *services.MockDashboardTaskReader
	expenses    *services.MockDashboardExpenseReader
	cache       *services.MockDashboardCache
}

func newDashboardService(t *testing.T, withCache bool) (*services.DashboardService, dashboardMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := dashboardMocks{
		reader:      services.NewMockDashboardReader(ctrl),
		maintenance: services.NewMockDashboardMaintenanceReader(ctrl),
		tasks:       services.NewMockDashboardTaskReader(ctrl),
		expenses:    services.NewMockDashboardExpenseReader(ctrl),
	}

	var cache services.DashboardCache
	if withCache {
		m.cache = services.NewMockDashboardCache(ctrl)
		cache = m.cache
	}

	svc := services.NewDashboardService(m.reader, m.maintenance, m.tasks, m.expenses, cache)
	return svc, m
}

func expectBuild(m dashboardMocks) {
	dueDate := time.Now().AddDate(0, 0, 3)
	m.reader.EXPECT().GetMaintenanceCounts(gomock.Any()).Return(&repositories.MaintenanceCounts{
		Total:              12,
		Overdue:            2,
		DueSoon:            3,
		CompletedThisMonth: 4,
	}, nil)
	m.reader.EXPECT().CountByCategory(gomock.Any()).Return(map[string]int{"HVAC": 5}, nil)
	m.reader.EXPECT().CountByPriority(gomock.Any()).Return(map[string]int{"high": 2}, nil)
	m.reader.EXPECT().CountLowStock(gomock.Any()).Return(1, nil)
	m.tasks.EXPECT().CountByStatus(gomock.Any()).Return(map[string]int{
		models.StatusPending:    3,
		models.StatusInProgress: 1,
		models.StatusCompleted:  9,
	}, nil)
	m.tasks.EXPECT().CountOverdue(gomock.Any()).Return(2, nil)
	m.expenses.EXPECT().UnpaidTotal(gomock.Any()).Return(340.75, nil)
	m.maintenance.EXPECT().ListUpcoming(gomock.Any(), 10).Return([]models.MaintenanceItemDB{
		{ItemID: uuid.New(), Name: "HVAC filter", Category: "HVAC", NextDueDate: &dueDate},
		{ItemID: uuid.New(), Name: "No due date"},
	}, nil)
}

func TestDashboardService_Summary_NoCache(t *testing.T) {
	svc, m := newDashboardService(t, false)
	expectBuild(m)

	summary, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 12, summary.MaintenanceTotal)
	assert.Equal(t, 2, summary.MaintenanceOverdue)
	assert.Equal(t, 3, summary.MaintenanceDueSoon)
	assert.Equal(t, 4, summary.CompletedThisMonth)
	assert.Equal(t, 4, summary.TasksPending)
	assert.Equal(t, 2, summary.TasksOverdue)
	assert.Equal(t, 340.75, summary.UnpaidBillsTotal)
	assert.Equal(t, 1, summary.LowStockCount)
	assert.Len(t, summary.Upcoming, 1)
	assert.False(t, summary.Upcoming[0].Overdue)
}

func TestDashboardService_Summary_CacheHit(t *testing.T) {
	svc, m := newDashboardService(t, true)

	cached := &models.DashboardSummary{MaintenanceTotal: 7}
	m.cache.EXPECT().GetSummary(gomock.Any()).Return(cached, nil)

	summary, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, summary)
}

func TestDashboardService_Summary_CacheMissRecomputesAndStores(t *testing.T) {
	svc, m := newDashboardService(t, true)

	m.cache.EXPECT().GetSummary(gomock.Any()).Return(nil, errors.New("cache miss"))
	expectBuild(m)
	m.cache.EXPECT().SetSummary(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 12, summary.MaintenanceTotal)
}

func TestDashboardService_Summary_CacheStoreFailureIsNotFatal(t *testing.T) {
	svc, m := newDashboardService(t, true)

	m.cache.EXPECT().GetSummary(gomock.Any()).Return(nil, errors.New("cache miss"))
	expectBuild(m)
	m.cache.EXPECT().SetSummary(gomock.Any(), gomock.Any()).Return(errors.New("cache down"))

	_, err := svc.Summary(context.Background())
	assert.NoError(t, err)
}

func TestDashboardService_Summary_QueryError(t *testing.T) {
	svc, m := newDashboardService(t, false)

	m.reader.EXPECT().GetMaintenanceCounts(gomock.Any()).Return(nil, errors.New("db error"))

	_, err := svc.Summary(context.Background())
	assert.Error(t, err)
}
