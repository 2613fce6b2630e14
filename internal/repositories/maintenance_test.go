package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evstratovd/home-manager/internal/models"
)

func TestMaintenanceRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMaintenanceWriteRepository(db, nil)
	readRepo := NewMaintenanceReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	frequency := 3
	dueDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	itemID, err := writeRepo.Save(ctx, &models.MaintenanceItemDB{
		Name:            "Replace HVAC filter",
		Category:        "HVAC",
		FrequencyMonths: &frequency,
		NextDueDate:     &dueDate,
		Priority:        models.PriorityMedium,
		Status:          models.StatusPending,
		IsRecurring:     true,
		CreatedBy:       userID,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, itemID)

	item, err := readRepo.GetByID(ctx, itemID)
	assert.NoError(t, err)
	assert.Equal(t, "Replace HVAC filter", item.Name)
	assert.Equal(t, "HVAC", item.Category)
	assert.Equal(t, &frequency, item.FrequencyMonths)
	assert.True(t, item.IsRecurring)
	assert.True(t, item.IsActive)
	assert.NotNil(t, item.NextDueDate)
	assert.Equal(t, dueDate, item.NextDueDate.UTC())

	_, err = readRepo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMaintenanceReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMaintenanceWriteRepository(db, nil)
	readRepo := NewMaintenanceReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	overdue := time.Now().AddDate(0, 0, -10)
	future := time.Now().AddDate(0, 1, 0)

	save := func(name, category string, due *time.Time) {
		_, err := writeRepo.Save(ctx, &models.MaintenanceItemDB{
			Name:        name,
			Category:    category,
			NextDueDate: due,
			Priority:    models.PriorityMedium,
			Status:      models.StatusPending,
			CreatedBy:   userID,
		})
		assert.NoError(t, err)
	}

	save("Clean gutters", "Exterior", &overdue)
	save("Flush water heater", "Plumbing", &future)
	save("Test smoke detectors", "Safety", nil)

	t.Run("All", func(t *testing.T) {
		items, total, err := readRepo.List(ctx, models.MaintenanceFilter{}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, items, 3)
		// due-date order, nil dates last
		assert.Equal(t, "Clean gutters", items[0].Name)
		assert.Equal(t, "Test smoke detectors", items[2].Name)
	})

	t.Run("ByCategory", func(t *testing.T) {
		category := "Plumbing"
		items, total, err := readRepo.List(ctx, models.MaintenanceFilter{Category: &category}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Flush water heater", items[0].Name)
	})

	t.Run("OverdueOnly", func(t *testing.T) {
		items, total, err := readRepo.List(ctx, models.MaintenanceFilter{OverdueOnly: true}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Clean gutters", items[0].Name)
	})

	t.Run("Paged", func(t *testing.T) {
		items, total, err := readRepo.List(ctx, models.MaintenanceFilter{}, models.NewPage(2, 2))
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, items, 1)
	})
}

func TestMaintenanceReadRepository_ListUpcoming(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMaintenanceWriteRepository(db, nil)
	readRepo := NewMaintenanceReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	for i, name := range []string{"First", "Second", "Third"} {
		due := time.Now().AddDate(0, 0, i+1)
		_, err := writeRepo.Save(ctx, &models.MaintenanceItemDB{
			Name:        name,
			Category:    "HVAC",
			NextDueDate: &due,
			Priority:    models.PriorityMedium,
			Status:      models.StatusPending,
			CreatedBy:   userID,
		})
		assert.NoError(t, err)
	}

	items, err := readRepo.ListUpcoming(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Name)
	assert.Equal(t, "Second", items[1].Name)
}

func TestMaintenanceWriteRepository_SaveCompletion(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMaintenanceWriteRepository(db, nil)
	readRepo := NewMaintenanceReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	frequency := 6
	itemID, err := writeRepo.Save(ctx, &models.MaintenanceItemDB{
		Name:            "Service boiler",
		Category:        "HVAC",
		FrequencyMonths: &frequency,
		Priority:        models.PriorityHigh,
		Status:          models.StatusPending,
		IsRecurring:     true,
		CreatedBy:       userID,
	})
	assert.NoError(t, err)

	providerID, err := NewProviderWriteRepository(db, nil).Save(ctx, &models.ServiceProviderDB{
		Name:      "HeatCo",
		Specialty: "HVAC",
		CreatedBy: userID,
	})
	assert.NoError(t, err)

	cost := 150.0
	provider := "HeatCo"
	quality := 5
	satisfaction := 4
	followUp := "Replace expansion vessel next visit"
	completed := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	nextDue := completed.AddDate(0, frequency, 0)

	err = writeRepo.SaveCompletion(ctx, &models.MaintenanceHistoryDB{
		ItemID:             itemID,
		CompletionDate:     completed,
		ActualCost:         &cost,
		ProviderID:         &providerID,
		ServiceProvider:    &provider,
		QualityRating:      &quality,
		SatisfactionRating: &satisfaction,
		FollowUpRequired:   true,
		FollowUpNotes:      &followUp,
		CompletedBy:        userID,
	}, models.StatusPending, &nextDue, completed)
	assert.NoError(t, err)

	item, err := readRepo.GetByID(ctx, itemID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, item.Status)
	assert.NotNil(t, item.NextDueDate)
	assert.Equal(t, nextDue, item.NextDueDate.UTC())
	assert.NotNil(t, item.LastCompletedDate)
	assert.Equal(t, &cost, item.ActualCost)

	history, err := readRepo.ListHistory(ctx, itemID)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, &providerID, history[0].ProviderID)
	assert.Equal(t, &provider, history[0].ServiceProvider)
	assert.Equal(t, &quality, history[0].QualityRating)
	assert.Equal(t, &satisfaction, history[0].SatisfactionRating)
	assert.True(t, history[0].FollowUpRequired)
	assert.Equal(t, &followUp, history[0].FollowUpNotes)
	assert.Equal(t, userID, history[0].CompletedBy)
}

func TestMaintenanceWriteRepository_SaveCompletionDeletedItem(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMaintenanceWriteRepository(db, nil)
	readRepo := NewMaintenanceReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	itemID, err := writeRepo.Save(ctx, &models.MaintenanceItemDB{
		Name:      "Flush water heater",
		Category:  "Plumbing",
		Priority:  models.PriorityMedium,
		Status:    models.StatusPending,
		CreatedBy: userID,
	})
	assert.NoError(t, err)

	assert.NoError(t, writeRepo.SoftDelete(ctx, itemID))

	completed := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	err = writeRepo.SaveCompletion(ctx, &models.MaintenanceHistoryDB{
		ItemID:         itemID,
		CompletionDate: completed,
		CompletedBy:    userID,
	}, models.StatusCompleted, nil, completed)
	assert.ErrorIs(t, err, ErrNotFound)

	// no orphan history row is left behind
	history, err := readRepo.ListHistory(ctx, itemID)
	assert.NoError(t, err)
	assert.Empty(t, history)
}

func TestMaintenanceWriteRepository_SoftDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMaintenanceWriteRepository(db, nil)
	readRepo := NewMaintenanceReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	itemID, err := writeRepo.Save(ctx, &models.MaintenanceItemDB{
		Name:      "Clean chimney",
		Category:  "Safety",
		Priority:  models.PriorityMedium,
		Status:    models.StatusPending,
		CreatedBy: userID,
	})
	assert.NoError(t, err)

	assert.NoError(t, writeRepo.SoftDelete(ctx, itemID))

	_, err = readRepo.GetByID(ctx, itemID)
	assert.ErrorIs(t, err, ErrNotFound)

	// second delete finds nothing
	assert.ErrorIs(t, writeRepo.SoftDelete(ctx, itemID), ErrNotFound)
}
