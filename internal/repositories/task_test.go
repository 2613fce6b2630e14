package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evstratovd/home-manager/internal/models"
)

func TestTaskRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")
	helperID := createTestUser(t, db, "helper")

	dueDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	location := "Backyard"

	taskID, err := writeRepo.Save(ctx, &models.TaskDB{
		Title:      "Mow the lawn",
		Category:   models.TaskCategoryGardening,
		Priority:   models.PriorityMedium,
		Status:     models.StatusPending,
		AssignedTo: &helperID,
		CreatedBy:  userID,
		DueDate:    &dueDate,
		Location:   &location,
	})
	assert.NoError(t, err)

	task, err := readRepo.GetByID(ctx, taskID)
	assert.NoError(t, err)
	assert.Equal(t, "Mow the lawn", task.Title)
	assert.Equal(t, models.TaskCategoryGardening, task.Category)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, &helperID, task.AssignedTo)
	assert.Equal(t, &location, task.Location)
	assert.NotNil(t, task.DueDate)
	assert.Equal(t, dueDate, task.DueDate.UTC())
	assert.True(t, task.IsActive)

	_, err = readRepo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")
	helperID := createTestUser(t, db, "helper")

	pastDue := time.Now().AddDate(0, 0, -3)
	futureDue := time.Now().AddDate(0, 0, 14)

	save := func(title, status string, assignee *uuid.UUID, due *time.Time) {
		_, err := writeRepo.Save(ctx, &models.TaskDB{
			Title:      title,
			Category:   models.TaskCategoryCleaning,
			Priority:   models.PriorityLow,
			Status:     status,
			AssignedTo: assignee,
			CreatedBy:  userID,
			DueDate:    due,
		})
		assert.NoError(t, err)
	}

	save("Vacuum living room", models.StatusPending, &helperID, &futureDue)
	save("Clean gutters", models.StatusInProgress, nil, &pastDue)
	save("Wash windows", models.StatusCompleted, &helperID, &pastDue)

	t.Run("All", func(t *testing.T) {
		tasks, total, err := readRepo.List(ctx, models.TaskFilter{}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, tasks, 3)
	})

	t.Run("ByStatus", func(t *testing.T) {
		status := models.StatusPending
		tasks, total, err := readRepo.List(ctx, models.TaskFilter{Status: &status}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Vacuum living room", tasks[0].Title)
	})

	t.Run("ByAssignee", func(t *testing.T) {
		tasks, total, err := readRepo.List(ctx, models.TaskFilter{AssignedTo: &helperID}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, tasks, 2)
	})

	t.Run("OverdueOnly", func(t *testing.T) {
		tasks, total, err := readRepo.List(ctx, models.TaskFilter{OverdueOnly: true}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Clean gutters", tasks[0].Title)
	})
}

func TestTaskReadRepository_Counts(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	pastDue := time.Now().AddDate(0, 0, -2)

	save := func(title, status string, due *time.Time) {
		_, err := writeRepo.Save(ctx, &models.TaskDB{
			Title:     title,
			Category:  models.TaskCategoryShopping,
			Priority:  models.PriorityMedium,
			Status:    status,
			CreatedBy: userID,
			DueDate:   due,
		})
		assert.NoError(t, err)
	}

	save("Buy groceries", models.StatusPending, &pastDue)
	save("Order filters", models.StatusPending, nil)
	save("Pick up paint", models.StatusInProgress, &pastDue)
	save("Return drill", models.StatusCompleted, &pastDue)

	counts, err := readRepo.CountByStatus(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, counts[models.StatusPending])
	assert.Equal(t, 1, counts[models.StatusInProgress])
	assert.Equal(t, 1, counts[models.StatusCompleted])

	overdue, err := readRepo.CountOverdue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, overdue)
}

func TestTaskWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	taskID, err := writeRepo.Save(ctx, &models.TaskDB{
		Title:     "Fix fence",
		Category:  models.TaskCategoryMaintenance,
		Priority:  models.PriorityLow,
		Status:    models.StatusPending,
		CreatedBy: userID,
	})
	assert.NoError(t, err)

	notes := "Need new posts from the hardware store"
	err = writeRepo.Update(ctx, &models.TaskDB{
		TaskID:   taskID,
		Title:    "Fix back fence",
		Category: models.TaskCategoryMaintenance,
		Priority: models.PriorityHigh,
		Status:   models.StatusInProgress,
		Notes:    &notes,
	})
	assert.NoError(t, err)

	task, err := readRepo.GetByID(ctx, taskID)
	assert.NoError(t, err)
	assert.Equal(t, "Fix back fence", task.Title)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, models.StatusInProgress, task.Status)
	assert.Equal(t, &notes, task.Notes)

	err = writeRepo.Update(ctx, &models.TaskDB{TaskID: uuid.New(), Title: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskWriteRepository_Assign(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")
	helperID := createTestUser(t, db, "helper")

	taskID, err := writeRepo.Save(ctx, &models.TaskDB{
		Title:     "Water plants",
		Category:  models.TaskCategoryGardening,
		Priority:  models.PriorityLow,
		Status:    models.StatusPending,
		CreatedBy: userID,
	})
	assert.NoError(t, err)

	err = writeRepo.Assign(ctx, taskID, helperID)
	assert.NoError(t, err)

	task, err := readRepo.GetByID(ctx, taskID)
	assert.NoError(t, err)
	assert.Equal(t, &helperID, task.AssignedTo)

	err = writeRepo.Assign(ctx, uuid.New(), helperID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskWriteRepository_Complete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	t.Run("OneShot", func(t *testing.T) {
		taskID, err := writeRepo.Save(ctx, &models.TaskDB{
			Title:     "Change smoke alarm battery",
			Category:  models.TaskCategoryMaintenance,
			Priority:  models.PriorityHigh,
			Status:    models.StatusPending,
			CreatedBy: userID,
		})
		assert.NoError(t, err)

		completed := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		err = writeRepo.Complete(ctx, taskID, models.StatusCompleted, completed, nil)
		assert.NoError(t, err)

		task, err := readRepo.GetByID(ctx, taskID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, task.Status)
		assert.NotNil(t, task.CompletedDate)
		assert.Equal(t, completed, task.CompletedDate.UTC())
	})

	t.Run("RecurringRollsForward", func(t *testing.T) {
		months := 3
		dueDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		taskID, err := writeRepo.Save(ctx, &models.TaskDB{
			Title:            "Deep clean kitchen",
			Category:         models.TaskCategoryCleaning,
			Priority:         models.PriorityMedium,
			Status:           models.StatusPending,
			CreatedBy:        userID,
			DueDate:          &dueDate,
			IsRecurring:      true,
			RecurrenceMonths: &months,
		})
		assert.NoError(t, err)

		completed := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		nextDue := completed.AddDate(0, months, 0)
		err = writeRepo.Complete(ctx, taskID, models.StatusPending, completed, &nextDue)
		assert.NoError(t, err)

		task, err := readRepo.GetByID(ctx, taskID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, task.Status)
		assert.NotNil(t, task.DueDate)
		assert.Equal(t, nextDue, task.DueDate.UTC())
	})

	t.Run("UnknownTask", func(t *testing.T) {
		err := writeRepo.Complete(ctx, uuid.New(), models.StatusCompleted, time.Now(), nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskRepository_Comments(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")
	helperID := createTestUser(t, db, "helper")

	taskID, err := writeRepo.Save(ctx, &models.TaskDB{
		Title:     "Paint the shed",
		Category:  models.TaskCategoryMaintenance,
		Priority:  models.PriorityLow,
		Status:    models.StatusPending,
		CreatedBy: userID,
	})
	assert.NoError(t, err)

	firstID, err := writeRepo.SaveComment(ctx, &models.TaskCommentDB{
		TaskID:   taskID,
		AuthorID: userID,
		Comment:  "Primer is in the garage",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, firstID)

	_, err = writeRepo.SaveComment(ctx, &models.TaskCommentDB{
		TaskID:   taskID,
		AuthorID: helperID,
		Comment:  "Starting this weekend",
	})
	assert.NoError(t, err)

	comments, err := readRepo.ListComments(ctx, taskID)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "Primer is in the garage", comments[0].Comment)
	assert.Equal(t, userID, comments[0].AuthorID)
	assert.Equal(t, "Starting this weekend", comments[1].Comment)

	empty, err := readRepo.ListComments(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTaskWriteRepository_SoftDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db, nil)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	taskID, err := writeRepo.Save(ctx, &models.TaskDB{
		Title:     "Organize garage",
		Category:  models.TaskCategoryOther,
		Priority:  models.PriorityLow,
		Status:    models.StatusPending,
		CreatedBy: userID,
	})
	assert.NoError(t, err)

	err = writeRepo.SoftDelete(ctx, taskID)
	assert.NoError(t, err)

	_, err = readRepo.GetByID(ctx, taskID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = writeRepo.SoftDelete(ctx, taskID)
	assert.ErrorIs(t, err, ErrNotFound)
}
