package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/repositories"
)

// MaintenanceReader defines read operations for maintenance items.
type MaintenanceReader interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*models.MaintenanceItemDB, error)
	List(ctx context.Context, filter models.MaintenanceFilter, page models.Page) ([]models.MaintenanceItemDB, int, error)
	ListHistory(ctx context.Context, itemID uuid.UUID) ([]models.MaintenanceHistoryDB, error)
}

// MaintenanceWriter defines write operations for maintenance items.
type MaintenanceWriter interface {
	Save(ctx context.Context, item *models.MaintenanceItemDB) (uuid.UUID, error)
	Update(ctx context.Context, item *models.MaintenanceItemDB) error
	SoftDelete(ctx context.Context, itemID uuid.UUID) error
	SaveCompletion(ctx context.Context, record *models.MaintenanceHistoryDB, status string, nextDueDate *time.Time, lastCompleted time.Time) error
}

// MaintenanceService handles maintenance scheduling and completion.
type MaintenanceService struct {
	reader   MaintenanceReader
	writer   MaintenanceWriter
	recorder ActivityRecorder
	now      func() time.Time
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(reader MaintenanceReader, writer MaintenanceWriter, recorder ActivityRecorder) *MaintenanceService {
	return &MaintenanceService{
		reader:   reader,
		writer:   writer,
		recorder: recorder,
		now:      time.Now,
	}
}

func (svc *MaintenanceService) validate(item *models.MaintenanceItemDB) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if item.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if !models.IsValidPriority(item.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, item.Priority)
	}
	if item.IsRecurring && item.FrequencyMonths != nil && *item.FrequencyMonths <= 0 {
		return fmt.Errorf("%w: frequency must be positive", ErrInvalidInput)
	}
	if item.EstimatedCost != nil && *item.EstimatedCost < 0 {
		return fmt.Errorf("%w: estimated cost must not be negative", ErrInvalidInput)
	}
	return nil
}

// Create validates and stores a new maintenance item.
func (svc *MaintenanceService) Create(ctx context.Context, item *models.MaintenanceItemDB) (uuid.UUID, error) {
	if item.Priority == "" {
		item.Priority = models.PriorityMedium
	}
	item.Status = models.StatusPending

	if err := svc.validate(item); err != nil {
		return uuid.Nil, err
	}

	itemID, err := svc.writer.Save(ctx, item)
	if err != nil {
		logger.Log.Errorw("failed to save maintenance item", "name", item.Name, "err", err)
		return uuid.Nil, err
	}

	svc.recorder.Record(ctx, item.CreatedBy, "maintenance_created", "maintenance_item", itemID)

	return itemID, nil
}

// Get returns a maintenance item by id.
func (svc *MaintenanceService) Get(ctx context.Context, itemID uuid.UUID) (*models.MaintenanceItemDB, error) {
	item, err := svc.reader.GetByID(ctx, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get maintenance item", "itemID", itemID, "err", err)
		return nil, err
	}
	return item, nil
}

// List returns a page of maintenance items matching the filter.
func (svc *MaintenanceService) List(ctx context.Context, filter models.MaintenanceFilter, page models.Page) (*models.PagedResult[models.MaintenanceItemDB], error) {
	items, total, err := svc.reader.List(ctx, filter, page)
	if err != nil {
		logger.Log.Errorw("failed to list maintenance items", "err", err)
		return nil, err
	}

	result := models.NewPagedResult(items, total, page)
	return &result, nil
}

// Update validates and overwrites an existing maintenance item.
func (svc *MaintenanceService) Update(ctx context.Context, userID uuid.UUID, item *models.MaintenanceItemDB) error {
	if !models.IsValidStatus(item.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, item.Status)
	}
	if err := svc.validate(item); err != nil {
		return err
	}

	err := svc.writer.Update(ctx, item)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update maintenance item", "itemID", item.ItemID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "maintenance_updated", "maintenance_item", item.ItemID)

	return nil
}

// Delete marks a maintenance item inactive.
func (svc *MaintenanceService) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	err := svc.writer.SoftDelete(ctx, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete maintenance item", "itemID", itemID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "maintenance_deleted", "maintenance_item", itemID)

	return nil
}

// Complete records a completion for an item. Recurring items roll forward to
// their next occurrence and reset to pending; one-shot items become completed.
// Completing an already-completed one-shot item fails with ErrAlreadyCompleted.
func (svc *MaintenanceService) Complete(ctx context.Context, record *models.MaintenanceHistoryDB) (*models.MaintenanceItemDB, error) {
	item, err := svc.reader.GetByID(ctx, record.ItemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get maintenance item", "itemID", record.ItemID, "err", err)
		return nil, err
	}

	if !item.IsRecurring && item.Status == models.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	if record.ActualCost != nil && *record.ActualCost < 0 {
		return nil, fmt.Errorf("%w: actual cost must not be negative", ErrInvalidInput)
	}
	if record.QualityRating != nil && (*record.QualityRating < 1 || *record.QualityRating > 5) {
		return nil, fmt.Errorf("%w: quality rating must be between 1 and 5", ErrInvalidInput)
	}
	if record.SatisfactionRating != nil && (*record.SatisfactionRating < 1 || *record.SatisfactionRating > 5) {
		return nil, fmt.Errorf("%w: satisfaction rating must be between 1 and 5", ErrInvalidInput)
	}

	if record.CompletionDate.IsZero() {
		record.CompletionDate = svc.now()
	}

	status := models.StatusCompleted
	var nextDue *time.Time
	if item.IsRecurring {
		status = models.StatusPending
		next := item.NextOccurrence(record.CompletionDate)
		nextDue = &next
	}

	if err := svc.writer.SaveCompletion(ctx, record, status, nextDue, record.CompletionDate); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to save completion", "itemID", record.ItemID, "err", err)
		return nil, err
	}

	item.Status = status
	item.NextDueDate = nextDue
	item.LastCompletedDate = &record.CompletionDate
	item.ActualCost = record.ActualCost

	svc.recorder.Record(ctx, record.CompletedBy, "maintenance_completed", "maintenance_item", item.ItemID)

	return item, nil
}

// History returns the completion records of an item, newest first.
func (svc *MaintenanceService) History(ctx context.Context, itemID uuid.UUID) ([]models.MaintenanceHistoryDB, error) {
	if _, err := svc.Get(ctx, itemID); err != nil {
		return nil, err
	}

	records, err := svc.reader.ListHistory(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to list maintenance history", "itemID", itemID, "err", err)
		return nil, err
	}
	return records, nil
}
