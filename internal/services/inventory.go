package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/repositories"
)

// InventoryReader defines read operations for inventory items.
type InventoryReader interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*models.InventoryItemDB, error)
	List(ctx context.Context, filter models.InventoryFilter, page models.Page) ([]models.InventoryItemDB, int, error)
	ListLowStock(ctx context.Context) ([]models.InventoryItemDB, error)
}

// InventoryWriter defines write operations for inventory items.
type InventoryWriter interface {
	Save(ctx context.Context, item *models.InventoryItemDB) (uuid.UUID, error)
	Update(ctx context.Context, item *models.InventoryItemDB) error
	AdjustQuantity(ctx context.Context, itemID uuid.UUID, delta int) (int, error)
	SoftDelete(ctx context.Context, itemID uuid.UUID) error
}

// InventoryService manages household supplies and their stock levels.
type InventoryService struct {
	reader   InventoryReader
	writer   InventoryWriter
	recorder ActivityRecorder
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(reader InventoryReader, writer InventoryWriter, recorder ActivityRecorder) *InventoryService {
	return &InventoryService{
		reader:   reader,
		writer:   writer,
		recorder: recorder,
	}
}

func (svc *InventoryService) validate(item *models.InventoryItemDB) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if item.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if item.MinQuantity < 0 {
		return fmt.Errorf("%w: minimum quantity must not be negative", ErrInvalidInput)
	}
	if item.UnitPrice != nil && *item.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price must not be negative", ErrInvalidInput)
	}
	return nil
}

// Create validates and stores a new inventory item.
func (svc *InventoryService) Create(ctx context.Context, item *models.InventoryItemDB) (uuid.UUID, error) {
	if err := svc.validate(item); err != nil {
		return uuid.Nil, err
	}

	itemID, err := svc.writer.Save(ctx, item)
	if err != nil {
		logger.Log.Errorw("failed to save inventory item", "name", item.Name, "err", err)
		return uuid.Nil, err
	}

	svc.recorder.Record(ctx, item.CreatedBy, "inventory_created", "inventory_item", itemID)

	if item.IsLowStock() {
		svc.recorder.Notify(ctx, item.CreatedBy, "low_stock", "inventory_item", itemID)
	}

	return itemID, nil
}

// Get returns an inventory item by id.
func (svc *InventoryService) Get(ctx context.Context, itemID uuid.UUID) (*models.InventoryItemDB, error) {
	item, err := svc.reader.GetByID(ctx, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get inventory item", "itemID", itemID, "err", err)
		return nil, err
	}
	return item, nil
}

// List returns a page of inventory items matching the filter.
func (svc *InventoryService) List(ctx context.Context, filter models.InventoryFilter, page models.Page) (*models.PagedResult[models.InventoryItemDB], error) {
	items, total, err := svc.reader.List(ctx, filter, page)
	if err != nil {
		logger.Log.Errorw("failed to list inventory items", "err", err)
		return nil, err
	}

	result := models.NewPagedResult(items, total, page)
	return &result, nil
}

// ListLowStock returns items at or below their minimum stock level.
func (svc *InventoryService) ListLowStock(ctx context.Context) ([]models.InventoryItemDB, error) {
	items, err := svc.reader.ListLowStock(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list low stock items", "err", err)
		return nil, err
	}
	return items, nil
}

// Update validates and overwrites an existing inventory item.
func (svc *InventoryService) Update(ctx context.Context, userID uuid.UUID, item *models.InventoryItemDB) error {
	if err := svc.validate(item); err != nil {
		return err
	}

	err := svc.writer.Update(ctx, item)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update inventory item", "itemID", item.ItemID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "inventory_updated", "inventory_item", item.ItemID)

	if item.IsLowStock() {
		svc.recorder.Notify(ctx, userID, "low_stock", "inventory_item", item.ItemID)
	}

	return nil
}

// Adjust changes an item's quantity by delta and returns the updated item.
// An adjustment that would drive the quantity negative fails with
// ErrInsufficientQuantity.
func (svc *InventoryService) Adjust(ctx context.Context, userID, itemID uuid.UUID, delta int) (*models.InventoryItemDB, error) {
	_, err := svc.writer.AdjustQuantity(ctx, itemID, delta)
	if errors.Is(err, repositories.ErrNotFound) {
		// The guarded update matches no rows both for a missing item and
		// for an adjustment below zero. Re-read to tell the cases apart.
		item, getErr := svc.reader.GetByID(ctx, itemID)
		if errors.Is(getErr, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		if getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("%w: have %d, adjusting by %d", ErrInsufficientQuantity, item.Quantity, delta)
	}
	if err != nil {
		logger.Log.Errorw("failed to adjust quantity", "itemID", itemID, "delta", delta, "err", err)
		return nil, err
	}

	item, err := svc.reader.GetByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to get inventory item", "itemID", itemID, "err", err)
		return nil, err
	}

	svc.recorder.Record(ctx, userID, "inventory_adjusted", "inventory_item", itemID)

	if item.IsLowStock() {
		svc.recorder.Notify(ctx, userID, "low_stock", "inventory_item", itemID)
	}

	return item, nil
}

// Delete marks an inventory item inactive.
func (svc *InventoryService) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	err := svc.writer.SoftDelete(ctx, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete inventory item", "itemID", itemID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "inventory_deleted", "inventory_item", itemID)

	return nil
}
