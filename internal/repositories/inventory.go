package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
)

const inventoryColumns = `
	item_id, name, description, category, location, quantity, min_quantity,
	unit_price, purchase_date, warranty_expiry, is_active, created_by,
	created_at, updated_at
`

// InventoryReadRepository handles inventory read operations
type InventoryReadRepository struct {
	db *sqlx.DB
}

func NewInventoryReadRepository(db *sqlx.DB) *InventoryReadRepository {
	return &InventoryReadRepository{db: db}
}

// GetByID returns an active inventory item by id or ErrNotFound.
func (r *InventoryReadRepository) GetByID(ctx context.Context, itemID uuid.UUID) (*models.InventoryItemDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM inventory_items WHERE item_id = $1 AND is_active`, inventoryColumns)

	var item models.InventoryItemDB
	err := r.db.GetContext(ctx, &item, query, itemID)

	logger.Log.Debugw("inventory query",
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

// List returns a page of active inventory items matching the filter together
// with the total match count.
func (r *InventoryReadRepository) List(ctx context.Context, filter models.InventoryFilter, page models.Page) ([]models.InventoryItemDB, int, error) {
	where := []string{"is_active"}
	args := []any{}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Location != nil {
		args = append(args, *filter.Location)
		where = append(where, fmt.Sprintf("location = $%d", len(args)))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM inventory_items WHERE %s`, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Debugw("inventory query", "query", countQuery, "error", err)
		return nil, 0, err
	}

	args = append(args, page.PerPage, page.Offset())
	listQuery := fmt.Sprintf(
		`SELECT %s FROM inventory_items WHERE %s ORDER BY name LIMIT $%d OFFSET $%d`,
		inventoryColumns, whereClause, len(args)-1, len(args),
	)

	items := make([]models.InventoryItemDB, 0)
	err := r.db.SelectContext(ctx, &items, listQuery, args...)

	logger.Log.Debugw("inventory query",
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", args,
		"rows", len(items),
		"error", err,
	)

	return items, total, err
}

// ListLowStock returns active items at or below their low-stock threshold.
func (r *InventoryReadRepository) ListLowStock(ctx context.Context) ([]models.InventoryItemDB, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM inventory_items
		WHERE is_active AND quantity <= min_quantity
		ORDER BY name
	`, inventoryColumns)

	items := make([]models.InventoryItemDB, 0)
	err := r.db.SelectContext(ctx, &items, query)

	logger.Log.Debugw("inventory query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(items),
		"error", err,
	)

	return items, err
}

// InventoryWriteRepository handles inventory write operations
type InventoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInventoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InventoryWriteRepository {
	return &InventoryWriteRepository{db: db, txGetter: txGetter}
}

func (r *InventoryWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new inventory item and returns its id.
func (r *InventoryWriteRepository) Save(ctx context.Context, item *models.InventoryItemDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO inventory_items (
			name, description, category, location, quantity, min_quantity,
			unit_price, purchase_date, warranty_expiry, created_by,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING item_id
	`
	args := []any{
		item.Name, item.Description, item.Category, item.Location,
		item.Quantity, item.MinQuantity, item.UnitPrice,
		item.PurchaseDate, item.WarrantyExpiry, item.CreatedBy,
	}

	var itemID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &itemID, query, args...)

	logger.Log.Debugw("inventory insert",
		"query", strings.Join(strings.Fields(query), " "),
		"name", item.Name,
		"category", item.Category,
		"error", err,
	)

	return itemID, err
}

// Update overwrites the mutable fields of an item.
func (r *InventoryWriteRepository) Update(ctx context.Context, item *models.InventoryItemDB) error {
	const query = `
		UPDATE inventory_items
		SET name = $2, description = $3, category = $4, location = $5,
		    min_quantity = $6, unit_price = $7, purchase_date = $8,
		    warranty_expiry = $9, updated_at = NOW()
		WHERE item_id = $1 AND is_active
	`
	args := []any{
		item.ItemID, item.Name, item.Description, item.Category, item.Location,
		item.MinQuantity, item.UnitPrice, item.PurchaseDate, item.WarrantyExpiry,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Debugw("inventory update",
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

// AdjustQuantity applies a delta to an item's quantity and returns the new
// value. The guard in the WHERE clause refuses adjustments that would take
// the quantity below zero; those surface as ErrNotFound to the caller, which
// distinguishes them by re-reading the row.
func (r *InventoryWriteRepository) AdjustQuantity(ctx context.Context, itemID uuid.UUID, delta int) (int, error) {
	const query = `
		UPDATE inventory_items
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE item_id = $1 AND is_active AND quantity + $2 >= 0
		RETURNING quantity
	`

	var quantity int
	err := sqlx.GetContext(ctx, r.executor(ctx), &quantity, query, itemID, delta)

	logger.Log.Debugw("inventory adjust",
		"query", strings.Join(strings.Fields(query), " "),
		"item_id", itemID,
		"delta", delta,
		"quantity", quantity,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return quantity, err
}

// SoftDelete marks an item inactive.
func (r *InventoryWriteRepository) SoftDelete(ctx context.Context, itemID uuid.UUID) error {
	const query = `UPDATE inventory_items SET is_active = FALSE, updated_at = NOW() WHERE item_id = $1 AND is_active`

	res, err := r.executor(ctx).ExecContext(ctx, query, itemID)

	logger.Log.Debugw("inventory delete",
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
