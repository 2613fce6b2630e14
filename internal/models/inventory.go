package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItemDB represents an inventory item row in the database
type InventoryItemDB struct {
	ItemID         uuid.UUID  `json:"item_id" db:"item_id"`                 // Primary key
	Name           string     `json:"name" db:"name"`                       // Item name
	Description    *string    `json:"description" db:"description"`         // Optional description
	Category       string     `json:"category" db:"category"`               // Supplies, Tools, Appliances, etc.
	Location       *string    `json:"location" db:"location"`               // Where the item is stored
	Quantity       int        `json:"quantity" db:"quantity"`               // Current quantity, never negative
	MinQuantity    int        `json:"min_quantity" db:"min_quantity"`       // Low-stock threshold
	UnitPrice      *float64   `json:"unit_price" db:"unit_price"`           // Price per unit
	PurchaseDate   *time.Time `json:"purchase_date" db:"purchase_date"`     // When the item was bought
	WarrantyExpiry *time.Time `json:"warranty_expiry" db:"warranty_expiry"` // Warranty end date
	IsActive       bool       `json:"is_active" db:"is_active"`             // Soft-delete flag
	CreatedBy      uuid.UUID  `json:"created_by" db:"created_by"`           // User who created the item
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`           // Last update timestamp
}

// IsLowStock reports whether the item is at or below its low-stock threshold.
func (i *InventoryItemDB) IsLowStock() bool {
	return i.Quantity <= i.MinQuantity
}
