package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceFilter narrows maintenance item listings.
type MaintenanceFilter struct {
	Category    *string // Match exact category
	Status      *string // Match exact status
	OverdueOnly bool    // Only items past their due date
}

// InventoryFilter narrows inventory listings.
type InventoryFilter struct {
	Category *string // Match exact category
	Location *string // Match exact location
	Search   *string // Case-insensitive substring match on name
}

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	Category *string    // Match exact category
	IsPaid   *bool      // Match paid or unpaid bills
	FromDate *time.Time // Inclusive lower bound on expense_date
	ToDate   *time.Time // Inclusive upper bound on expense_date
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	Status      *string    // Match exact status
	AssignedTo  *uuid.UUID // Match assignee
	OverdueOnly bool       // Only open tasks past their due date
}

// ProviderFilter narrows service provider listings.
type ProviderFilter struct {
	Specialty     *string // Match exact specialty
	PreferredOnly bool    // Only preferred providers
	Search        *string // Case-insensitive substring match on name or company
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Category *string // Match exact category
	Search   *string // Case-insensitive substring match on name
}
