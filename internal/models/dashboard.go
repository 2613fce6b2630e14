package models

import (
	"time"

	"github.com/google/uuid"
)

// UpcomingItem is a dashboard row for soon-due maintenance.
type UpcomingItem struct {
	ItemID       uuid.UUID `json:"item_id"`        // Maintenance item id
	Name         string    `json:"name"`           // Item name
	Category     string    `json:"category"`       // Item category
	Location     *string   `json:"location"`       // Item location
	NextDueDate  time.Time `json:"next_due_date"`  // Scheduled date
	DaysUntilDue int       `json:"days_until_due"` // Negative when overdue
	Overdue      bool      `json:"overdue"`        // Whether the item is past due
}

// DashboardSummary aggregates the metrics shown on the dashboard.
type DashboardSummary struct {
	GeneratedAt        time.Time      `json:"generated_at"`         // When the summary was computed
	MaintenanceTotal   int            `json:"maintenance_total"`    // Active maintenance items
	MaintenanceOverdue int            `json:"maintenance_overdue"`  // Items past their due date
	MaintenanceDueSoon int            `json:"maintenance_due_soon"` // Items due within DueSoonDays
	CompletedThisMonth int            `json:"completed_this_month"` // Completions recorded this month
	ByCategory         map[string]int `json:"by_category"`          // Active items per category
	ByPriority         map[string]int `json:"by_priority"`          // Active items per priority
	TasksPending       int            `json:"tasks_pending"`        // Open tasks
	TasksOverdue       int            `json:"tasks_overdue"`        // Open tasks past due
	UnpaidBillsTotal   float64        `json:"unpaid_bills_total"`   // Sum of unpaid bill amounts
	LowStockCount      int            `json:"low_stock_count"`      // Inventory items at or below threshold
	Upcoming           []UpcomingItem `json:"upcoming"`             // Next scheduled maintenance
}
