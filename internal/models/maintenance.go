package models

import (
	"time"

	"github.com/google/uuid"
)

// Item priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Item statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// IsValidPriority reports whether priority is a known priority value.
func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsValidStatus reports whether status is a known status value.
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// DueSoonDays is the window within which an item counts as due soon.
const DueSoonDays = 7

// MaintenanceItemDB represents a maintenance item row in the database
type MaintenanceItemDB struct {
	ItemID            uuid.UUID  `json:"item_id" db:"item_id"`                       // Primary key
	Name              string     `json:"name" db:"name"`                             // Item name
	Description       *string    `json:"description" db:"description"`               // Optional description
	Category          string     `json:"category" db:"category"`                     // HVAC, Plumbing, Exterior, etc.
	Location          *string    `json:"location" db:"location"`                     // Basement, Roof, etc.
	FrequencyMonths   *int       `json:"frequency_months" db:"frequency_months"`     // Recurrence interval in months
	NextDueDate       *time.Time `json:"next_due_date" db:"next_due_date"`           // Next scheduled date
	LastCompletedDate *time.Time `json:"last_completed_date" db:"last_completed_date"` // Most recent completion
	Priority          string     `json:"priority" db:"priority"`                     // low, medium, high, urgent
	Status            string     `json:"status" db:"status"`                         // pending, in_progress, completed, cancelled
	IsRecurring       bool       `json:"is_recurring" db:"is_recurring"`             // Whether the item repeats
	IsActive          bool       `json:"is_active" db:"is_active"`                   // Soft-delete flag
	EstimatedCost     *float64   `json:"estimated_cost" db:"estimated_cost"`         // Expected cost
	ActualCost        *float64   `json:"actual_cost" db:"actual_cost"`               // Cost of the last completion
	Notes             *string    `json:"notes" db:"notes"`                           // Free-form notes
	CreatedBy         uuid.UUID  `json:"created_by" db:"created_by"`                 // User who created the item
	AssignedTo        *uuid.UUID `json:"assigned_to" db:"assigned_to"`               // User responsible for the item
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`                 // Creation timestamp
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`                 // Last update timestamp
}

// IsOverdue reports whether the item's due date has passed relative to now.
func (m *MaintenanceItemDB) IsOverdue(now time.Time) bool {
	if m.NextDueDate == nil {
		return false
	}
	return truncateToDay(now).After(truncateToDay(*m.NextDueDate))
}

// DaysUntilDue returns the number of whole days until the due date.
// Negative values mean the item is overdue. Items without a due date
// return a large positive number so they sort last.
func (m *MaintenanceItemDB) DaysUntilDue(now time.Time) int {
	if m.NextDueDate == nil {
		return 1<<31 - 1
	}
	return int(truncateToDay(*m.NextDueDate).Sub(truncateToDay(now)).Hours() / 24)
}

// NextOccurrence returns the due date rolled forward by the recurrence
// interval from the given completion date.
func (m *MaintenanceItemDB) NextOccurrence(completedAt time.Time) time.Time {
	months := 1
	if m.FrequencyMonths != nil && *m.FrequencyMonths > 0 {
		months = *m.FrequencyMonths
	}
	return truncateToDay(completedAt).AddDate(0, months, 0)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MaintenanceHistoryDB represents a completed maintenance record
type MaintenanceHistoryDB struct {
	HistoryID          uuid.UUID  `json:"history_id" db:"history_id"`                   // Primary key
	ItemID             uuid.UUID  `json:"item_id" db:"item_id"`                         // Maintenance item this record belongs to
	CompletionDate     time.Time  `json:"completion_date" db:"completion_date"`         // When the work was done
	ActualCost         *float64   `json:"actual_cost" db:"actual_cost"`                 // What the work cost
	ProviderID         *uuid.UUID `json:"provider_id" db:"provider_id"`                 // Registered provider who did the work
	ServiceProvider    *string    `json:"service_provider" db:"service_provider"`       // Free-form provider name when not registered
	WorkPerformed      *string    `json:"work_performed" db:"work_performed"`           // Description of the work
	QualityRating      *int       `json:"quality_rating" db:"quality_rating"`           // Work quality, 1-5
	SatisfactionRating *int       `json:"satisfaction_rating" db:"satisfaction_rating"` // Overall satisfaction, 1-5
	FollowUpRequired   bool       `json:"follow_up_required" db:"follow_up_required"`   // Whether follow-up work is needed
	FollowUpNotes      *string    `json:"follow_up_notes" db:"follow_up_notes"`         // What the follow-up should cover
	Notes              *string    `json:"notes" db:"notes"`                             // Additional notes
	CompletedBy        uuid.UUID  `json:"completed_by" db:"completed_by"`               // User who recorded the completion
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`                   // Creation timestamp
}
