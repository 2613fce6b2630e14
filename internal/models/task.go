package models

import (
	"time"

	"github.com/google/uuid"
)

// Task categories
const (
	TaskCategoryCleaning    = "cleaning"
	TaskCategoryMaintenance = "maintenance"
	TaskCategoryShopping    = "shopping"
	TaskCategoryOrganizing  = "organizing"
	TaskCategoryGardening   = "gardening"
	TaskCategoryAdmin       = "admin"
	TaskCategoryOther       = "other"
)

// IsValidTaskCategory reports whether category is a known task category.
func IsValidTaskCategory(category string) bool {
	switch category {
	case TaskCategoryCleaning, TaskCategoryMaintenance, TaskCategoryShopping,
		TaskCategoryOrganizing, TaskCategoryGardening, TaskCategoryAdmin, TaskCategoryOther:
		return true
	}
	return false
}

// TaskDB represents a household task row in the database
type TaskDB struct {
	TaskID           uuid.UUID  `json:"task_id" db:"task_id"`                     // Primary key
	Title            string     `json:"title" db:"title"`                         // Short title
	Description      *string    `json:"description" db:"description"`             // Optional description
	Category         string     `json:"category" db:"category"`                   // cleaning, shopping, gardening, etc.
	Priority         string     `json:"priority" db:"priority"`                   // low, medium, high, urgent
	Status           string     `json:"status" db:"status"`                       // pending, in_progress, completed, cancelled
	AssignedTo       *uuid.UUID `json:"assigned_to" db:"assigned_to"`             // Family member responsible
	CreatedBy        uuid.UUID  `json:"created_by" db:"created_by"`               // User who created the task
	DueDate          *time.Time `json:"due_date" db:"due_date"`                   // When the task is due
	CompletedDate    *time.Time `json:"completed_date" db:"completed_date"`       // When the task was completed
	IsRecurring      bool       `json:"is_recurring" db:"is_recurring"`           // Whether the task repeats
	RecurrenceMonths *int       `json:"recurrence_months" db:"recurrence_months"` // Recurrence interval in months
	Location         *string    `json:"location" db:"location"`                   // Where the task needs to be done
	Notes            *string    `json:"notes" db:"notes"`                         // Free-form notes
	IsActive         bool       `json:"is_active" db:"is_active"`                 // Soft-delete flag
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`               // Last update timestamp
}

// IsOverdue reports whether the task is past due and still open.
func (t *TaskDB) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status == StatusCompleted || t.Status == StatusCancelled {
		return false
	}
	return truncateToDay(now).After(truncateToDay(*t.DueDate))
}

// TaskCommentDB represents a comment on a task
type TaskCommentDB struct {
	CommentID uuid.UUID `json:"comment_id" db:"comment_id"` // Primary key
	TaskID    uuid.UUID `json:"task_id" db:"task_id"`       // Task the comment belongs to
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`   // User who wrote the comment
	Comment   string    `json:"comment" db:"comment"`       // Comment text
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
