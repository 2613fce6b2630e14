package models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseCategories is the fixed set of expense categories.
var ExpenseCategories = []string{
	"Utilities",
	"Maintenance",
	"Improvements",
	"Insurance",
	"Property Tax",
	"Mortgage",
	"Supplies",
	"Services",
	"Emergency Repairs",
	"Other",
}

// IsValidExpenseCategory reports whether category is a known expense category.
func IsValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ExpenseDB represents a bill or expense row in the database
type ExpenseDB struct {
	ExpenseID        uuid.UUID  `json:"expense_id" db:"expense_id"`               // Primary key
	Title            string     `json:"title" db:"title"`                         // Short title
	Description      *string    `json:"description" db:"description"`             // Optional description
	Category         string     `json:"category" db:"category"`                   // One of ExpenseCategories
	Amount           float64    `json:"amount" db:"amount"`                       // Amount, always positive
	ExpenseDate      time.Time  `json:"expense_date" db:"expense_date"`           // When the expense was incurred
	DueDate          *time.Time `json:"due_date" db:"due_date"`                   // Payment due date for bills
	IsPaid           bool       `json:"is_paid" db:"is_paid"`                     // Whether the bill is paid
	PaidDate         *time.Time `json:"paid_date" db:"paid_date"`                 // When it was paid
	IsRecurring      bool       `json:"is_recurring" db:"is_recurring"`           // Whether the bill repeats
	RecurrenceMonths *int       `json:"recurrence_months" db:"recurrence_months"` // Recurrence interval in months
	Vendor           *string    `json:"vendor" db:"vendor"`                       // Who gets paid
	CreatedBy        uuid.UUID  `json:"created_by" db:"created_by"`               // User who created the expense
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`               // Last update timestamp
}

// CategoryTotal is an aggregated expense total for one category.
type CategoryTotal struct {
	Category string  `json:"category" db:"category"` // Expense category
	Total    float64 `json:"total" db:"total"`       // Sum of amounts in the category
	Count    int     `json:"count" db:"count"`       // Number of expenses in the category
}

// MonthTotal is an aggregated expense total for one calendar month.
type MonthTotal struct {
	Month string  `json:"month" db:"month"` // Month in YYYY-MM format
	Total float64 `json:"total" db:"total"` // Sum of amounts in the month
}

// ExpenseSummary groups aggregated totals for a date range.
type ExpenseSummary struct {
	Total      float64         `json:"total"`       // Grand total for the range
	ByCategory []CategoryTotal `json:"by_category"` // Totals per category
	ByMonth    []MonthTotal    `json:"by_month"`    // Totals per month
}
