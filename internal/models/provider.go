package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceProviderDB represents a contractor or service company row in the database
type ServiceProviderDB struct {
	ProviderID  uuid.UUID `json:"provider_id" db:"provider_id"`   // Primary key
	Name        string    `json:"name" db:"name"`                 // Contact or company name
	Company     *string   `json:"company" db:"company"`           // Business name when distinct from the contact
	Specialty   string    `json:"specialty" db:"specialty"`       // Plumbing, HVAC, Electrical, etc.
	Phone       *string   `json:"phone" db:"phone"`               // Contact phone
	Email       *string   `json:"email" db:"email"`               // Contact email
	Address     *string   `json:"address" db:"address"`           // Business address
	HourlyRate  *float64  `json:"hourly_rate" db:"hourly_rate"`   // Charged rate per hour
	Rating      *float64  `json:"rating" db:"rating"`             // Average rating, 0-5
	IsPreferred bool      `json:"is_preferred" db:"is_preferred"` // Preferred provider flag
	Notes       *string   `json:"notes" db:"notes"`               // Free-form notes
	IsActive    bool      `json:"is_active" db:"is_active"`       // Soft-delete flag
	CreatedBy   uuid.UUID `json:"created_by" db:"created_by"`     // User who added the provider
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
