package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles, ordered from least to most privileged.
const (
	RoleGuest        = "guest"
	RoleFamilyMember = "family_member"
	RoleAdmin        = "admin"
)

// roleLevels defines the role hierarchy used for permission checks.
var roleLevels = map[string]int{
	RoleGuest:        0,
	RoleFamilyMember: 1,
	RoleAdmin:        2,
}

// IsValidRole reports whether role is a known user role.
func IsValidRole(role string) bool {
	_, ok := roleLevels[role]
	return ok
}

// HasRole reports whether userRole meets or exceeds requiredRole in the hierarchy.
func HasRole(userRole, requiredRole string) bool {
	userLevel, ok := roleLevels[userRole]
	if !ok {
		return false
	}
	requiredLevel, ok := roleLevels[requiredRole]
	if !ok {
		return false
	}
	return userLevel >= requiredLevel
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`             // Primary key
	Username     string     `json:"username" db:"username"`           // Unique username
	Email        string     `json:"email" db:"email"`                 // Unique user email
	PasswordHash string     `json:"-" db:"password_hash"`             // Hashed password
	FullName     string     `json:"full_name" db:"full_name"`         // Display name
	Role         string     `json:"role" db:"role"`                   // admin, family_member or guest
	IsActive     bool       `json:"is_active" db:"is_active"`         // Whether the account is active
	LastLogin    *time.Time `json:"last_login" db:"last_login"`       // Last successful login
	Timezone     string     `json:"timezone" db:"timezone"`           // Preferred timezone
	Theme        string     `json:"theme" db:"theme"`                 // UI theme (light, dark)
	Language     string     `json:"language" db:"language"`           // Preferred language
	EmailAlerts  bool       `json:"email_alerts" db:"email_alerts"`   // Email notifications enabled
	TaskAlerts   bool       `json:"task_alerts" db:"task_alerts"`     // Task reminder notifications enabled
	BudgetAlerts bool       `json:"budget_alerts" db:"budget_alerts"` // Budget alert notifications enabled
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
