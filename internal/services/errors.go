package services

import "errors"

// Errors shared across services.
var (
	ErrNotFound             = errors.New("record not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAlreadyCompleted     = errors.New("item already completed")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)
