package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the controllers.
var (
	ErrNoStore            = errors.New("store not found")
	ErrNotFound           = errors.New("not found")
	ErrEmptyStatus        = errors.New("status is required")
	ErrForeignProduct     = errors.New("product does not belong to you")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
