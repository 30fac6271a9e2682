package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Cart and checkout validation, caught before any storage call.
	ErrEmptyCart       = errors.New("cart is empty")
	ErrPickupRequired  = errors.New("pickup date and time required")
	ErrPastPickup      = errors.New("pickup date is in the past")
	ErrPickupTooFar    = errors.New("pickup date is beyond the booking horizon")
	ErrSlotUnavailable = errors.New("pickup slot is not available")

	// Lifecycle.
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("transition not permitted")
)
