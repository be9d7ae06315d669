// Package common defines shared constants and sentinel errors used across the
// scheduler. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration / authentication errors.
	ErrUsernameTaken      = errors.New("username taken")
	ErrWeakPassword       = errors.New("weak password")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Reservation errors.
	ErrNoCaregiverAvailable = errors.New("no caregiver available")
	ErrInsufficientDoses    = errors.New("insufficient doses")
)
