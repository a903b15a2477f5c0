package model

import "errors"

// Common errors used across the application
var (
	// Driver errors
	ErrDriverNotFound = errors.New("driver not found")

	// Penalty errors
	ErrInvalidPoints   = errors.New("points must be a positive integer")
	ErrPenaltyNotFound = errors.New("penalty entry not found")

	// Ban errors
	ErrInvalidBanKind = errors.New("ban kind must be 'quali' or 'race'")
	ErrBanNotFound    = errors.New("ban not found")

	// Steward errors
	ErrStewardNotFound = errors.New("steward not found")
)
