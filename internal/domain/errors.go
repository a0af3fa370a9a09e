package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Number errors
	ErrMsgInvalidNumber = "invalid number"

	// Tier errors
	ErrMsgTierNotFound = "tier not found"
	ErrMsgInvalidTier  = "invalid tier configuration"

	// Overflow errors
	ErrMsgInvalidOverflow = "invalid overflow parameters"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Number errors
	ErrInvalidNumber = errors.New(ErrMsgInvalidNumber)

	// Tier errors
	ErrTierNotFound = errors.New(ErrMsgTierNotFound)
	ErrInvalidTier  = errors.New(ErrMsgInvalidTier)

	// Overflow errors
	ErrInvalidOverflow = errors.New(ErrMsgInvalidOverflow)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
