package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog lookup errors
	ErrMsgContentNotFound = "content not found"
	ErrMsgLevelNotFound   = "level not found"
	ErrMsgItemNotFound    = "item not found"

	// Content type errors
	ErrMsgNotMonsterTable = "content does not support monster tables"

	// Catalog data errors
	ErrMsgNoCatalogData = "no catalog data loaded"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrContentNotFound = errors.New(ErrMsgContentNotFound)
	ErrLevelNotFound   = errors.New(ErrMsgLevelNotFound)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrNotMonsterTable = errors.New(ErrMsgNotMonsterTable)
	ErrNoCatalogData   = errors.New(ErrMsgNoCatalogData)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
