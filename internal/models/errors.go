package models

import "errors"

// Domain-specific errors shared by the repository and service layers
var (
	// ErrCheeseNotFound indicates a lookup, delete, or swap referenced a row that doesn't exist
	ErrCheeseNotFound = errors.New("cheese not found")

	// ErrAlreadyFirst indicates an attempt to move up when already at the top of the catalog
	ErrAlreadyFirst = errors.New("cheese is already at the top of the catalog")

	// ErrAlreadyLast indicates an attempt to move down when already at the bottom of the catalog
	ErrAlreadyLast = errors.New("cheese is already at the bottom of the catalog")
)
