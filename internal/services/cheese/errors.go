package cheese

import "errors"

// Validation errors
var (
	ErrEmptyName       = errors.New("cheese name cannot be empty")
	ErrNameTooLong     = errors.New("cheese name cannot exceed 255 characters")
	ErrInvalidCheeseID = errors.New("invalid cheese ID")
	ErrInvalidPage     = errors.New("invalid page: must be >= 1")
	ErrInvalidPageSize = errors.New("invalid page size: must be >= 1")
)
