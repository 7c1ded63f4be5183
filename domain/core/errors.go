package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound     = errors.New("resource not found")
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// Registry errors
	ErrUserExists = errors.New("user already exists")

	// Workbook errors. The format message is returned to clients verbatim.
	ErrUnknownFormat = errors.New("Excel file format cannot be determined, you must specify an engine manually.")
	ErrNoSheets      = errors.New("workbook contains no worksheets")
)

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflictError(err error) bool {
	return errors.Is(err, ErrUserExists)
}
