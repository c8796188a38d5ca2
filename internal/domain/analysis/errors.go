package analysis

import "errors"

var (
	// ErrNotFound is returned when no analysis matches the lookup.
	ErrNotFound = errors.New("analysis not found")
	// ErrInvalidReport means the generated object failed schema validation.
	ErrInvalidReport = errors.New("generated report does not match schema")
)
