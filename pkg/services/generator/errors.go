package generator

import "errors"

var (
	// ErrInvalidState is returned when an operation is not legal in the
	// session's current state.
	ErrInvalidState = errors.New("operation not allowed in current session state")
	// ErrListFloor is returned when removing the last repeatable row;
	// the list is left unchanged.
	ErrListFloor = errors.New("at least one row is required")
	// ErrNotFound is returned for an unknown row or session id.
	ErrNotFound = errors.New("not found")
	// ErrNotGenerated is returned when a download is requested before a
	// successful generation.
	ErrNotGenerated = errors.New("no generated content to download")
)
