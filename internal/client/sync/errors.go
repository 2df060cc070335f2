package sync

import "errors"

var (
	// ErrFailedOperationNotFound indicates that the graveyard has no entry with the given id
	ErrFailedOperationNotFound = errors.New("failed operation not found")

	// ErrInvalidOperation indicates that an operation was rejected before enqueue
	ErrInvalidOperation = errors.New("invalid operation")
)
