package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that no record with the given id exists
	ErrRecordNotFound = errors.New("record not found")

	// ErrStorageUnavailable indicates that the persistence backend could not be opened
	ErrStorageUnavailable = errors.New("storage is unavailable")
)
