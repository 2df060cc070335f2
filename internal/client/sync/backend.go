package sync

import "context"

//go:generate moq -out backend_mock.go . Backend
//go:generate moq -out connectivity_mock.go . Connectivity

// Backend is the remote side the queue is drained against.
type Backend interface {
	// Insert creates (or upserts) a record in collection.
	Insert(ctx context.Context, collection string, payload map[string]any) error

	// UpdateByID applies payload to the record id in collection.
	UpdateByID(ctx context.Context, collection, id string, payload map[string]any) error

	// DeleteByID removes the record id from collection.
	DeleteByID(ctx context.Context, collection, id string) error
}

// Connectivity reports whether the remote backend is believed reachable.
type Connectivity interface {
	IsOnline() bool
}
