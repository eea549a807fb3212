package storage

import (
	"context"

	"github.com/poiesic/diarit/core"
)

// ContextRepository provides per-user storage for diary context records.
// Implementations must be thread-safe and support concurrent access.
type ContextRepository interface {
	// GetOrSeed retrieves all context records for a user.
	// A user that has never been seen before is first seeded with the demo
	// corpus, so the returned slice is never empty. Seeding happens at most
	// once per user, even under concurrent access.
	// Records are ordered by insertion.
	GetOrSeed(ctx context.Context, userID string) ([]*core.ContextRecord, error)

	// Append adds one or more context records to a user's history.
	// For records with an empty Id, generates new IDs.
	// Sets InsertedAt timestamp if not already set.
	// Returns ErrDuplicateKey if a record's Id already exists for the user.
	// Returns the records with generated IDs and timestamps populated.
	Append(ctx context.Context, userID string, records ...*core.ContextRecord) ([]*core.ContextRecord, error)

	// Update replaces existing context records for a user, matched by Id.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	Update(ctx context.Context, userID string, records ...*core.ContextRecord) error

	// Get retrieves a single context record by ID.
	// Returns ErrNotFound if the record doesn't exist for the user.
	Get(ctx context.Context, userID string, id core.ID) (*core.ContextRecord, error)

	// Users lists the IDs of all users with stored context.
	Users(ctx context.Context) ([]string, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
