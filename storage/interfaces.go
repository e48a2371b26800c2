package storage

import (
	"context"

	"github.com/poiesic/faqit/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close releases the repository's resources.
	Close() error
}

// EntryRepository stores the FAQ corpus of every locale. Entries of a locale
// are kept in insertion order, which is the order knowledge bases are
// built in.
type EntryRepository interface {
	Repository

	// AddEntries appends entries after the existing entries of their locale.
	// Entries are normalized and validated first. IDs are content-based, so
	// an entry whose question already exists in its locale fails with
	// ErrDuplicateKey and nothing is stored.
	// Returns the entries with IDs and timestamps populated.
	AddEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error)

	// UpdateEntries replaces stored entries in place, keeping their position.
	// Returns ErrNotFound if any entry doesn't exist.
	UpdateEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error)

	// DeleteEntries removes entries by ID.
	// Returns ErrNotFound if any entry doesn't exist.
	DeleteEntries(ctx context.Context, ids ...core.ID) error

	// GetEntry retrieves a single entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id core.ID) (*core.Entry, error)

	// ListEntries returns the entries of a locale in insertion order.
	ListEntries(ctx context.Context, locale core.Locale) ([]*core.Entry, error)

	// CountEntries returns the number of entries of a locale.
	CountEntries(ctx context.Context, locale core.Locale) (int, error)

	// ReplaceEntries atomically swaps the whole corpus of a locale.
	ReplaceEntries(ctx context.Context, locale core.Locale, entries ...*core.Entry) ([]*core.Entry, error)
}
