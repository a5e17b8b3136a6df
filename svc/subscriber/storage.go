package subscriber

import "context"

// Storage persists subscriber records. Implementations must make
// InsertIfAbsent atomic per email through an engine-level uniqueness
// guarantee; callers never lock.
type Storage interface {
	// InsertIfAbsent stores rec unless a record with the same email exists.
	// It reports whether rec was inserted. An existing record is left
	// untouched, name and creation time included.
	InsertIfAbsent(ctx context.Context, rec Record) (created bool, err error)

	// FindByEmail returns ErrNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (Record, error)
}
