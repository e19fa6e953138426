package ports

import (
	"context"
	"time"

	"github.com/clockwise/timetracker/internal/core/domain"
)

// ListRecordsFilter carries all query parameters for listing records.
// UserID is always resolved by the service layer from the access policy
// before the filter reaches storage.
type ListRecordsFilter struct {
	UserID      string    // empty = no owner filter (admin); non-empty = scoped to that user
	From        time.Time // optional: date >= From (inclusive)
	To          time.Time // optional: date <= To (inclusive)
	Page        int       // 0-based page index
	RowsPerPage int       // page window size; <= 0 disables the window (export path)
}

// RecordRepository defines persistence operations for time records.
// Single-record writes are atomic at the record granularity; concurrent
// writes to the same id are last-write-wins.
type RecordRepository interface {
	// Insert stores a new record and returns it with its assigned id.
	Insert(ctx context.Context, r *domain.Record) (*domain.Record, error)
	// FindByID retrieves a record regardless of owner; visibility is the
	// service's concern.
	FindByID(ctx context.Context, id string) (*domain.Record, error)
	// List returns a page of records matching filter, sorted by date
	// descending with a deterministic id tie-break, plus the total count of
	// matches ignoring the pagination window.
	List(ctx context.Context, filter ListRecordsFilter) ([]*domain.Record, int64, error)
	// Replace overwrites the record with the same id.
	Replace(ctx context.Context, r *domain.Record) error
	// Delete removes a record by id.
	Delete(ctx context.Context, id string) error
}
