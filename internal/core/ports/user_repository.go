package ports

import (
	"context"

	"github.com/clockwise/timetracker/internal/core/domain"
)

// UserRepository defines read and preferred-hours persistence for users.
// User records themselves are owned by the external identity system; this
// service only reads them and maintains the preferred-hours threshold.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Search matches users by (partial) name for the admin record-assignment
	// selector. Limit caps the result size.
	Search(ctx context.Context, query string, limit int) ([]*domain.User, error)
	UpdatePreferredHours(ctx context.Context, id string, hours int) error
}
