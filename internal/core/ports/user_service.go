package ports

import (
	"context"

	"github.com/clockwise/timetracker/internal/core/domain"
)

// UserSummary is the lightweight user view used by the admin user selector.
type UserSummary struct {
	ID       string
	FullName string
	Role     domain.Role
}

// UserService defines the user-facing operations this service owns: reading
// the current user and maintaining the preferred working-hours threshold.
type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// SetPreferredHours updates the actor's own threshold. Requires rank at
	// least Manager.
	SetPreferredHours(ctx context.Context, actor domain.Actor, hours int) error
	// SearchUsers returns users matching query. Admin only.
	SearchUsers(ctx context.Context, actor domain.Actor, query string) ([]UserSummary, error)
}
