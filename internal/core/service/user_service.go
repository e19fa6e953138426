package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clockwise/timetracker/internal/core/domain"
	"github.com/clockwise/timetracker/internal/core/ports"
)

const searchLimit = 20

type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// SetPreferredHours updates the actor's own compliance threshold. The
// original system surfaces this control for rank at least Manager only.
func (s *UserService) SetPreferredHours(ctx context.Context, actor domain.Actor, hours int) error {
	if !actor.Role.AtLeast(domain.RoleManager) {
		return domain.ErrForbidden
	}
	if hours < 1 || hours > 24 {
		return &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "preferred_working_hours", Message: "Hour should be between 1 and 24."},
		}}
	}

	if err := s.users.UpdatePreferredHours(ctx, actor.ID, hours); err != nil {
		s.logger.Error().Err(err).Str("user_id", actor.ID).Msg("failed to update preferred hours")
		return fmt.Errorf("set preferred hours: %w", err)
	}

	s.logger.Info().Str("user_id", actor.ID).Int("hours", hours).Msg("preferred working hours updated")
	return nil
}

// SearchUsers backs the admin record-assignment selector.
func (s *UserService) SearchUsers(ctx context.Context, actor domain.Actor, query string) ([]ports.UserSummary, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	summaries := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, ports.UserSummary{
			ID:       u.ID,
			FullName: u.FullName(),
			Role:     u.Role,
		})
	}
	return summaries, nil
}
