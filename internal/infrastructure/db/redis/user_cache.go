package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/clockwise/timetracker/internal/core/domain"
	"github.com/clockwise/timetracker/internal/core/ports"
)

const userCacheTTL = 10 * time.Minute

// CachedUserRepository is a read-through cache over a UserRepository.
// Compliance annotation of an admin listing looks up the preferred working
// hours of every distinct record owner on the page; this keeps those lookups
// off MongoDB. Preferred-hours writes invalidate the cached document.
//
// Cache failures degrade to the inner repository; they are logged, never
// surfaced.
type CachedUserRepository struct {
	inner  ports.UserRepository
	client *redis.Client
	log    zerolog.Logger
}

func NewCachedUserRepository(inner ports.UserRepository, client *redis.Client, log zerolog.Logger) *CachedUserRepository {
	return &CachedUserRepository{inner: inner, client: client, log: log}
}

func (r *CachedUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	key := r.key(id)

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var u domain.User
		if err := json.Unmarshal(raw, &u); err == nil {
			return &u, nil
		}
		// Unreadable entry: drop it and fall through to the source of truth.
		_ = r.client.Del(ctx, key).Err()
	} else if err != redis.Nil {
		r.log.Warn().Err(err).Str("user_id", id).Msg("user cache read failed")
	}

	u, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(u); err == nil {
		if err := r.client.Set(ctx, key, raw, userCacheTTL).Err(); err != nil {
			r.log.Warn().Err(err).Str("user_id", id).Msg("user cache write failed")
		}
	}
	return u, nil
}

// Search always goes to the source of truth; result sets are not cached.
func (r *CachedUserRepository) Search(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	return r.inner.Search(ctx, query, limit)
}

// UpdatePreferredHours writes through and invalidates the cached user so the
// next compliance annotation sees the new threshold.
func (r *CachedUserRepository) UpdatePreferredHours(ctx context.Context, id string, hours int) error {
	if err := r.inner.UpdatePreferredHours(ctx, id, hours); err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.log.Warn().Err(err).Str("user_id", id).Msg("user cache invalidation failed")
	}
	return nil
}

func (r *CachedUserRepository) key(id string) string {
	return fmt.Sprintf("user:%s", id)
}
