package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clockwise/timetracker/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// mongoUser is the storage shape of a user document. The role is stored in
// its wire form and parsed into the rank enum on the way out.
type mongoUser struct {
	ID                    string `bson:"_id"`
	FirstName             string `bson:"first_name"`
	LastName              string `bson:"last_name"`
	Email                 string `bson:"email,omitempty"`
	Role                  string `bson:"role"`
	PreferredWorkingHours int    `bson:"preferred_working_hours"`
	CreatedAt             int64  `bson:"created_at"`
	UpdatedAt             int64  `bson:"updated_at"`
}

func (mu *mongoUser) toDomain() (*domain.User, error) {
	role, err := domain.ParseRole(mu.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", mu.ID, err)
	}
	return &domain.User{
		ID:                    mu.ID,
		FirstName:             mu.FirstName,
		LastName:              mu.LastName,
		Email:                 mu.Email,
		Role:                  role,
		PreferredWorkingHours: mu.PreferredWorkingHours,
		CreatedAt:             unixToTime(mu.CreatedAt),
		UpdatedAt:             unixToTime(mu.UpdatedAt),
	}, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain()
}

// Search matches users by partial, case-insensitive first or last name.
func (r *UserRepository) Search(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if query != "" {
		rx := primitive.Regex{Pattern: query, Options: "i"}
		filter["$or"] = []bson.M{
			{"first_name": rx},
			{"last_name": rx},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer cur.Close(ctx)

	var raw []mongoUser
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	users := make([]*domain.User, 0, len(raw))
	for i := range raw {
		u, err := raw[i].toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) UpdatePreferredHours(ctx context.Context, id string, hours int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"preferred_working_hours": hours,
			"updated_at":              time.Now().UTC().Unix(),
		},
	})
	if err != nil {
		return fmt.Errorf("update preferred hours: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
