package domain

import (
	"errors"
	"time"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidQuery = errors.New("invalid query parameters")
var ErrUnknownRole = errors.New("unknown role")

// Record is a single logged block of working time. A record belongs to
// exactly one user; ownership changes only when an admin reassigns it.
type Record struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Date      time.Time `json:"date" bson:"date"`
	Hour      int       `json:"hour" bson:"hour"`
	Note      []string  `json:"note" bson:"note"`
	UserID    string    `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// User models an authenticated actor in the system. Users are referenced by
// records, never owned by them.
type User struct {
	ID                    string    `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Email                 string    `json:"email,omitempty"`
	Role                  Role      `json:"role"`
	PreferredWorkingHours int       `json:"preferred_working_hours"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// FullName returns the display name derived from first/last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
