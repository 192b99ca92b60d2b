package user

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("user already exists")
)

// User is the domain entity. PasswordHash holds the bcrypt hash and never
// crosses the HTTP boundary.
type User struct {
	ID           int64  `json:"id"`
	UserName     string `json:"user_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

// Filter narrows a user query. Zero-value fields are ignored, set fields
// match by equality.
type Filter struct {
	UserName string
	Email    string
}

func (f Filter) IsEmpty() bool {
	return f.UserName == "" && f.Email == ""
}

type Store interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Query(ctx context.Context, f Filter) ([]User, error)
	Add(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, u *User) (*User, error)
	DeleteByID(ctx context.Context, id int64) (*User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

const (
	EventRegistered = "user.registered"
	EventUpdated    = "user.updated"
	EventDeleted    = "user.deleted"
)

type Event struct {
	Kind   string    `json:"event"`
	UserID int64     `json:"user_id"`
	At     time.Time `json:"at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}
