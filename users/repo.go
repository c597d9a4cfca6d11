package users

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repo lookups when no user matches.
var ErrNotFound = errors.New("user not found")

// UserRepo is the user-lookup collaborator consumed by the auth core. Any
// connection pooling or caching lives entirely behind this interface.
type UserRepo interface {
	Insert(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
