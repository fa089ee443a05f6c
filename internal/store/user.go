package store

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/domain"
)

// UserStore defines the persistence operations for user accounts.
type UserStore interface {
	// Create persists a new user and sets the assigned ID and CreatedAt on
	// the given entity. The user must carry a HashedPassword; plaintext
	// passwords never reach the store.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if no such user exists.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
