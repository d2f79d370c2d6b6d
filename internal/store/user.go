package store

import (
	"context"

	"github.com/pulsard/pulsard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and assigns its ID. The user must already
	// carry a hashed password. Returns ErrUsernameExists if the username
	// is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by id.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns all users in creation order.
	List(ctx context.Context) ([]*domain.User, error)
}
