package repositories

import (
	"context"
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by its unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateCurrentProfile flips the user's active persona.
	UpdateCurrentProfile(ctx context.Context, userID string, profile domain.ProfileType, now time.Time) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, userID string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
