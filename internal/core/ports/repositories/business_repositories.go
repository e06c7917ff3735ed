package repositories

import (
	"context"
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
)

// BusinessReader defines read operations for business profiles.
type BusinessReader interface {
	// FindBusinessByID retrieves a business profile by its unique identifier.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// FindBusinessByUserID retrieves the business profile owned by a user, if any.
	FindBusinessByUserID(ctx context.Context, userID string) (*domain.Business, error)

	// ListBusinesses retrieves a paginated list of business profiles.
	ListBusinesses(ctx context.Context, limit int, offset int) ([]domain.Business, error)
}

// BusinessWriter defines write operations for business profiles.
type BusinessWriter interface {
	// CreateBusinessForUser inserts the business profile and, in the same
	// database transaction, marks the owning user as having a business
	// profile with the business persona active. Returns
	// apperrors.ErrDuplicate when the user already owns a profile (enforced
	// by a unique index, so concurrent attempts are race-safe).
	CreateBusinessForUser(ctx context.Context, business domain.Business) error

	// TouchLastActive refreshes the business's last_active_at timestamp.
	TouchLastActive(ctx context.Context, businessID string, now time.Time) error
}

// BusinessRepositoryFacade combines all business-related repository interfaces.
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}
