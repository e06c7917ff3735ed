package services

import (
	"context"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/bbroker-app/bbroker_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// BusinessOnboardingSvc validates and persists a new business profile.
type BusinessOnboardingSvc interface {
	// CreateBusinessProfile runs the onboarding flow for a user that does
	// not yet own a business profile: validate the wizard input, persist
	// the profile atomically with the user's persona flip, then grant the
	// one-time setup reward (best-effort; a failed credit returns a zero
	// reward, never an error).
	CreateBusinessProfile(ctx context.Context, userID string, req dto.BusinessSetupRequest) (*domain.Business, decimal.Decimal, error)
}

// BusinessReaderSvc serves the read-only discovery surface.
type BusinessReaderSvc interface {
	// GetBusinessByID retrieves a single business profile.
	GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinesses lists businesses, optionally filtered to a radius (km)
	// around a coordinate.
	ListBusinesses(ctx context.Context, params dto.ListBusinessesParams) ([]domain.Business, error)
}

// BusinessSvcFacade combines onboarding and discovery.
type BusinessSvcFacade interface {
	BusinessOnboardingSvc
	BusinessReaderSvc
}
