package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bbroker-app/bbroker_backend/internal/apperrors"
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	portsrepo "github.com/bbroker-app/bbroker_backend/internal/core/ports/repositories"
	portssvc "github.com/bbroker-app/bbroker_backend/internal/core/ports/services"
	"github.com/bbroker-app/bbroker_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/shopspring/decimal"
)

const (
	minBusinessNameLen = 2
	minDescriptionLen  = 10
	maxDescriptionLen  = 500
)

// businessService implements onboarding and discovery for business profiles.
type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	walletSvc    portssvc.WalletSvcFacade
}

// NewBusinessService creates a new business service. The wallet service is
// used to grant the one-time setup reward after onboarding.
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, walletSvc portssvc.WalletSvcFacade) portssvc.BusinessSvcFacade {
	return &businessService{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		walletSvc:    walletSvc,
	}
}

var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// validateSetupRequest applies the onboarding business rules in a fixed
// order so the first failing field is the one reported.
func validateSetupRequest(req *dto.BusinessSetupRequest) error {
	// Limits are in characters, not bytes, so multibyte input counts runes.
	if utf8.RuneCountInString(strings.TrimSpace(req.BusinessName)) < minBusinessNameLen {
		return fmt.Errorf("%w: businessName must be at least %d characters", apperrors.ErrValidation, minBusinessNameLen)
	}

	desc := strings.TrimSpace(req.Description)
	if descLen := utf8.RuneCountInString(desc); descLen < minDescriptionLen || descLen > maxDescriptionLen {
		return fmt.Errorf("%w: description must be between %d and %d characters", apperrors.ErrValidation, minDescriptionLen, maxDescriptionLen)
	}

	if req.Location == nil || req.Location.Latitude == 0 && req.Location.Longitude == 0 && req.Location.Address == "" {
		return fmt.Errorf("%w: location with coordinates and address is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Location.Address) == "" {
		return fmt.Errorf("%w: location address is required", apperrors.ErrValidation)
	}

	if req.WorkingHours == nil {
		return fmt.Errorf("%w: workingHours is required", apperrors.ErrValidation)
	}

	if !domain.IsValidCategory(req.MainCategory) {
		return fmt.Errorf("%w: mainCategory %q is not a known category", apperrors.ErrValidation, req.MainCategory)
	}

	seen := map[string]bool{req.MainCategory: true}
	for _, affiliate := range []*string{req.AffiliateCategory1, req.AffiliateCategory2, req.AffiliateCategory3} {
		if affiliate == nil {
			continue
		}
		if !domain.IsValidCategory(*affiliate) {
			return fmt.Errorf("%w: affiliate category %q is not a known category", apperrors.ErrValidation, *affiliate)
		}
		if seen[*affiliate] {
			return fmt.Errorf("%w: affiliate category %q duplicates another selected category", apperrors.ErrValidation, *affiliate)
		}
		seen[*affiliate] = true
	}

	if !domain.TargetMarket(req.TargetMarket).IsValid() {
		return fmt.Errorf("%w: targetMarket %q is not a known market tier", apperrors.ErrValidation, req.TargetMarket)
	}

	if len(req.TargetAgeRanges) == 0 {
		return fmt.Errorf("%w: at least one target age range is required", apperrors.ErrValidation)
	}
	for _, ageRange := range req.TargetAgeRanges {
		if !domain.IsValidAgeRange(ageRange) {
			return fmt.Errorf("%w: target age range %q is not a known bracket", apperrors.ErrValidation, ageRange)
		}
	}

	return nil
}

// CreateBusinessProfile validates the setup wizard input, persists the new
// profile atomically with the owner's persona flip, and grants the one-time
// setup reward. The reward is best-effort: a failed credit is logged and
// reported as a zero reward, never as a failed onboarding.
func (s *businessService) CreateBusinessProfile(ctx context.Context, userID string, req dto.BusinessSetupRequest) (*domain.Business, decimal.Decimal, error) {
	if err := validateSetupRequest(&req); err != nil {
		return nil, decimal.Zero, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to load user for business setup", slog.String("user_id", userID))
		}
		return nil, decimal.Zero, err
	}
	if user.HasBusinessProfile {
		return nil, decimal.Zero, fmt.Errorf("%w: user %s already has a business profile", apperrors.ErrDuplicate, userID)
	}

	now := time.Now().UTC()
	business := domain.Business{
		BusinessID:         uuid.NewString(),
		UserID:             userID,
		BusinessName:       strings.TrimSpace(req.BusinessName),
		Description:        strings.TrimSpace(req.Description),
		Location:           *req.Location,
		WorkingHours:       *req.WorkingHours,
		MainCategory:       req.MainCategory,
		AffiliateCategory1: req.AffiliateCategory1,
		AffiliateCategory2: req.AffiliateCategory2,
		AffiliateCategory3: req.AffiliateCategory3,
		TargetMarket:       domain.TargetMarket(req.TargetMarket),
		TargetAgeRanges:    req.TargetAgeRanges,
		Rating:             decimal.Zero,
		Status:             domain.BusinessStatusPendingVerification,
		IsVerified:         false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// The unique index on businesses.user_id makes this race-safe even when
	// two setup requests pass the flag check above concurrently.
	if err := s.businessRepo.CreateBusinessForUser(ctx, business); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "failed to persist business profile", slog.String("user_id", userID))
		}
		return nil, decimal.Zero, err
	}

	s.LogInfo(ctx, "business profile created",
		slog.String("user_id", userID),
		slog.String("business_id", business.BusinessID))

	reward := domain.BusinessSetupReward
	if _, err := s.walletSvc.Credit(ctx, userID, reward, domain.TokenTxnEarn, domain.BusinessSetupRewardDescription); err != nil {
		s.LogError(ctx, err, "failed to credit business setup reward",
			slog.String("user_id", userID),
			slog.String("business_id", business.BusinessID))
		reward = decimal.Zero
	}

	return &business, reward, nil
}

// GetBusinessByID retrieves a single business profile.
func (s *businessService) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to load business", slog.String("business_id", businessID))
		}
		return nil, err
	}
	return business, nil
}

// ListBusinesses lists business profiles, optionally filtered to a radius (km)
// around a coordinate.
func (s *businessService) ListBusinesses(ctx context.Context, params dto.ListBusinessesParams) ([]domain.Business, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	businesses, err := s.businessRepo.ListBusinesses(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "failed to list businesses")
		return nil, err
	}

	if params.Latitude == nil || params.Longitude == nil || params.Radius == nil {
		return businesses, nil
	}

	center := orb.Point{*params.Longitude, *params.Latitude}
	radiusMeters := *params.Radius * 1000

	filtered := make([]domain.Business, 0, len(businesses))
	for _, b := range businesses {
		point := orb.Point{b.Location.Longitude, b.Location.Latitude}
		if geo.DistanceHaversine(center, point) <= radiusMeters {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}
