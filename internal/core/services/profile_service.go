package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/apperrors"
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	portsrepo "github.com/bbroker-app/bbroker_backend/internal/core/ports/repositories"
	portssvc "github.com/bbroker-app/bbroker_backend/internal/core/ports/services"
	"github.com/bbroker-app/bbroker_backend/internal/dto"
)

// profileService implements the persona reporting and switching flows.
type profileService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	businessRepo portsrepo.BusinessRepositoryFacade
}

// NewProfileService creates a new profile service.
func NewProfileService(userRepo portsrepo.UserRepositoryFacade, businessRepo portsrepo.BusinessRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{
		userRepo:     userRepo,
		businessRepo: businessRepo,
	}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

// GetProfileStatus returns the user's active persona alongside the business
// profile, when one exists.
func (s *profileService) GetProfileStatus(ctx context.Context, userID string) (*dto.ProfileStatusResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to load user for profile status", slog.String("user_id", userID))
		}
		return nil, err
	}

	status := &dto.ProfileStatusResponse{
		CurrentProfile:     user.CurrentProfile,
		HasBusinessProfile: user.HasBusinessProfile,
		User:               dto.ToUserSummary(user),
	}

	if user.HasBusinessProfile {
		business, err := s.businessRepo.FindBusinessByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "failed to load business profile for profile status", slog.String("user_id", userID))
				return nil, err
			}
			// Flag set but no row: report the flag, omit the payload.
			s.LogError(ctx, err, "user flagged as business owner but no business row found", slog.String("user_id", userID))
		} else {
			res := dto.ToBusinessResponse(business)
			status.BusinessProfile = &res
		}
	}

	return status, nil
}

// SwitchProfile activates the target persona. Switching to business without a
// business profile is not an error: the result carries NeedsSetup=true so the
// caller can launch onboarding, and the active persona is left unchanged.
func (s *profileService) SwitchProfile(ctx context.Context, userID string, target domain.ProfileType) (*portssvc.SwitchResult, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: profileType must be 'user' or 'business'", apperrors.ErrInvalidArgument)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to load user for profile switch", slog.String("user_id", userID))
		}
		return nil, err
	}

	if user.CurrentProfile == target {
		// Already active: idempotent no-op.
		return &portssvc.SwitchResult{CurrentProfile: user.CurrentProfile}, nil
	}

	if target == domain.ProfileTypeBusiness && !user.HasBusinessProfile {
		s.LogInfo(ctx, "business switch gated on setup", slog.String("user_id", userID))
		return &portssvc.SwitchResult{CurrentProfile: user.CurrentProfile, NeedsSetup: true}, nil
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateCurrentProfile(ctx, userID, target, now); err != nil {
		s.LogError(ctx, err, "failed to switch profile", slog.String("user_id", userID), slog.String("target", string(target)))
		return nil, err
	}

	if target == domain.ProfileTypeBusiness {
		s.touchBusinessActivity(ctx, userID, now)
	}

	s.LogInfo(ctx, "profile switched", slog.String("user_id", userID), slog.String("current_profile", string(target)))
	return &portssvc.SwitchResult{CurrentProfile: target}, nil
}

// touchBusinessActivity refreshes the business profile's last-active
// timestamp when its persona is activated. Best-effort: failures are logged
// and do not fail the switch.
func (s *profileService) touchBusinessActivity(ctx context.Context, userID string, now time.Time) {
	business, err := s.businessRepo.FindBusinessByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to load business profile for activity touch", slog.String("user_id", userID))
		return
	}
	if err := s.businessRepo.TouchLastActive(ctx, business.BusinessID, now); err != nil {
		s.LogError(ctx, err, "failed to refresh business last active timestamp", slog.String("business_id", business.BusinessID))
	}
}
