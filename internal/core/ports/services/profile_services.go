package services

import (
	"context"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/bbroker-app/bbroker_backend/internal/dto"
)

// SwitchResult is the discriminated outcome of a profile switch. NeedsSetup
// is a control-flow signal, not an error: it tells the caller to launch the
// business onboarding flow instead of rendering a failure.
type SwitchResult struct {
	CurrentProfile domain.ProfileType
	NeedsSetup     bool
}

// ProfileSvcFacade reports and mutates a user's active persona.
type ProfileSvcFacade interface {
	// GetProfileStatus returns the user's current persona, whether a
	// business profile exists, and the profile payload when it does.
	GetProfileStatus(ctx context.Context, userID string) (*dto.ProfileStatusResponse, error)

	// SwitchProfile activates the target persona. Switching to business
	// requires an existing business profile; without one the result carries
	// NeedsSetup=true and the persona is left unchanged. Switching to the
	// already-active persona is a no-op success.
	SwitchProfile(ctx context.Context, userID string, target domain.ProfileType) (*SwitchResult, error)
}
