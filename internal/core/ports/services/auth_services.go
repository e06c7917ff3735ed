package services

import (
	"context"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
)

// AuthSvcFacade is the mocked authentication flow: a first login with a new
// username registers the user.
type AuthSvcFacade interface {
	// Login finds or registers the user and returns it along with a signed
	// access token.
	Login(ctx context.Context, username string) (*domain.User, string, error)
}
