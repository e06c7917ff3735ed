package services

import (
	portsrepo "github.com/bbroker-app/bbroker_backend/internal/core/ports/repositories"
	portssvc "github.com/bbroker-app/bbroker_backend/internal/core/ports/services"
	"github.com/bbroker-app/bbroker_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Wallet first since onboarding credits the setup reward through it.
	container.Wallet = NewWalletService(repos.WalletRepo)

	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.Profile = NewProfileService(repos.UserRepo, repos.BusinessRepo)
	container.Business = NewBusinessService(repos.BusinessRepo, repos.UserRepo, container.Wallet)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade     = (*authService)(nil)
	_ portssvc.ProfileSvcFacade  = (*profileService)(nil)
	_ portssvc.BusinessSvcFacade = (*businessService)(nil)
	_ portssvc.WalletSvcFacade   = (*walletService)(nil)
)
