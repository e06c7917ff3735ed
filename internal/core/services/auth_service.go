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
	"github.com/bbroker-app/bbroker_backend/internal/platform/config"
	"github.com/bbroker-app/bbroker_backend/internal/utils"
	"github.com/google/uuid"
)

// authService implements the mocked login flow: a first login with a new
// username registers the user with generated defaults.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login finds or registers the user and returns it with a signed access token.
func (s *authService) Login(ctx context.Context, username string) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to look up user for login", slog.String("username", username))
			return nil, "", err
		}
		user, err = s.registerUser(ctx, username)
		if err != nil {
			return nil, "", err
		}
	} else {
		now := time.Now().UTC()
		if err := s.userRepo.TouchLastLogin(ctx, user.UserID, now); err != nil {
			// Not worth failing the login over.
			s.LogError(ctx, err, "failed to record last login", slog.String("user_id", user.UserID))
		} else {
			user.LastLoginAt = &now
		}
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to sign access token", slog.String("user_id", user.UserID))
		return nil, "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return user, token, nil
}

func (s *authService) registerUser(ctx context.Context, username string) (*domain.User, error) {
	// Users never log in with this password; it only keeps the column
	// non-empty until real credentials exist.
	randomPassword, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder password: %w", err)
	}
	passwordHash, err := utils.HashPassword(randomPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       username,
		Email:          fmt.Sprintf("%s@bbroker.app", username),
		PasswordHash:   passwordHash,
		FullName:       username,
		Bio:            "Digital Enthusiast",
		ProfilePhoto:   fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username),
		CurrentProfile: domain.ProfileTypeUser,
		Status:         domain.UserStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
		LastLoginAt:    &now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race with a concurrent first login; use the winner's row.
			return s.userRepo.FindUserByUsername(ctx, username)
		}
		s.LogError(ctx, err, "failed to register user", slog.String("username", username))
		return nil, err
	}

	s.LogInfo(ctx, "user registered", slog.String("user_id", user.UserID), slog.String("username", username))
	return &user, nil
}
