package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/apperrors"
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	portssvc "github.com/bbroker-app/bbroker_backend/internal/core/ports/services"
	"github.com/bbroker-app/bbroker_backend/internal/core/services"
	"github.com/bbroker-app/bbroker_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "bbroker-test",
	}
	suite.service = services.NewAuthService(cfg, suite.mockUserRepo)
}

func (suite *AuthServiceTestSuite) TestLogin_FirstLoginRegistersUser() {
	ctx := context.Background()
	username := "newcomer"

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == username &&
			user.Email == "newcomer@bbroker.app" &&
			user.Bio == "Digital Enthusiast" &&
			user.CurrentProfile == domain.ProfileTypeUser &&
			!user.HasBusinessProfile &&
			user.PasswordHash != ""
	})).Return(nil).Once()

	user, token, err := suite.service.Login(ctx, username)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.NotEmpty(token)
	suite.Contains(user.ProfilePhoto, "dicebear")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_ExistingUserIsNotReRegistered() {
	ctx := context.Background()
	existing := &domain.User{
		UserID:         uuid.NewString(),
		Username:       "regular",
		Email:          "regular@bbroker.app",
		CurrentProfile: domain.ProfileTypeUser,
		Status:         domain.UserStatusActive,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, existing.Username).Return(existing, nil).Once()
	suite.mockUserRepo.On("TouchLastLogin", ctx, existing.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	user, token, err := suite.service.Login(ctx, existing.Username)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.NotEmpty(token)
	suite.NotNil(user.LastLoginAt)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_LostRegistrationRaceFallsBackToWinner() {
	ctx := context.Background()
	username := "racer"
	winner := &domain.User{UserID: uuid.NewString(), Username: username}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(winner, nil).Once()

	user, token, err := suite.service.Login(ctx, username)

	suite.Require().NoError(err)
	suite.Equal(winner.UserID, user.UserID)
	suite.NotEmpty(token)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
