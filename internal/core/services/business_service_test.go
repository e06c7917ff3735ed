package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/bbroker-app/bbroker_backend/internal/apperrors"
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	portssvc "github.com/bbroker-app/bbroker_backend/internal/core/ports/services"
	"github.com/bbroker-app/bbroker_backend/internal/core/services"
	"github.com/bbroker-app/bbroker_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	mockUserRepo     *MockUserRepository
	mockWalletSvc    *MockWalletService
	service          portssvc.BusinessSvcFacade
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockWalletSvc = new(MockWalletService)
	suite.service = services.NewBusinessService(suite.mockBusinessRepo, suite.mockUserRepo, suite.mockWalletSvc)
}

func strPtr(s string) *string {
	return &s
}

func validSetupRequest() dto.BusinessSetupRequest {
	return dto.BusinessSetupRequest{
		BusinessName: "Corner Bakery",
		Description:  "Fresh bread and pastries every morning.",
		Location: &domain.Location{
			Latitude:  40.7128,
			Longitude: -74.0060,
			Address:   "1 Main St",
			City:      "New York",
			Country:   "USA",
		},
		WorkingHours: &domain.WorkingHours{
			Monday: domain.DayHours{Open: true, Start: strPtr("08:00"), End: strPtr("18:00")},
		},
		MainCategory:    "Food & Beverage",
		TargetMarket:    "local",
		TargetAgeRanges: []string{"18-25", "26-30"},
	}
}

func (suite *BusinessServiceTestSuite) expectUser(ctx context.Context, hasBusiness bool) *domain.User {
	user := newTestUser(domain.ProfileTypeUser, hasBusiness)
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	return user
}

// --- CreateBusinessProfile Tests ---

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_Success() {
	ctx := context.Background()
	user := suite.expectUser(ctx, false)
	req := validSetupRequest()

	suite.mockBusinessRepo.On("CreateBusinessForUser", ctx, mock.MatchedBy(func(b domain.Business) bool {
		return b.UserID == user.UserID &&
			b.BusinessName == req.BusinessName &&
			b.Status == domain.BusinessStatusPendingVerification &&
			!b.IsVerified &&
			b.Rating.IsZero() &&
			b.ReviewCount == 0
	})).Return(nil).Once()
	suite.mockWalletSvc.On("Credit", ctx, user.UserID, domain.BusinessSetupReward, domain.TokenTxnEarn, domain.BusinessSetupRewardDescription).
		Return(domain.BusinessSetupReward, nil).Once()

	business, reward, err := suite.service.CreateBusinessProfile(ctx, user.UserID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(business)
	suite.NotEmpty(business.BusinessID)
	suite.True(decimal.NewFromInt(420).Equal(reward))
	suite.mockBusinessRepo.AssertExpectations(suite.T())
	suite.mockWalletSvc.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_RewardFailureStillSucceeds() {
	ctx := context.Background()
	user := suite.expectUser(ctx, false)
	req := validSetupRequest()

	suite.mockBusinessRepo.On("CreateBusinessForUser", ctx, mock.AnythingOfType("domain.Business")).Return(nil).Once()
	suite.mockWalletSvc.On("Credit", ctx, user.UserID, domain.BusinessSetupReward, domain.TokenTxnEarn, domain.BusinessSetupRewardDescription).
		Return(nil, assert.AnError).Once()

	business, reward, err := suite.service.CreateBusinessProfile(ctx, user.UserID, req)

	suite.Require().NoError(err)
	suite.NotNil(business)
	suite.True(reward.IsZero())
	suite.mockWalletSvc.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_AlreadyHasProfile() {
	ctx := context.Background()
	user := suite.expectUser(ctx, true)
	req := validSetupRequest()

	business, reward, err := suite.service.CreateBusinessProfile(ctx, user.UserID, req)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.True(reward.IsZero())
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "CreateBusinessForUser")
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_ConcurrentDuplicate() {
	ctx := context.Background()
	user := suite.expectUser(ctx, false)
	req := validSetupRequest()

	// The flag check passed but the unique index caught the race.
	suite.mockBusinessRepo.On("CreateBusinessForUser", ctx, mock.AnythingOfType("domain.Business")).
		Return(apperrors.ErrDuplicate).Once()

	business, _, err := suite.service.CreateBusinessProfile(ctx, user.UserID, req)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockWalletSvc.AssertNotCalled(suite.T(), "Credit")
}

// --- Validation Tests ---

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_NameTooShort() {
	ctx := context.Background()
	req := validSetupRequest()
	req.BusinessName = " B "

	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "businessName")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID")
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_DescriptionBoundaries() {
	ctx := context.Background()

	// 9 characters fails.
	req := validSetupRequest()
	req.Description = strings.Repeat("a", 9)
	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "description")

	// 501 characters fails.
	req = validSetupRequest()
	req.Description = strings.Repeat("a", 501)
	_, _, err = suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// 10 characters passes validation and reaches the user lookup.
	user := suite.expectUser(ctx, false)
	req = validSetupRequest()
	req.Description = strings.Repeat("a", 10)
	suite.mockBusinessRepo.On("CreateBusinessForUser", ctx, mock.AnythingOfType("domain.Business")).Return(nil).Once()
	suite.mockWalletSvc.On("Credit", ctx, user.UserID, domain.BusinessSetupReward, domain.TokenTxnEarn, domain.BusinessSetupRewardDescription).
		Return(domain.BusinessSetupReward, nil).Once()

	_, _, err = suite.service.CreateBusinessProfile(ctx, user.UserID, req)
	suite.Require().NoError(err)
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_LengthsCountRunesNotBytes() {
	ctx := context.Background()

	// 5 runes (15 bytes) is still below the 10-character minimum.
	req := validSetupRequest()
	req.Description = strings.Repeat("日", 5)
	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "description")

	// 500 runes (1000 bytes) is still within the maximum.
	user := suite.expectUser(ctx, false)
	req = validSetupRequest()
	req.Description = strings.Repeat("é", 500)
	suite.mockBusinessRepo.On("CreateBusinessForUser", ctx, mock.AnythingOfType("domain.Business")).Return(nil).Once()
	suite.mockWalletSvc.On("Credit", ctx, user.UserID, domain.BusinessSetupReward, domain.TokenTxnEarn, domain.BusinessSetupRewardDescription).
		Return(domain.BusinessSetupReward, nil).Once()

	_, _, err = suite.service.CreateBusinessProfile(ctx, user.UserID, req)
	suite.Require().NoError(err)

	// A single multibyte rune (3 bytes) does not clear the 2-character name minimum.
	req = validSetupRequest()
	req.BusinessName = "日"
	_, _, err = suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "businessName")
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_MissingLocationAddress() {
	ctx := context.Background()
	req := validSetupRequest()
	req.Location.Address = "   "

	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "address")
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_UnknownMainCategory() {
	ctx := context.Background()
	req := validSetupRequest()
	req.MainCategory = "Quantum Computing"

	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "mainCategory")
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_AffiliateDuplicatesMain() {
	ctx := context.Background()
	req := validSetupRequest()
	req.AffiliateCategory1 = strPtr("Food & Beverage")

	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "duplicates")
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_AffiliatesMustBeDistinct() {
	ctx := context.Background()
	req := validSetupRequest()
	req.AffiliateCategory1 = strPtr("Technology")
	req.AffiliateCategory2 = strPtr("Technology")

	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_InvalidTargetMarket() {
	ctx := context.Background()
	req := validSetupRequest()
	req.TargetMarket = "galactic"

	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "targetMarket")
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_InvalidAgeRange() {
	ctx := context.Background()
	req := validSetupRequest()
	req.TargetAgeRanges = []string{"18-25", "12-17"}

	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "age range")
}

func (suite *BusinessServiceTestSuite) TestCreateBusinessProfile_EmptyAgeRanges() {
	ctx := context.Background()
	req := validSetupRequest()
	req.TargetAgeRanges = nil

	_, _, err := suite.service.CreateBusinessProfile(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Discovery Tests ---

func (suite *BusinessServiceTestSuite) TestListBusinesses_RadiusFilter() {
	ctx := context.Background()
	near := domain.Business{
		BusinessID: uuid.NewString(),
		Location:   domain.Location{Latitude: 40.713, Longitude: -74.007}, // ~100m away
	}
	far := domain.Business{
		BusinessID: uuid.NewString(),
		Location:   domain.Location{Latitude: 41.8781, Longitude: -87.6298}, // Chicago
	}

	suite.mockBusinessRepo.On("ListBusinesses", ctx, 50, 0).Return([]domain.Business{near, far}, nil).Once()

	lat, lng, radius := 40.7128, -74.0060, 5.0
	result, err := suite.service.ListBusinesses(ctx, dto.ListBusinessesParams{
		Latitude:  &lat,
		Longitude: &lng,
		Radius:    &radius,
		Limit:     50,
	})

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(near.BusinessID, result[0].BusinessID)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestListBusinesses_NoFilterReturnsAll() {
	ctx := context.Background()
	businesses := []domain.Business{{BusinessID: uuid.NewString()}, {BusinessID: uuid.NewString()}}

	suite.mockBusinessRepo.On("ListBusinesses", ctx, 50, 0).Return(businesses, nil).Once()

	result, err := suite.service.ListBusinesses(ctx, dto.ListBusinessesParams{Limit: 50})

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *BusinessServiceTestSuite) TestGetBusinessByID_NotFound() {
	ctx := context.Background()
	businessID := uuid.NewString()

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(nil, apperrors.ErrNotFound).Once()

	business, err := suite.service.GetBusinessByID(ctx, businessID)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
