package handlers_test

import (
	"context"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	portssvc "github.com/bbroker-app/bbroker_backend/internal/core/ports/services"
	"github.com/bbroker-app/bbroker_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username string) (*domain.User, string, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock BusinessService ---
type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) CreateBusinessProfile(ctx context.Context, userID string, req dto.BusinessSetupRequest) (*domain.Business, decimal.Decimal, error) {
	args := m.Called(ctx, userID, req)
	var business *domain.Business
	if args.Get(0) != nil {
		business = args.Get(0).(*domain.Business)
	}
	var reward decimal.Decimal
	if args.Get(1) != nil {
		reward = args.Get(1).(decimal.Decimal)
	}
	return business, reward, args.Error(2)
}

func (m *MockBusinessService) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessService) ListBusinesses(ctx context.Context, params dto.ListBusinessesParams) ([]domain.Business, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BusinessSvcFacade = (*MockBusinessService)(nil)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) Credit(ctx context.Context, userID string, amount decimal.Decimal, txnType domain.TokenTransactionType, description string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, amount, txnType, description)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWalletService) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.TokenTransaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TokenTransaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)
