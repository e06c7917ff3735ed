package services_test

import (
	"context"
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	portsrepo "github.com/bbroker-app/bbroker_backend/internal/core/ports/repositories"
	portssvc "github.com/bbroker-app/bbroker_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn         func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn   func(ctx context.Context, username string) (*domain.User, error)
	SaveUserFn             func(ctx context.Context, user domain.User) error
	UpdateCurrentProfileFn func(ctx context.Context, userID string, profile domain.ProfileType, now time.Time) error
	TouchLastLoginFn       func(ctx context.Context, userID string, now time.Time) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateCurrentProfile(ctx context.Context, userID string, profile domain.ProfileType, now time.Time) error {
	if m.UpdateCurrentProfileFn != nil {
		return m.UpdateCurrentProfileFn(ctx, userID, profile, now)
	}
	args := m.Called(ctx, userID, profile, now)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, userID string, now time.Time) error {
	if m.TouchLastLoginFn != nil {
		return m.TouchLastLoginFn(ctx, userID, now)
	}
	args := m.Called(ctx, userID, now)
	return args.Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
	CreateBusinessForUserFn func(ctx context.Context, business domain.Business) error
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	var business *domain.Business
	if args.Get(0) != nil {
		business = args.Get(0).(*domain.Business)
	}
	return business, args.Error(1)
}

func (m *MockBusinessRepository) FindBusinessByUserID(ctx context.Context, userID string) (*domain.Business, error) {
	args := m.Called(ctx, userID)
	var business *domain.Business
	if args.Get(0) != nil {
		business = args.Get(0).(*domain.Business)
	}
	return business, args.Error(1)
}

func (m *MockBusinessRepository) ListBusinesses(ctx context.Context, limit int, offset int) ([]domain.Business, error) {
	args := m.Called(ctx, limit, offset)
	var businesses []domain.Business
	if args.Get(0) != nil {
		businesses = args.Get(0).([]domain.Business)
	}
	return businesses, args.Error(1)
}

func (m *MockBusinessRepository) CreateBusinessForUser(ctx context.Context, business domain.Business) error {
	if m.CreateBusinessForUserFn != nil {
		return m.CreateBusinessForUserFn(ctx, business)
	}
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) TouchLastActive(ctx context.Context, businessID string, now time.Time) error {
	args := m.Called(ctx, businessID, now)
	return args.Error(0)
}

var _ portsrepo.BusinessRepositoryFacade = (*MockBusinessRepository)(nil)

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
	CreditWalletFn func(ctx context.Context, userID string, amount decimal.Decimal, txnType domain.TokenTransactionType, description string, now time.Time) (*domain.Wallet, *domain.TokenTransaction, error)
}

func (m *MockWalletRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	var wallet *domain.Wallet
	if args.Get(0) != nil {
		wallet = args.Get(0).(*domain.Wallet)
	}
	return wallet, args.Error(1)
}

func (m *MockWalletRepository) ListTransactions(ctx context.Context, walletID string, limit int, offset int) ([]domain.TokenTransaction, error) {
	args := m.Called(ctx, walletID, limit, offset)
	var txns []domain.TokenTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.TokenTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockWalletRepository) CreditWallet(ctx context.Context, userID string, amount decimal.Decimal, txnType domain.TokenTransactionType, description string, now time.Time) (*domain.Wallet, *domain.TokenTransaction, error) {
	if m.CreditWalletFn != nil {
		return m.CreditWalletFn(ctx, userID, amount, txnType, description, now)
	}
	args := m.Called(ctx, userID, amount, txnType, description, now)
	var wallet *domain.Wallet
	if args.Get(0) != nil {
		wallet = args.Get(0).(*domain.Wallet)
	}
	var txn *domain.TokenTransaction
	if args.Get(1) != nil {
		txn = args.Get(1).(*domain.TokenTransaction)
	}
	return wallet, txn, args.Error(2)
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepository)(nil)

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
	var wallet *domain.Wallet
	if args.Get(0) != nil {
		wallet = args.Get(0).(*domain.Wallet)
	}
	return wallet, args.Error(1)
}

func (m *MockWalletService) ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.TokenTransaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	var txns []domain.TokenTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.TokenTransaction)
	}
	return txns, args.Error(1)
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)
