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
	"github.com/shopspring/decimal"
)

// walletService implements the append-only BBT ledger.
type walletService struct {
	BaseService
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewWalletService creates a new wallet service.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// Credit appends a positive-amount entry to the user's ledger and returns the
// resulting balance. The wallet is created on first use.
func (s *walletService) Credit(ctx context.Context, userID string, amount decimal.Decimal, txnType domain.TokenTransactionType, description string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: credit amount must be positive", apperrors.ErrInvalidArgument)
	}

	now := time.Now().UTC()
	wallet, txn, err := s.walletRepo.CreditWallet(ctx, userID, amount, txnType, description, now)
	if err != nil {
		s.LogError(ctx, err, "failed to credit wallet", slog.String("user_id", userID))
		return decimal.Zero, err
	}

	s.LogInfo(ctx, "wallet credited",
		slog.String("user_id", userID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", amount.String()),
		slog.String("balance_after", txn.BalanceAfter.String()))
	return wallet.Balance, nil
}

// GetWallet returns the user's wallet, or ErrNotFound before the first credit.
func (s *walletService) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to load wallet", slog.String("user_id", userID))
		}
		return nil, err
	}
	return wallet, nil
}

// ListTransactions returns the user's ledger entries, newest first.
func (s *walletService) ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.TokenTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	wallet, err := s.walletRepo.FindWalletByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No wallet yet means an empty ledger, not a missing resource.
			return []domain.TokenTransaction{}, nil
		}
		s.LogError(ctx, err, "failed to load wallet for ledger listing", slog.String("user_id", userID))
		return nil, err
	}

	txns, err := s.walletRepo.ListTransactions(ctx, wallet.WalletID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "failed to list ledger entries", slog.String("wallet_id", wallet.WalletID))
		return nil, err
	}
	return txns, nil
}
