package services

import (
	"context"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletSvcFacade is the append-only BBT ledger.
type WalletSvcFacade interface {
	// Credit appends a positive-amount entry to the user's ledger, creating
	// a zero-balance wallet on first use, and returns the new balance.
	Credit(ctx context.Context, userID string, amount decimal.Decimal, txnType domain.TokenTransactionType, description string) (decimal.Decimal, error)

	// GetWallet returns the user's wallet, or ErrNotFound before the first credit.
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)

	// ListTransactions returns the user's ledger entries, newest first.
	ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.TokenTransaction, error)
}
