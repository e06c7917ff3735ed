package repositories

import (
	"context"
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReader defines read operations for wallets and their ledgers.
type WalletReader interface {
	// FindWalletByUserID retrieves a user's wallet.
	FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)

	// ListTransactions retrieves a paginated list of a wallet's ledger
	// entries, newest first.
	ListTransactions(ctx context.Context, walletID string, limit int, offset int) ([]domain.TokenTransaction, error)
}

// WalletWriter defines the append-only write operation for the ledger.
type WalletWriter interface {
	// CreditWallet locks (or lazily creates) the user's wallet, appends a
	// ledger entry carrying the resulting balance and updates the wallet's
	// running totals, all in one database transaction.
	CreditWallet(ctx context.Context, userID string, amount decimal.Decimal, txnType domain.TokenTransactionType, description string, now time.Time) (*domain.Wallet, *domain.TokenTransaction, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
