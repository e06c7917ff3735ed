package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet represents a row in the wallets table.
type Wallet struct {
	WalletID       string          `db:"id"`
	UserID         string          `db:"user_id"`
	Balance        decimal.Decimal `db:"balance"`
	LifetimeEarned decimal.Decimal `db:"lifetime_earned"`
	LifetimeSpent  decimal.Decimal `db:"lifetime_spent"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// TokenTransaction represents a row in the token_transactions table.
// Rows are append-only.
type TokenTransaction struct {
	TransactionID string          `db:"id"`
	WalletID      string          `db:"wallet_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	CreatedAt     time.Time       `db:"created_at"`
}
