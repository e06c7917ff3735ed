package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenTransactionType classifies a BBT ledger entry.
type TokenTransactionType string

const (
	TokenTxnEarn    TokenTransactionType = "earn"
	TokenTxnSpend   TokenTransactionType = "spend"
	TokenTxnRefund  TokenTransactionType = "refund"
	TokenTxnGift    TokenTransactionType = "gift"
	TokenTxnCashOut TokenTransactionType = "cash_out"
)

// BusinessSetupReward is the one-time BBT credit granted when a business
// profile is created.
var BusinessSetupReward = decimal.NewFromInt(420)

// BusinessSetupRewardDescription is the ledger description for the setup reward.
const BusinessSetupRewardDescription = "Business profile setup completed"

// Wallet holds a user's BBT balance. One wallet per user, created lazily on
// the first credit.
type Wallet struct {
	WalletID       string          `json:"walletID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`   // Owning user; unique
	Balance        decimal.Decimal `json:"balance"`
	LifetimeEarned decimal.Decimal `json:"lifetimeEarned"`
	LifetimeSpent  decimal.Decimal `json:"lifetimeSpent"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// TokenTransaction is a single append-only ledger entry. Entries are never
// updated or deleted; the wallet balance equals the sum of signed amounts.
type TokenTransaction struct {
	TransactionID string               `json:"transactionID"` // Primary Key (UUID)
	WalletID      string               `json:"walletID"`
	Type          TokenTransactionType `json:"type"`
	Amount        decimal.Decimal      `json:"amount"`
	Description   string               `json:"description"`
	BalanceAfter  decimal.Decimal      `json:"balanceAfter"`
	CreatedAt     time.Time            `json:"createdAt"`
}
