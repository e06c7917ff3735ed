package dto

import (
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletResponse reports a user's BBT balance.
type WalletResponse struct {
	WalletID       string          `json:"walletID"`
	Balance        decimal.Decimal `json:"balance"`
	LifetimeEarned decimal.Decimal `json:"lifetimeEarned"`
	LifetimeSpent  decimal.Decimal `json:"lifetimeSpent"`
}

// TokenTransactionResponse is a single ledger entry.
type TokenTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsParams are pagination parameters for the ledger listing.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListTransactionsResponse wraps the ledger listing.
type ListTransactionsResponse struct {
	Transactions []TokenTransactionResponse `json:"transactions"`
}

// ToWalletResponse converts a domain.Wallet to its response DTO.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:       w.WalletID,
		Balance:        w.Balance,
		LifetimeEarned: w.LifetimeEarned,
		LifetimeSpent:  w.LifetimeSpent,
	}
}

// ToTokenTransactionResponse converts a single ledger entry.
func ToTokenTransactionResponse(t *domain.TokenTransaction) TokenTransactionResponse {
	return TokenTransactionResponse{
		TransactionID: t.TransactionID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Description:   t.Description,
		BalanceAfter:  t.BalanceAfter,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionsResponse converts a slice of ledger entries.
func ToListTransactionsResponse(txns []domain.TokenTransaction) ListTransactionsResponse {
	res := make([]TokenTransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTokenTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res}
}
