package mapping

import (
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/bbroker-app/bbroker_backend/internal/models"
)

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:       m.WalletID,
		UserID:         m.UserID,
		Balance:        m.Balance,
		LifetimeEarned: m.LifetimeEarned,
		LifetimeSpent:  m.LifetimeSpent,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToDomainTokenTransaction converts a model TokenTransaction to a domain TokenTransaction
func ToDomainTokenTransaction(m models.TokenTransaction) domain.TokenTransaction {
	return domain.TokenTransaction{
		TransactionID: m.TransactionID,
		WalletID:      m.WalletID,
		Type:          domain.TokenTransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		BalanceAfter:  m.BalanceAfter,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTokenTransactionSlice converts a slice of model TokenTransactions
func ToDomainTokenTransactionSlice(ms []models.TokenTransaction) []domain.TokenTransaction {
	ds := make([]domain.TokenTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTokenTransaction(m)
	}
	return ds
}
