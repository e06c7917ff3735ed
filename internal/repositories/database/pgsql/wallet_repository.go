package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/apperrors"
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	portsrepo "github.com/bbroker-app/bbroker_backend/internal/core/ports/repositories"
	"github.com/bbroker-app/bbroker_backend/internal/models"
	"github.com/bbroker-app/bbroker_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const walletColumns = `id, user_id, balance, lifetime_earned, lifetime_spent, created_at, updated_at`

const transactionColumns = `id, wallet_id, type, amount, description, balance_after, created_at`

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet and token
// transaction data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepositoryFacade
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func scanWallet(row pgx.Row) (*models.Wallet, error) {
	var m models.Wallet
	err := row.Scan(
		&m.WalletID,
		&m.UserID,
		&m.Balance,
		&m.LifetimeEarned,
		&m.LifetimeSpent,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindWalletByUserID retrieves a user's wallet.
func (r *PgxWalletRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1;`

	m, err := scanWallet(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet for user %s: %w", userID, err)
	}

	wallet := mapping.ToDomainWallet(*m)
	return &wallet, nil
}

// ListTransactions retrieves a page of token transactions for a wallet, newest
// first.
func (r *PgxWalletRepository) ListTransactions(ctx context.Context, walletID string, limit int, offset int) ([]domain.TokenTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM token_transactions WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for wallet %s: %w", walletID, err)
	}
	defer rows.Close()

	txns := make([]models.TokenTransaction, 0)
	for rows.Next() {
		var m models.TokenTransaction
		err := rows.Scan(
			&m.TransactionID,
			&m.WalletID,
			&m.Type,
			&m.Amount,
			&m.Description,
			&m.BalanceAfter,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return mapping.ToDomainTokenTransactionSlice(txns), nil
}

// CreditWallet adds tokens to a user's wallet and appends the matching ledger
// entry in a single transaction. The wallet row is locked for the duration and
// created lazily on first credit.
func (r *PgxWalletRepository) CreditWallet(ctx context.Context, userID string, amount decimal.Decimal, txnType domain.TokenTransactionType, description string, now time.Time) (*domain.Wallet, *domain.TokenTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	lockQuery := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE;`

	m, err := scanWallet(tx.QueryRow(ctx, lockQuery, userID))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, fmt.Errorf("failed to lock wallet for user %s: %w", userID, err)
		}
		m = &models.Wallet{
			WalletID:       uuid.NewString(),
			UserID:         userID,
			Balance:        decimal.Zero,
			LifetimeEarned: decimal.Zero,
			LifetimeSpent:  decimal.Zero,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		insertWallet := `
			INSERT INTO wallets (id, user_id, balance, lifetime_earned, lifetime_spent, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`
		_, err = tx.Exec(ctx, insertWallet, m.WalletID, m.UserID, m.Balance, m.LifetimeEarned, m.LifetimeSpent, m.CreatedAt, m.UpdatedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create wallet for user %s: %w", userID, err)
		}
	}

	m.Balance = m.Balance.Add(amount)
	m.LifetimeEarned = m.LifetimeEarned.Add(amount)
	m.UpdatedAt = now

	updateWallet := `UPDATE wallets SET balance = $1, lifetime_earned = $2, updated_at = $3 WHERE id = $4;`
	_, err = tx.Exec(ctx, updateWallet, m.Balance, m.LifetimeEarned, m.UpdatedAt, m.WalletID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update wallet %s: %w", m.WalletID, err)
	}

	txn := models.TokenTransaction{
		TransactionID: uuid.NewString(),
		WalletID:      m.WalletID,
		Type:          string(txnType),
		Amount:        amount,
		Description:   description,
		BalanceAfter:  m.Balance,
		CreatedAt:     now,
	}
	insertTxn := `
		INSERT INTO token_transactions (id, wallet_id, type, amount, description, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, insertTxn, txn.TransactionID, txn.WalletID, txn.Type, txn.Amount, txn.Description, txn.BalanceAfter, txn.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to append ledger entry for wallet %s: %w", m.WalletID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	wallet := mapping.ToDomainWallet(*m)
	domainTxn := mapping.ToDomainTokenTransaction(txn)
	return &wallet, &domainTxn, nil
}
