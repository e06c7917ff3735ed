package pgsql

import (
	portsrepo "github.com/bbroker-app/bbroker_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(pool),
		BusinessRepo: newPgxBusinessRepository(pool),
		WalletRepo:   newPgxWalletRepository(pool),
	}
}
