package postgres

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionCoordinator runs units of work inside a single database
// transaction. The transaction commits when the closure returns nil and
// rolls back otherwise, so either all writes of a use case land or none do.
type TransactionCoordinator struct {
	pool *pgxpool.Pool
}

func NewTransactionCoordinator(db *DB) *TransactionCoordinator {
	return &TransactionCoordinator{
		pool: db.Pool,
	}
}

// WithinTx executes fn with repositories bound to one transaction.
func (tc *TransactionCoordinator) WithinTx(
	ctx context.Context,
	fn func(ctx context.Context, uow application.UnitOfWork) error,
) error {
	tx, err := tc.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	uow := &unitOfWork{
		accounts: &AccountRepository{q: tx},
		ledger:   &LedgerRepository{q: tx},
	}

	if err := fn(ctx, uow); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type unitOfWork struct {
	accounts *AccountRepository
	ledger   *LedgerRepository
}

func (u *unitOfWork) Accounts() application.AccountRepository { return u.accounts }

func (u *unitOfWork) Ledger() application.LedgerRepository { return u.ledger }
