package application

import (
	"context"

	"github.com/DanielPopoola/zkybank/internal/domain"
)

// AccountRepository is the persistence port for the Account aggregate.
// Implementations must make Save a version-match-or-fail write: the stored
// version has to equal account.Version-1 at write time or the call fails with
// ErrConcurrencyConflict.
// Lookups return (nil, nil) when no account with the given number exists.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) error
	FindByNumber(ctx context.Context, number domain.AccountNumber) (*domain.Account, error)
	// FindByNumberForUpdate loads an account with a storage-level locking hint.
	// Backends without row locks may make this a plain read and rely on the
	// version check in Save.
	FindByNumberForUpdate(ctx context.Context, number domain.AccountNumber) (*domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
}

// LedgerRepository is the persistence port for the append-only movement log.
type LedgerRepository interface {
	Append(ctx context.Context, entry domain.LedgerEntry) error
	// ListByAccount returns entries most recent first.
	ListByAccount(ctx context.Context, accountID domain.AccountID) ([]domain.LedgerEntry, error)
}

// UnitOfWork exposes repositories scoped to one transaction boundary.
type UnitOfWork interface {
	Accounts() AccountRepository
	Ledger() LedgerRepository
}

// TxManager opens a transaction boundary around fn. The transaction commits
// when fn returns nil and rolls back on any error or panic, so no partial
// account or ledger write is ever left visible.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
