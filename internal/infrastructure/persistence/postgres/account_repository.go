package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/domain"
	"github.com/jackc/pgx/v5"
)

// AccountRepository persists the Account aggregate. Writes are version
// checked: Save only touches the row when the stored version equals the
// version the caller originally read.
type AccountRepository struct {
	q Executor
}

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, account_number, balance_cents, currency, version)
		VALUES ($1, $2, $3, $4, $5)
	`

	m := toAccountModel(account)
	_, err := r.q.Exec(ctx, query, m.ID, m.Number, m.BalanceCents, m.Currency, m.Version)
	if err != nil {
		if IsUniqueViolation(err) {
			return application.ErrDuplicateAccountNumber
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// FindByNumber retrieves an account, or (nil, nil) when it does not exist.
func (r *AccountRepository) FindByNumber(ctx context.Context, number domain.AccountNumber) (*domain.Account, error) {
	query := `
		SELECT account_id, account_number, balance_cents, currency, version
		FROM accounts WHERE account_number = $1
	`

	row := r.q.QueryRow(ctx, query, number.String())
	return scanAccount(row)
}

// FindByNumberForUpdate retrieves an account with a row-level lock. The lock
// is held until the surrounding transaction commits or rolls back.
func (r *AccountRepository) FindByNumberForUpdate(ctx context.Context, number domain.AccountNumber) (*domain.Account, error) {
	query := `
		SELECT account_id, account_number, balance_cents, currency, version
		FROM accounts WHERE account_number = $1
		FOR UPDATE
	`

	row := r.q.QueryRow(ctx, query, number.String())
	return scanAccount(row)
}

// Save writes the mutated aggregate, failing with ErrConcurrencyConflict when
// the stored version no longer matches the version the aggregate was loaded
// at (account.Version - 1 after a domain operation).
func (r *AccountRepository) Save(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET balance_cents = $1, version = $2
		WHERE account_id = $3 AND version = $4
	`

	m := toAccountModel(account)
	result, err := r.q.Exec(ctx, query, m.BalanceCents, m.Version, m.ID, m.Version-1)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return application.ErrConcurrencyConflict
	}

	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m AccountModel
	err := row.Scan(&m.ID, &m.Number, &m.BalanceCents, &m.Currency, &m.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return toDomainAccount(m)
}
