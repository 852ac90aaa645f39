package postgres

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/zkybank/internal/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerRepository persists ledger entries. The table is append only, there
// are no update or delete paths.
type LedgerRepository struct {
	q Executor
}

func NewLedgerRepository(db *DB) *LedgerRepository {
	return &LedgerRepository{q: db.Pool}
}

func (r *LedgerRepository) Append(ctx context.Context, entry domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (entry_id, account_id, entry_type, amount_cents, currency, correlation_id, counterparty_number, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	m := toLedgerEntryModel(entry)
	_, err := r.q.Exec(ctx, query,
		m.EntryID, m.AccountID, m.EntryType, m.AmountCents, m.Currency,
		m.CorrelationID, m.CounterpartyNumber, m.OccurredAt)
	if err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return nil
}

// ListByAccount returns the account's entries, most recent first.
func (r *LedgerRepository) ListByAccount(ctx context.Context, accountID domain.AccountID) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, account_id, entry_type, amount_cents, currency, correlation_id, counterparty_number, occurred_at
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY occurred_at DESC
	`

	rows, err := r.q.Query(ctx, query, accountID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByPos[LedgerEntryModel])
	if err != nil {
		return nil, fmt.Errorf("failed to collect ledger entries: %w", err)
	}

	entries := make([]domain.LedgerEntry, 0, len(models))
	for _, m := range models {
		entry, err := toDomainLedgerEntry(m)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
