package postgres

import (
	"time"
)

// AccountModel mirrors the accounts table. The version column is the
// optimistic-concurrency token: every UPDATE is predicated on it.
type AccountModel struct {
	ID           string
	Number       string
	BalanceCents int64
	Currency     string
	Version      int64
}

// LedgerEntryModel mirrors the ledger_entries table. Rows are insert-only.
type LedgerEntryModel struct {
	EntryID            string
	AccountID          string
	EntryType          string
	AmountCents        int64
	Currency           string
	CorrelationID      *string
	CounterpartyNumber *string
	OccurredAt         time.Time
}
