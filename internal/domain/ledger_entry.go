package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntryType classifies a balance movement
type LedgerEntryType string

const (
	EntryDeposit     LedgerEntryType = "DEPOSIT"
	EntryWithdrawal  LedgerEntryType = "WITHDRAWAL"
	EntryTransferIn  LedgerEntryType = "TRANSFER_IN"
	EntryTransferOut LedgerEntryType = "TRANSFER_OUT"
)

// LedgerEntry is an immutable record of one balance movement. Entries are
// append-only: created exactly once per balance-affecting operation and never
// updated or deleted. The two entries of a transfer share one CorrelationID.
type LedgerEntry struct {
	EntryID            uuid.UUID
	AccountID          AccountID
	Type               LedgerEntryType
	Amount             Money
	CorrelationID      *uuid.UUID
	CounterpartyNumber *AccountNumber
	OccurredAt         time.Time
}

func NewLedgerEntry(
	accountID AccountID,
	entryType LedgerEntryType,
	amount Money,
	correlationID *uuid.UUID,
	counterparty *AccountNumber,
) LedgerEntry {
	return LedgerEntry{
		EntryID:            uuid.New(),
		AccountID:          accountID,
		Type:               entryType,
		Amount:             amount,
		CorrelationID:      correlationID,
		CounterpartyNumber: counterparty,
		OccurredAt:         time.Now().UTC(),
	}
}
