package services

import (
	"time"

	"github.com/DanielPopoola/zkybank/internal/domain"
	"github.com/google/uuid"
)

type AccountCreatedResult struct {
	AccountID     string
	AccountNumber string
	BalanceCents  int64
	Currency      string
}

// TransactionResult is the post-operation snapshot returned by deposits and
// withdrawals.
type TransactionResult struct {
	AccountNumber string
	BalanceCents  int64
	Currency      string
}

type BalanceResult struct {
	AccountNumber string
	BalanceCents  int64
	Currency      string
}

type TransferResult struct {
	CorrelationID     uuid.UUID
	FromAccountNumber string
	ToAccountNumber   string
	FromBalanceCents  int64
	ToBalanceCents    int64
	Currency          string
}

type LedgerEntryResult struct {
	EntryID                   uuid.UUID
	EntryType                 domain.LedgerEntryType
	AmountCents               int64
	Currency                  string
	CorrelationID             *uuid.UUID
	OccurredAt                time.Time
	CounterpartyAccountNumber *string
}

func newLedgerEntryResult(entry domain.LedgerEntry) LedgerEntryResult {
	result := LedgerEntryResult{
		EntryID:       entry.EntryID,
		EntryType:     entry.Type,
		AmountCents:   entry.Amount.AmountCents,
		Currency:      entry.Amount.Currency,
		CorrelationID: entry.CorrelationID,
		OccurredAt:    entry.OccurredAt,
	}
	if entry.CounterpartyNumber != nil {
		value := entry.CounterpartyNumber.String()
		result.CounterpartyAccountNumber = &value
	}
	return result
}
