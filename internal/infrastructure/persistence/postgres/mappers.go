package postgres

import (
	"fmt"

	"github.com/DanielPopoola/zkybank/internal/domain"
	"github.com/google/uuid"
)

// toDomainAccount: maps db model to domain aggregate
func toDomainAccount(m AccountModel) (*domain.Account, error) {
	id, err := domain.ParseAccountID(m.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid account id %q: %w", m.ID, err)
	}
	number, err := domain.NewAccountNumber(m.Number)
	if err != nil {
		return nil, fmt.Errorf("invalid account number %q: %w", m.Number, err)
	}
	balance, err := domain.NewMoney(m.BalanceCents, m.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid stored balance for account %s: %w", m.Number, err)
	}

	account := domain.Reconstitute(id, number, balance, m.Version)
	return &account, nil
}

// toAccountModel: maps domain aggregate to db model
func toAccountModel(account domain.Account) AccountModel {
	return AccountModel{
		ID:           account.ID.String(),
		Number:       account.Number.String(),
		BalanceCents: account.Balance.AmountCents,
		Currency:     account.Balance.Currency,
		Version:      account.Version,
	}
}

func toDomainLedgerEntry(m LedgerEntryModel) (domain.LedgerEntry, error) {
	entryID, err := uuid.Parse(m.EntryID)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("invalid entry id %q: %w", m.EntryID, err)
	}
	accountID, err := domain.ParseAccountID(m.AccountID)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("invalid account id %q: %w", m.AccountID, err)
	}
	amount, err := domain.NewMoney(m.AmountCents, m.Currency)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("invalid stored amount for entry %s: %w", m.EntryID, err)
	}

	entry := domain.LedgerEntry{
		EntryID:    entryID,
		AccountID:  accountID,
		Type:       domain.LedgerEntryType(m.EntryType),
		Amount:     amount,
		OccurredAt: m.OccurredAt,
	}

	if m.CorrelationID != nil {
		correlationID, err := uuid.Parse(*m.CorrelationID)
		if err != nil {
			return domain.LedgerEntry{}, fmt.Errorf("invalid correlation id %q: %w", *m.CorrelationID, err)
		}
		entry.CorrelationID = &correlationID
	}
	if m.CounterpartyNumber != nil {
		number, err := domain.NewAccountNumber(*m.CounterpartyNumber)
		if err != nil {
			return domain.LedgerEntry{}, fmt.Errorf("invalid counterparty number %q: %w", *m.CounterpartyNumber, err)
		}
		entry.CounterpartyNumber = &number
	}

	return entry, nil
}

func toLedgerEntryModel(entry domain.LedgerEntry) LedgerEntryModel {
	model := LedgerEntryModel{
		EntryID:     entry.EntryID.String(),
		AccountID:   entry.AccountID.String(),
		EntryType:   string(entry.Type),
		AmountCents: entry.Amount.AmountCents,
		Currency:    entry.Amount.Currency,
		OccurredAt:  entry.OccurredAt,
	}
	if entry.CorrelationID != nil {
		value := entry.CorrelationID.String()
		model.CorrelationID = &value
	}
	if entry.CounterpartyNumber != nil {
		value := entry.CounterpartyNumber.String()
		model.CounterpartyNumber = &value
	}
	return model
}
