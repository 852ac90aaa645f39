// Package domain holds the banking aggregate and its value objects.
package domain

import "github.com/google/uuid"

// Account is the aggregate root over a balance. Every operation is a pure
// value transformation: it validates, returns an updated copy with Version
// incremented by exactly 1 and the LedgerEntry describing the movement, and
// leaves the receiver untouched. Version is the optimistic-concurrency token
// checked by the persistence layer on save.
type Account struct {
	ID      AccountID
	Number  AccountNumber
	Balance Money
	Version int64
}

// OpenAccount creates a new account at version 0. Opening produces no ledger
// entry, even when the initial balance is positive.
func OpenAccount(number AccountNumber, initialBalance Money) Account {
	return Account{
		ID:      NewAccountID(),
		Number:  number,
		Balance: initialBalance,
		Version: 0,
	}
}

// Deposit credits the account.
func (a Account) Deposit(amount Money) (Account, LedgerEntry, error) {
	updated, err := a.credit(amount)
	if err != nil {
		return Account{}, LedgerEntry{}, err
	}
	return updated, NewLedgerEntry(a.ID, EntryDeposit, amount, nil, nil), nil
}

// Withdraw debits the account, failing when funds are insufficient.
func (a Account) Withdraw(amount Money) (Account, LedgerEntry, error) {
	updated, err := a.debit(amount)
	if err != nil {
		return Account{}, LedgerEntry{}, err
	}
	return updated, NewLedgerEntry(a.ID, EntryWithdrawal, amount, nil, nil), nil
}

// ApplyOutgoingTransfer debits the source side of a transfer. The entry
// carries the counterparty number and the transfer's correlation id.
func (a Account) ApplyOutgoingTransfer(amount Money, counterparty AccountNumber, correlationID uuid.UUID) (Account, LedgerEntry, error) {
	updated, err := a.debit(amount)
	if err != nil {
		return Account{}, LedgerEntry{}, err
	}
	return updated, NewLedgerEntry(a.ID, EntryTransferOut, amount, &correlationID, &counterparty), nil
}

// ApplyIncomingTransfer credits the destination side of a transfer.
func (a Account) ApplyIncomingTransfer(amount Money, counterparty AccountNumber, correlationID uuid.UUID) (Account, LedgerEntry, error) {
	updated, err := a.credit(amount)
	if err != nil {
		return Account{}, LedgerEntry{}, err
	}
	return updated, NewLedgerEntry(a.ID, EntryTransferIn, amount, &correlationID, &counterparty), nil
}

func (a Account) credit(amount Money) (Account, error) {
	if err := a.validateAmount(amount); err != nil {
		return Account{}, err
	}
	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return Account{}, err
	}
	a.Balance = newBalance
	a.Version++
	return a, nil
}

func (a Account) debit(amount Money) (Account, error) {
	if err := a.validateAmount(amount); err != nil {
		return Account{}, err
	}
	exceeds, err := amount.GreaterThan(a.Balance)
	if err != nil {
		return Account{}, err
	}
	if exceeds {
		return Account{}, NewInsufficientFundsError(a.Balance.AmountCents, amount.AmountCents)
	}
	newBalance, err := a.Balance.Subtract(amount)
	if err != nil {
		return Account{}, err
	}
	a.Balance = newBalance
	a.Version++
	return a, nil
}

func (a Account) validateAmount(amount Money) error {
	if amount.AmountCents <= 0 {
		return NewInvalidTransactionAmountError(amount.AmountCents)
	}
	if amount.Currency != a.Balance.Currency {
		return NewCurrencyMismatchError(amount.Currency, a.Balance.Currency)
	}
	return nil
}

// Reconstitute rebuilds an account loaded from storage.
func Reconstitute(id AccountID, number AccountNumber, balance Money, version int64) Account {
	return Account{
		ID:      id,
		Number:  number,
		Balance: balance,
		Version: version,
	}
}
