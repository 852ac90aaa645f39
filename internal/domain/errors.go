package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business rule violation
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation and business-rule error codes
const (
	ErrCodeInvalidMoney             = "INVALID_MONEY"
	ErrCodeInvalidAccountNumber     = "INVALID_ACCOUNT_NUMBER"
	ErrCodeInvalidTransactionAmount = "INVALID_TRANSACTION_AMOUNT"
	ErrCodeInsufficientFunds        = "INSUFFICIENT_FUNDS"
	ErrCodeSameAccountTransfer      = "SAME_ACCOUNT_TRANSFER"
)

func NewInvalidMoneyError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidMoney,
		Message: message,
	}
}

func NewCurrencyMismatchError(have, want string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidMoney,
		Message: fmt.Sprintf("currency mismatch: %s vs %s", have, want),
	}
}

func NewInvalidAccountNumberError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAccountNumber,
		Message: message,
	}
}

func NewInvalidTransactionAmountError(amountCents int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransactionAmount,
		Message: fmt.Sprintf("transaction amount must be greater than zero, got %d", amountCents),
	}
}

func NewInsufficientFundsError(balanceCents, amountCents int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInsufficientFunds,
		Message: fmt.Sprintf("insufficient funds: balance %d, requested %d", balanceCents, amountCents),
	}
}

func NewSameAccountTransferError(number AccountNumber) *DomainError {
	return &DomainError{
		Code:    ErrCodeSameAccountTransfer,
		Message: fmt.Sprintf("cannot transfer from account %s to itself", number),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
