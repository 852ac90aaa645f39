package domain

import (
	"strings"

	"github.com/google/uuid"
)

const (
	accountNumberMinLen = 6
	accountNumberMaxLen = 12
)

// AccountNumber is the customer-facing account identifier: 6 to 12 digits.
type AccountNumber string

// NewAccountNumber validates and normalizes a raw account number string.
func NewAccountNumber(value string) (AccountNumber, error) {
	normalized := strings.TrimSpace(value)

	if len(normalized) < accountNumberMinLen || len(normalized) > accountNumberMaxLen {
		return "", NewInvalidAccountNumberError("account number must be between 6 and 12 digits long")
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return "", NewInvalidAccountNumberError("account number must contain only digits")
		}
	}
	return AccountNumber(normalized), nil
}

func (n AccountNumber) String() string {
	return string(n)
}

// AccountID is the opaque unique identifier of an account, never reused.
type AccountID uuid.UUID

func NewAccountID() AccountID {
	return AccountID(uuid.New())
}

func ParseAccountID(value string) (AccountID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return AccountID{}, err
	}
	return AccountID(id), nil
}

func (id AccountID) String() string {
	return uuid.UUID(id).String()
}
