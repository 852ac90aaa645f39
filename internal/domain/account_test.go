package domain_test

import (
	"testing"

	"github.com/DanielPopoola/zkybank/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNumber(t *testing.T, value string) domain.AccountNumber {
	t.Helper()
	number, err := domain.NewAccountNumber(value)
	require.NoError(t, err)
	return number
}

func mustMoney(t *testing.T, cents int64) domain.Money {
	t.Helper()
	money, err := domain.NewMoney(cents, "BRL")
	require.NoError(t, err)
	return money
}

func TestOpenAccount(t *testing.T) {
	account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 10000))

	assert.Equal(t, "000001", account.Number.String())
	assert.Equal(t, int64(10000), account.Balance.AmountCents)
	assert.Equal(t, int64(0), account.Version)
	assert.NotEqual(t, domain.AccountID{}, account.ID)
}

func TestAccount_Deposit(t *testing.T) {
	t.Run("credits balance and bumps version", func(t *testing.T) {
		account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 10000))

		updated, entry, err := account.Deposit(mustMoney(t, 500))

		require.NoError(t, err)
		assert.Equal(t, int64(10500), updated.Balance.AmountCents)
		assert.Equal(t, int64(1), updated.Version)
		assert.Equal(t, domain.EntryDeposit, entry.Type)
		assert.Equal(t, int64(500), entry.Amount.AmountCents)
		assert.Equal(t, account.ID, entry.AccountID)
		assert.Nil(t, entry.CorrelationID)
		assert.Nil(t, entry.CounterpartyNumber)

		// receiver unchanged
		assert.Equal(t, int64(10000), account.Balance.AmountCents)
		assert.Equal(t, int64(0), account.Version)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 10000))

		_, _, err := account.Deposit(domain.ZeroMoney("BRL"))
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidTransactionAmount))
	})

	t.Run("rejects currency mismatch", func(t *testing.T) {
		account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 10000))
		usd, _ := domain.NewMoney(500, "USD")

		_, _, err := account.Deposit(usd)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidMoney))
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("debits balance and bumps version", func(t *testing.T) {
		account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 10500))

		updated, entry, err := account.Withdraw(mustMoney(t, 200))

		require.NoError(t, err)
		assert.Equal(t, int64(10300), updated.Balance.AmountCents)
		assert.Equal(t, int64(1), updated.Version)
		assert.Equal(t, domain.EntryWithdrawal, entry.Type)
	})

	t.Run("allows withdrawing the full balance", func(t *testing.T) {
		account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 300))

		updated, _, err := account.Withdraw(mustMoney(t, 300))

		require.NoError(t, err)
		assert.True(t, updated.Balance.IsZero())
	})

	t.Run("insufficient funds leaves the account untouched", func(t *testing.T) {
		account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 10300))

		_, _, err := account.Withdraw(mustMoney(t, 20000))

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInsufficientFunds))
		assert.Equal(t, int64(10300), account.Balance.AmountCents)
		assert.Equal(t, int64(0), account.Version)
	})
}

func TestAccount_Transfers(t *testing.T) {
	correlationID := uuid.New()
	counterparty := "000002"

	t.Run("outgoing transfer records counterparty and correlation", func(t *testing.T) {
		account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 10300))

		updated, entry, err := account.ApplyOutgoingTransfer(mustMoney(t, 500), mustNumber(t, counterparty), correlationID)

		require.NoError(t, err)
		assert.Equal(t, int64(9800), updated.Balance.AmountCents)
		assert.Equal(t, int64(1), updated.Version)
		assert.Equal(t, domain.EntryTransferOut, entry.Type)
		require.NotNil(t, entry.CorrelationID)
		assert.Equal(t, correlationID, *entry.CorrelationID)
		require.NotNil(t, entry.CounterpartyNumber)
		assert.Equal(t, counterparty, entry.CounterpartyNumber.String())
	})

	t.Run("incoming transfer mirrors the outgoing side", func(t *testing.T) {
		account := domain.OpenAccount(mustNumber(t, "000002"), domain.ZeroMoney("BRL"))

		updated, entry, err := account.ApplyIncomingTransfer(mustMoney(t, 500), mustNumber(t, "000001"), correlationID)

		require.NoError(t, err)
		assert.Equal(t, int64(500), updated.Balance.AmountCents)
		assert.Equal(t, domain.EntryTransferIn, entry.Type)
		require.NotNil(t, entry.CorrelationID)
		assert.Equal(t, correlationID, *entry.CorrelationID)
	})

	t.Run("outgoing transfer with insufficient funds fails", func(t *testing.T) {
		account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 100))

		_, _, err := account.ApplyOutgoingTransfer(mustMoney(t, 500), mustNumber(t, counterparty), correlationID)

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInsufficientFunds))
	})
}

func TestAccount_VersionIncrementsByOnePerOperation(t *testing.T) {
	account := domain.OpenAccount(mustNumber(t, "000001"), mustMoney(t, 1000))

	var err error
	for i := 1; i <= 5; i++ {
		account, _, err = account.Deposit(mustMoney(t, 100))
		require.NoError(t, err)
		assert.Equal(t, int64(i), account.Version)
	}
	assert.Equal(t, int64(1500), account.Balance.AmountCents)
}
