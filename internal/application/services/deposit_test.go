package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/application/services"
	"github.com/DanielPopoola/zkybank/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositService_Deposit(t *testing.T) {
	t.Run("credits balance, bumps version, appends one entry", func(t *testing.T) {
		store := services.NewMockTxManager()
		account := seedAccount(t, store, "000001", 10000)
		svc := services.NewDepositService(store, 3, newTestLogger())

		result, err := svc.Deposit(context.Background(), services.DepositCommand{
			AccountNumber: "000001",
			AmountCents:   500,
			Currency:      "BRL",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(10500), result.BalanceCents)

		stored, _ := store.Account("000001")
		assert.Equal(t, int64(1), stored.Version)

		entries := store.EntriesFor(account.ID)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.EntryDeposit, entries[0].Type)
		assert.Equal(t, int64(500), entries[0].Amount.AmountCents)
	})

	t.Run("unknown account fails with not found", func(t *testing.T) {
		store := services.NewMockTxManager()
		svc := services.NewDepositService(store, 3, newTestLogger())

		_, err := svc.Deposit(context.Background(), services.DepositCommand{
			AccountNumber: "999999",
			AmountCents:   500,
			Currency:      "BRL",
		})

		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodeAccountNotFound, svcErr.Code)
	})

	t.Run("zero amount leaves balance, version and ledger unchanged", func(t *testing.T) {
		store := services.NewMockTxManager()
		account := seedAccount(t, store, "000001", 10000)
		svc := services.NewDepositService(store, 3, newTestLogger())

		_, err := svc.Deposit(context.Background(), services.DepositCommand{
			AccountNumber: "000001",
			AmountCents:   0,
			Currency:      "BRL",
		})

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidTransactionAmount))

		stored, _ := store.Account("000001")
		assert.Equal(t, int64(10000), stored.Balance.AmountCents)
		assert.Equal(t, int64(0), stored.Version)
		assert.Empty(t, store.EntriesFor(account.ID))
	})

	t.Run("currency mismatch is rejected before any write", func(t *testing.T) {
		store := services.NewMockTxManager()
		seedAccount(t, store, "000001", 10000)
		svc := services.NewDepositService(store, 3, newTestLogger())

		_, err := svc.Deposit(context.Background(), services.DepositCommand{
			AccountNumber: "000001",
			AmountCents:   500,
			Currency:      "USD",
		})

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidMoney))
		assert.Equal(t, 0, store.EntryCount())
	})

	t.Run("exhausted retries surface CONCURRENCY_EXHAUSTED", func(t *testing.T) {
		store := services.NewMockTxManager()
		seedAccount(t, store, "000001", 10000)
		store.ForceSaveConflicts(3)
		svc := services.NewDepositService(store, 3, newTestLogger())

		_, err := svc.Deposit(context.Background(), services.DepositCommand{
			AccountNumber: "000001",
			AmountCents:   500,
			Currency:      "BRL",
		})

		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodeConcurrencyExhausted, svcErr.Code)

		// durable state untouched after the failed attempts
		stored, _ := store.Account("000001")
		assert.Equal(t, int64(10000), stored.Balance.AmountCents)
		assert.Equal(t, int64(0), stored.Version)
		assert.Equal(t, 0, store.EntryCount())
	})

	t.Run("recovers when a conflict clears before the bound", func(t *testing.T) {
		store := services.NewMockTxManager()
		seedAccount(t, store, "000001", 10000)
		store.ForceSaveConflicts(2)
		svc := services.NewDepositService(store, 3, newTestLogger())

		result, err := svc.Deposit(context.Background(), services.DepositCommand{
			AccountNumber: "000001",
			AmountCents:   500,
			Currency:      "BRL",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(10500), result.BalanceCents)
	})
}
