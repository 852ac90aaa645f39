package services

import (
	"context"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/domain"
)

// QueryService serves the read-only use cases. No locking and no version
// checks: reads observe whatever state last committed.
type QueryService struct {
	tx application.TxManager
}

func NewQueryService(tx application.TxManager) *QueryService {
	return &QueryService{tx: tx}
}

func (s *QueryService) GetBalance(ctx context.Context, accountNumber string) (*BalanceResult, error) {
	number, err := domain.NewAccountNumber(accountNumber)
	if err != nil {
		return nil, err
	}

	var result *BalanceResult
	err = s.tx.WithinTx(ctx, func(ctx context.Context, uow application.UnitOfWork) error {
		account, err := uow.Accounts().FindByNumber(ctx, number)
		if err != nil {
			return err
		}
		if account == nil {
			return application.NewAccountNotFoundError(number.String())
		}

		result = &BalanceResult{
			AccountNumber: account.Number.String(),
			BalanceCents:  account.Balance.AmountCents,
			Currency:      account.Balance.Currency,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetTransactions returns the account's ledger entries, most recent first.
func (s *QueryService) GetTransactions(ctx context.Context, accountNumber string) ([]LedgerEntryResult, error) {
	number, err := domain.NewAccountNumber(accountNumber)
	if err != nil {
		return nil, err
	}

	var results []LedgerEntryResult
	err = s.tx.WithinTx(ctx, func(ctx context.Context, uow application.UnitOfWork) error {
		account, err := uow.Accounts().FindByNumber(ctx, number)
		if err != nil {
			return err
		}
		if account == nil {
			return application.NewAccountNotFoundError(number.String())
		}

		entries, err := uow.Ledger().ListByAccount(ctx, account.ID)
		if err != nil {
			return err
		}

		results = make([]LedgerEntryResult, 0, len(entries))
		for _, entry := range entries {
			results = append(results, newLedgerEntryResult(entry))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
