package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/domain"
)

// WithdrawService debits an account inside a bounded optimistic-retry cycle.
type WithdrawService struct {
	tx          application.TxManager
	maxAttempts int
	logger      *slog.Logger
}

func NewWithdrawService(tx application.TxManager, maxAttempts int, logger *slog.Logger) *WithdrawService {
	return &WithdrawService{
		tx:          tx,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (s *WithdrawService) Withdraw(ctx context.Context, cmd WithdrawCommand) (*TransactionResult, error) {
	number, err := domain.NewAccountNumber(cmd.AccountNumber)
	if err != nil {
		return nil, err
	}
	amount, err := domain.NewMoney(cmd.AmountCents, cmd.Currency)
	if err != nil {
		return nil, err
	}

	var result *TransactionResult
	err = runWithRetries(ctx, s.logger, "withdraw", s.maxAttempts, func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context, uow application.UnitOfWork) error {
			account, err := uow.Accounts().FindByNumberForUpdate(ctx, number)
			if err != nil {
				return err
			}
			if account == nil {
				return application.NewAccountNotFoundError(number.String())
			}

			updated, entry, err := account.Withdraw(amount)
			if err != nil {
				return err
			}

			if err := uow.Accounts().Save(ctx, updated); err != nil {
				return err
			}
			if err := uow.Ledger().Append(ctx, entry); err != nil {
				return err
			}

			result = &TransactionResult{
				AccountNumber: updated.Number.String(),
				BalanceCents:  updated.Balance.AmountCents,
				Currency:      updated.Balance.Currency,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("withdraw succeeded",
		"account_number", result.AccountNumber,
		"amount_cents", amount.AmountCents,
		"balance_cents", result.BalanceCents,
	)
	return result, nil
}
