package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/domain"
)

// DepositService credits an account inside a bounded optimistic-retry cycle.
type DepositService struct {
	tx          application.TxManager
	maxAttempts int
	logger      *slog.Logger
}

func NewDepositService(tx application.TxManager, maxAttempts int, logger *slog.Logger) *DepositService {
	return &DepositService{
		tx:          tx,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (s *DepositService) Deposit(ctx context.Context, cmd DepositCommand) (*TransactionResult, error) {
	number, err := domain.NewAccountNumber(cmd.AccountNumber)
	if err != nil {
		return nil, err
	}
	amount, err := domain.NewMoney(cmd.AmountCents, cmd.Currency)
	if err != nil {
		return nil, err
	}

	var result *TransactionResult
	err = runWithRetries(ctx, s.logger, "deposit", s.maxAttempts, func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context, uow application.UnitOfWork) error {
			account, err := uow.Accounts().FindByNumberForUpdate(ctx, number)
			if err != nil {
				return err
			}
			if account == nil {
				return application.NewAccountNotFoundError(number.String())
			}

			updated, entry, err := account.Deposit(amount)
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

	s.logger.Info("deposit succeeded",
		"account_number", result.AccountNumber,
		"amount_cents", amount.AmountCents,
		"balance_cents", result.BalanceCents,
	)
	return result, nil
}
