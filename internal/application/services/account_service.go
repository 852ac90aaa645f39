package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/domain"
)

// AccountService opens new accounts.
type AccountService struct {
	tx     application.TxManager
	logger *slog.Logger
}

func NewAccountService(tx application.TxManager, logger *slog.Logger) *AccountService {
	return &AccountService{
		tx:     tx,
		logger: logger,
	}
}

// CreateAccount opens an account at version 0 with the given initial balance.
// Opening produces no ledger entry. Duplicate account numbers are rejected.
func (s *AccountService) CreateAccount(ctx context.Context, cmd CreateAccountCommand) (*AccountCreatedResult, error) {
	number, err := domain.NewAccountNumber(cmd.AccountNumber)
	if err != nil {
		return nil, err
	}
	initialBalance, err := domain.NewMoney(cmd.InitialBalanceCents, cmd.Currency)
	if err != nil {
		return nil, err
	}

	var account domain.Account
	err = s.tx.WithinTx(ctx, func(ctx context.Context, uow application.UnitOfWork) error {
		existing, err := uow.Accounts().FindByNumber(ctx, number)
		if err != nil {
			return err
		}
		if existing != nil {
			return application.NewAccountAlreadyExistsError(number.String())
		}

		account = domain.OpenAccount(number, initialBalance)

		if err := uow.Accounts().Create(ctx, account); err != nil {
			// The unique index is the authority; the pre-check above only
			// catches the common case before an insert is attempted.
			if errors.Is(err, application.ErrDuplicateAccountNumber) {
				return application.NewAccountAlreadyExistsError(number.String())
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		"account_number", account.Number.String(),
		"balance_cents", account.Balance.AmountCents,
		"currency", account.Balance.Currency,
	)

	return &AccountCreatedResult{
		AccountID:     account.ID.String(),
		AccountNumber: account.Number.String(),
		BalanceCents:  account.Balance.AmountCents,
		Currency:      account.Balance.Currency,
	}, nil
}
