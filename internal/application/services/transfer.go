package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/domain"
	"github.com/google/uuid"
)

// TransferService moves money between two accounts atomically. Both sides of
// the transfer are persisted in one transaction boundary together with their
// two ledger entries, which share a single correlation id.
type TransferService struct {
	tx          application.TxManager
	maxAttempts int
	logger      *slog.Logger
}

func NewTransferService(tx application.TxManager, maxAttempts int, logger *slog.Logger) *TransferService {
	return &TransferService{
		tx:          tx,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (s *TransferService) Transfer(ctx context.Context, cmd TransferCommand) (*TransferResult, error) {
	sourceNumber, err := domain.NewAccountNumber(cmd.FromAccountNumber)
	if err != nil {
		return nil, err
	}
	destinationNumber, err := domain.NewAccountNumber(cmd.ToAccountNumber)
	if err != nil {
		return nil, err
	}
	if sourceNumber == destinationNumber {
		return nil, domain.NewSameAccountTransferError(sourceNumber)
	}
	amount, err := domain.NewMoney(cmd.AmountCents, cmd.Currency)
	if err != nil {
		return nil, err
	}

	correlationID := uuid.New()

	var result *TransferResult
	err = runWithRetries(ctx, s.logger, "transfer", s.maxAttempts, func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context, uow application.UnitOfWork) error {
			source, destination, err := s.loadPairForUpdate(ctx, uow, sourceNumber, destinationNumber)
			if err != nil {
				return err
			}

			updatedSource, outEntry, err := source.ApplyOutgoingTransfer(amount, destinationNumber, correlationID)
			if err != nil {
				return err
			}
			updatedDestination, inEntry, err := destination.ApplyIncomingTransfer(amount, sourceNumber, correlationID)
			if err != nil {
				return err
			}

			if err := uow.Accounts().Save(ctx, updatedSource); err != nil {
				return err
			}
			if err := uow.Accounts().Save(ctx, updatedDestination); err != nil {
				return err
			}
			if err := uow.Ledger().Append(ctx, outEntry); err != nil {
				return err
			}
			if err := uow.Ledger().Append(ctx, inEntry); err != nil {
				return err
			}

			result = &TransferResult{
				CorrelationID:     correlationID,
				FromAccountNumber: updatedSource.Number.String(),
				ToAccountNumber:   updatedDestination.Number.String(),
				FromBalanceCents:  updatedSource.Balance.AmountCents,
				ToBalanceCents:    updatedDestination.Balance.AmountCents,
				Currency:          amount.Currency,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transfer succeeded",
		"correlation_id", correlationID.String(),
		"from_account_number", result.FromAccountNumber,
		"to_account_number", result.ToAccountNumber,
		"amount_cents", amount.AmountCents,
	)
	return result, nil
}

// loadPairForUpdate acquires both accounts in ascending account-number order,
// independent of transfer direction. Two concurrent transfers over the same
// pair therefore never lock the accounts in opposite order, which would
// deadlock under a row-locking backend.
func (s *TransferService) loadPairForUpdate(
	ctx context.Context,
	uow application.UnitOfWork,
	sourceNumber, destinationNumber domain.AccountNumber,
) (source, destination *domain.Account, err error) {
	lower, higher := sourceNumber, destinationNumber
	if higher < lower {
		lower, higher = higher, lower
	}

	lowerAccount, err := uow.Accounts().FindByNumberForUpdate(ctx, lower)
	if err != nil {
		return nil, nil, err
	}
	higherAccount, err := uow.Accounts().FindByNumberForUpdate(ctx, higher)
	if err != nil {
		return nil, nil, err
	}
	if lowerAccount == nil {
		return nil, nil, application.NewAccountNotFoundError(lower.String())
	}
	if higherAccount == nil {
		return nil, nil, application.NewAccountNotFoundError(higher.String())
	}

	if lowerAccount.Number == sourceNumber {
		return lowerAccount, higherAccount, nil
	}
	return higherAccount, lowerAccount, nil
}
