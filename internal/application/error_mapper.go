package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/zkybank/internal/domain"
)

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodeInvalidMoney),
		domain.IsErrorCode(err, domain.ErrCodeInvalidAccountNumber),
		domain.IsErrorCode(err, domain.ErrCodeInvalidTransactionAmount):
		return http.StatusBadRequest

	case domain.IsErrorCode(err, domain.ErrCodeInsufficientFunds),
		domain.IsErrorCode(err, domain.ErrCodeSameAccountTransfer):
		return http.StatusUnprocessableEntity

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode returns the stable error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	return ErrCodeInternal
}
