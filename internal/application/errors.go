package application

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrConcurrencyConflict signals that a version-checked save observed a stale
// version. It is recovered by re-running the whole use-case cycle; callers
// only ever see it as CONCURRENCY_EXHAUSTED once the retry bound is spent.
var ErrConcurrencyConflict = errors.New("account version conflict")

// ErrDuplicateAccountNumber is returned by AccountRepository.Create when the
// account number is already taken.
var ErrDuplicateAccountNumber = errors.New("account number already exists")

// ServiceError is an application-level failure with a stable code the
// transport layer can map to a response.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeAccountNotFound      = "ACCOUNT_NOT_FOUND"
	ErrCodeAccountAlreadyExists = "ACCOUNT_ALREADY_EXISTS"
	ErrCodeConcurrencyExhausted = "CONCURRENCY_EXHAUSTED"
	ErrCodeInvalidRequest       = "INVALID_REQUEST"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

func NewAccountNotFoundError(number string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeAccountNotFound,
		Message:    fmt.Sprintf("account with number %s not found", number),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewAccountAlreadyExistsError(number string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeAccountAlreadyExists,
		Message:    fmt.Sprintf("account with number %s already exists", number),
		HTTPStatus: http.StatusConflict,
	}
}

func NewConcurrencyExhaustedError(operation string, attempts int) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConcurrencyExhausted,
		Message:    fmt.Sprintf("%s failed after %d attempts due to concurrent updates", operation, attempts),
		HTTPStatus: http.StatusConflict,
		Err:        ErrConcurrencyConflict,
	}
}

func NewInvalidRequestError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidRequest,
		Message:    "malformed request",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsServiceError unwraps err into a ServiceError when possible.
func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
