package testhelpers

import (
	"context"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/DanielPopoola/zkybank/internal/application/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// OpenAccount creates a real account through AccountService and returns its
// account number.
func OpenAccount(
	t *testing.T,
	ctx context.Context,
	accountService *services.AccountService,
	number string,
	initialBalanceCents int64,
) string {
	cmd := services.CreateAccountCommand{
		AccountNumber:       number,
		InitialBalanceCents: initialBalanceCents,
		Currency:            "USD",
	}

	result, err := accountService.CreateAccount(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, number, result.AccountNumber)

	return result.AccountNumber
}

// RandomAccountNumber returns a unique nine digit account number.
func RandomAccountNumber() string {
	u := uuid.New()
	return fmt.Sprintf("%09d", binary.BigEndian.Uint32(u[:4])%1_000_000_000)
}
