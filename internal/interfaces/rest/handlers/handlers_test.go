package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/zkybank/internal/application/services"
	"github.com/DanielPopoola/zkybank/internal/domain"
	"github.com/DanielPopoola/zkybank/internal/interfaces/rest/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *services.MockTxManager) {
	t.Helper()

	store := services.NewMockTxManager()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := handlers.NewHandlers(
		services.NewAccountService(store, logger),
		services.NewDepositService(store, 3, logger),
		services.NewWithdrawService(store, 3, logger),
		services.NewTransferService(store, 3, logger),
		services.NewQueryService(store),
		logger,
	)

	mux := http.NewServeMux()
	h.Register(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, store
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func TestCreateAccount_Returns201(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/accounts", map[string]any{
		"account_number":        "00012345",
		"initial_balance_cents": 10000,
		"currency":              "USD",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "00012345", data["account_number"])
	assert.Equal(t, float64(10000), data["balance_cents"])
	assert.Equal(t, "USD", data["currency"])
	assert.NotEmpty(t, data["account_id"])
}

func TestCreateAccount_InvalidNumberReturns400(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/accounts", map[string]any{
		"account_number":        "abc",
		"initial_balance_cents": 0,
		"currency":              "USD",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])

	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_ACCOUNT_NUMBER", errDetail["code"])
}

func TestCreateAccount_MalformedBodyReturns400(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/accounts", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_REQUEST", errDetail["code"])
}

func TestCreateAccount_DuplicateReturns409(t *testing.T) {
	server, _ := newTestServer(t)

	first := postJSON(t, server.URL+"/accounts", map[string]any{
		"account_number":        "00012345",
		"initial_balance_cents": 0,
		"currency":              "USD",
	})
	require.Equal(t, http.StatusCreated, first.StatusCode)
	first.Body.Close()

	second := postJSON(t, server.URL+"/accounts", map[string]any{
		"account_number":        "00012345",
		"initial_balance_cents": 0,
		"currency":              "USD",
	})
	assert.Equal(t, http.StatusConflict, second.StatusCode)

	body := decodeBody(t, second)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", errDetail["code"])
}

func TestDepositAndBalance(t *testing.T) {
	server, store := newTestServer(t)
	seedTestAccount(t, store, "00012345", 10000)

	resp := postJSON(t, server.URL+"/accounts/00012345/deposit", map[string]any{
		"amount_cents": 2500,
		"currency":     "USD",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(12500), data["balance_cents"])

	balanceResp, err := http.Get(server.URL + "/accounts/00012345/balance")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, balanceResp.StatusCode)

	balanceBody := decodeBody(t, balanceResp)
	balanceData := balanceBody["data"].(map[string]any)
	assert.Equal(t, float64(12500), balanceData["balance_cents"])
}

func TestWithdraw_InsufficientFundsReturns422(t *testing.T) {
	server, store := newTestServer(t)
	seedTestAccount(t, store, "00012345", 100)

	resp := postJSON(t, server.URL+"/accounts/00012345/withdraw", map[string]any{
		"amount_cents": 500,
		"currency":     "USD",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errDetail["code"])
}

func TestGetBalance_UnknownAccountReturns404(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/accounts/99999999/balance")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", errDetail["code"])
}

func TestTransfer_ReturnsBothBalances(t *testing.T) {
	server, store := newTestServer(t)
	seedTestAccount(t, store, "00012345", 10000)
	seedTestAccount(t, store, "00067890", 500)

	resp := postJSON(t, server.URL+"/transfers", map[string]any{
		"from_account_number": "00012345",
		"to_account_number":   "00067890",
		"amount_cents":        2500,
		"currency":            "USD",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(7500), data["from_balance_cents"])
	assert.Equal(t, float64(3000), data["to_balance_cents"])
	assert.NotEmpty(t, data["correlation_id"])
}

func TestTransfer_SameAccountReturns422(t *testing.T) {
	server, store := newTestServer(t)
	seedTestAccount(t, store, "00012345", 10000)

	resp := postJSON(t, server.URL+"/transfers", map[string]any{
		"from_account_number": "00012345",
		"to_account_number":   "00012345",
		"amount_cents":        100,
		"currency":            "USD",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "SAME_ACCOUNT_TRANSFER", errDetail["code"])
}

func TestGetTransactions_ListsEntries(t *testing.T) {
	server, store := newTestServer(t)
	seedTestAccount(t, store, "00012345", 10000)

	deposit := postJSON(t, server.URL+"/accounts/00012345/deposit", map[string]any{
		"amount_cents": 500,
		"currency":     "USD",
	})
	require.Equal(t, http.StatusOK, deposit.StatusCode)
	deposit.Body.Close()

	resp, err := http.Get(server.URL + "/accounts/00012345/transactions")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	entries := body["data"].([]any)
	require.Len(t, entries, 1)

	entry := entries[0].(map[string]any)
	assert.Equal(t, "DEPOSIT", entry["entry_type"])
	assert.Equal(t, float64(500), entry["amount_cents"])
}

func seedTestAccount(t *testing.T, store *services.MockTxManager, number string, balanceCents int64) {
	t.Helper()

	accountNumber, err := domain.NewAccountNumber(number)
	require.NoError(t, err)
	money, err := domain.NewMoney(balanceCents, "USD")
	require.NoError(t, err)

	store.Seed(domain.OpenAccount(accountNumber, money))
}
