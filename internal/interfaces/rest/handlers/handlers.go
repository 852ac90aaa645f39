package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/zkybank/internal/application/services"
)

// Handlers exposes the banking use cases over HTTP.
type Handlers struct {
	accountService  *services.AccountService
	depositService  *services.DepositService
	withdrawService *services.WithdrawService
	transferService *services.TransferService
	queryService    *services.QueryService
	logger          *slog.Logger
}

func NewHandlers(
	accountService *services.AccountService,
	depositService *services.DepositService,
	withdrawService *services.WithdrawService,
	transferService *services.TransferService,
	queryService *services.QueryService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		accountService:  accountService,
		depositService:  depositService,
		withdrawService: withdrawService,
		transferService: transferService,
		queryService:    queryService,
		logger:          logger,
	}
}

// Register attaches all routes to the mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /accounts", h.CreateAccount)
	mux.HandleFunc("GET /accounts/{number}/balance", h.GetBalance)
	mux.HandleFunc("POST /accounts/{number}/deposit", h.Deposit)
	mux.HandleFunc("POST /accounts/{number}/withdraw", h.Withdraw)
	mux.HandleFunc("GET /accounts/{number}/transactions", h.GetTransactions)
	mux.HandleFunc("POST /transfers", h.Transfer)
}
