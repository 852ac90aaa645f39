package handlers

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/application/services"
	"github.com/DanielPopoola/zkybank/internal/interfaces/rest"
)

type createAccountRequest struct {
	AccountNumber       string `json:"account_number"`
	InitialBalanceCents int64  `json:"initial_balance_cents"`
	Currency            string `json:"currency"`
}

type accountResponse struct {
	AccountID     string `json:"account_id"`
	AccountNumber string `json:"account_number"`
	BalanceCents  int64  `json:"balance_cents"`
	Currency      string `json:"currency"`
}

type balanceResponse struct {
	AccountNumber string `json:"account_number"`
	BalanceCents  int64  `json:"balance_cents"`
	Currency      string `json:"currency"`
}

type amountRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

type ledgerEntryResponse struct {
	EntryID                   string    `json:"entry_id"`
	EntryType                 string    `json:"entry_type"`
	AmountCents               int64     `json:"amount_cents"`
	Currency                  string    `json:"currency"`
	CorrelationID             *string   `json:"correlation_id,omitempty"`
	CounterpartyAccountNumber *string   `json:"counterparty_account_number,omitempty"`
	OccurredAt                time.Time `json:"occurred_at"`
}

func (h *Handlers) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, application.NewInvalidRequestError(err), h.logger)
		return
	}

	result, err := h.accountService.CreateAccount(r.Context(), services.CreateAccountCommand{
		AccountNumber:       req.AccountNumber,
		InitialBalanceCents: req.InitialBalanceCents,
		Currency:            req.Currency,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, accountResponse{
		AccountID:     result.AccountID,
		AccountNumber: result.AccountNumber,
		BalanceCents:  result.BalanceCents,
		Currency:      result.Currency,
	})
}

func (h *Handlers) GetBalance(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")

	result, err := h.queryService.GetBalance(r.Context(), number)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, balanceResponse{
		AccountNumber: result.AccountNumber,
		BalanceCents:  result.BalanceCents,
		Currency:      result.Currency,
	})
}

func (h *Handlers) Deposit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, application.NewInvalidRequestError(err), h.logger)
		return
	}

	result, err := h.depositService.Deposit(r.Context(), services.DepositCommand{
		AccountNumber: r.PathValue("number"),
		AmountCents:   req.AmountCents,
		Currency:      req.Currency,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, balanceResponse{
		AccountNumber: result.AccountNumber,
		BalanceCents:  result.BalanceCents,
		Currency:      result.Currency,
	})
}

func (h *Handlers) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, application.NewInvalidRequestError(err), h.logger)
		return
	}

	result, err := h.withdrawService.Withdraw(r.Context(), services.WithdrawCommand{
		AccountNumber: r.PathValue("number"),
		AmountCents:   req.AmountCents,
		Currency:      req.Currency,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, balanceResponse{
		AccountNumber: result.AccountNumber,
		BalanceCents:  result.BalanceCents,
		Currency:      result.Currency,
	})
}

func (h *Handlers) GetTransactions(w http.ResponseWriter, r *http.Request) {
	entries, err := h.queryService.GetTransactions(r.Context(), r.PathValue("number"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	response := make([]ledgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		item := ledgerEntryResponse{
			EntryID:                   entry.EntryID.String(),
			EntryType:                 string(entry.EntryType),
			AmountCents:               entry.AmountCents,
			Currency:                  entry.Currency,
			CounterpartyAccountNumber: entry.CounterpartyAccountNumber,
			OccurredAt:                entry.OccurredAt,
		}
		if entry.CorrelationID != nil {
			id := entry.CorrelationID.String()
			item.CorrelationID = &id
		}
		response = append(response, item)
	}

	rest.WriteJSON(w, http.StatusOK, response)
}
