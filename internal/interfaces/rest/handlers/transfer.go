package handlers

import (
	"net/http"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/application/services"
	"github.com/DanielPopoola/zkybank/internal/interfaces/rest"
)

type transferRequest struct {
	FromAccountNumber string `json:"from_account_number"`
	ToAccountNumber   string `json:"to_account_number"`
	AmountCents       int64  `json:"amount_cents"`
	Currency          string `json:"currency"`
}

type transferResponse struct {
	CorrelationID     string `json:"correlation_id"`
	FromAccountNumber string `json:"from_account_number"`
	ToAccountNumber   string `json:"to_account_number"`
	FromBalanceCents  int64  `json:"from_balance_cents"`
	ToBalanceCents    int64  `json:"to_balance_cents"`
	Currency          string `json:"currency"`
}

func (h *Handlers) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, application.NewInvalidRequestError(err), h.logger)
		return
	}

	result, err := h.transferService.Transfer(r.Context(), services.TransferCommand{
		FromAccountNumber: req.FromAccountNumber,
		ToAccountNumber:   req.ToAccountNumber,
		AmountCents:       req.AmountCents,
		Currency:          req.Currency,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, transferResponse{
		CorrelationID:     result.CorrelationID.String(),
		FromAccountNumber: result.FromAccountNumber,
		ToAccountNumber:   result.ToAccountNumber,
		FromBalanceCents:  result.FromBalanceCents,
		ToBalanceCents:    result.ToBalanceCents,
		Currency:          result.Currency,
	})
}
