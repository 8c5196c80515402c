package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"pagseguro-checkout-api/models"
	"pagseguro-checkout-api/utils"
)

type TransactionHandler struct {
	gateway TransactionFinder
}

func NewTransactionHandler(gateway TransactionFinder) *TransactionHandler {
	return &TransactionHandler{gateway: gateway}
}

// GetTransaction looks a transaction up by its gateway code.
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	transaction, err := h.gateway.FindByTransactionCode(r.Context(), code)
	if err != nil {
		writeGatewayError(w, code, err)
		return
	}

	log.Info().
		Str("transaction_code", transaction.Code).
		Str("status", transaction.Status.Label()).
		Msg("transaction fetched")

	utils.SendSuccessResponse(w, models.APIResponse{
		Status: "success",
		Data:   models.NewTransactionView(transaction),
	})
}
