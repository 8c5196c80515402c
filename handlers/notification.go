package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"pagseguro-checkout-api/models"
	"pagseguro-checkout-api/services/pagseguro"
	"pagseguro-checkout-api/utils"
)

// TransactionFinder is the slice of the gateway client the notification
// and lookup handlers depend on.
type TransactionFinder interface {
	FindByNotificationCode(ctx context.Context, notificationCode string) (*models.Transaction, error)
	FindByTransactionCode(ctx context.Context, code string) (*models.Transaction, error)
}

type NotificationHandler struct {
	gateway TransactionFinder
}

func NewNotificationHandler(gateway TransactionFinder) *NotificationHandler {
	return &NotificationHandler{gateway: gateway}
}

// HandleNotification receives the gateway's notification POST. The
// notificationCode posted by the gateway is read here and handed to the
// library explicitly; the library itself never touches request state.
func (h *NotificationHandler) HandleNotification(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Error().Err(err).Msg("error parsing notification form")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	notificationCode := r.FormValue("notificationCode")
	if notificationCode == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "Missing notificationCode")
		return
	}

	transaction, err := h.gateway.FindByNotificationCode(r.Context(), notificationCode)
	if err != nil {
		writeGatewayError(w, notificationCode, err)
		return
	}

	log.Info().
		Str("notification_code", notificationCode).
		Str("transaction_code", transaction.Code).
		Str("reference", transaction.Reference).
		Str("status", transaction.Status.Label()).
		Msg("notification resolved")

	utils.SendSuccessResponse(w, models.APIResponse{
		Status: "success",
		Data:   models.NewTransactionView(transaction),
	})
}

func writeGatewayError(w http.ResponseWriter, code string, err error) {
	var (
		validationErr    *pagseguro.ValidationError
		authorizationErr *pagseguro.AuthorizationError
		parseErr         *pagseguro.ParseError
		transportErr     *pagseguro.TransportError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &authorizationErr):
		log.Warn().Str("code", code).Msg("gateway rejected lookup code")
		utils.SendErrorResponse(w, http.StatusForbidden, "Gateway rejected the lookup code")
	case errors.As(err, &parseErr):
		log.Error().Err(err).Str("code", code).Msg("unparseable gateway response")
		utils.SendErrorResponse(w, http.StatusBadGateway, "Unexpected gateway response")
	case errors.As(err, &transportErr):
		log.Error().Err(err).Str("code", code).Msg("gateway unreachable")
		utils.SendErrorResponse(w, http.StatusBadGateway, "Gateway unreachable")
	default:
		log.Error().Err(err).Str("code", code).Msg("transaction lookup failed")
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Transaction lookup failed")
	}
}
