package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"

	"pagseguro-checkout-api/models"
	"pagseguro-checkout-api/services/pagseguro"
	"pagseguro-checkout-api/utils"
)

type CheckoutHandler struct {
	gateway *pagseguro.Client
	store   *sessions.CookieStore
}

func NewCheckoutHandler(gateway *pagseguro.Client, store *sessions.CookieStore) *CheckoutHandler {
	return &CheckoutHandler{gateway: gateway, store: store}
}

type checkoutRequest struct {
	Reference string            `json:"reference"`
	Customer  map[string]string `json:"customer"`
	Products  []models.Product  `json:"products"`
}

// RenderForm builds a payment form from the request body. Products default
// to the session cart when the body carries none; a missing reference gets
// a generated one. Returns the HTML fragment plus the reference used.
func (h *CheckoutHandler) RenderForm(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	products := req.Products
	if len(products) == 0 {
		session, err := h.store.Get(r, cartSessionName)
		if err == nil {
			if cart, ok := session.Values["cart"].([]models.CartItem); ok {
				for _, item := range cart {
					products = append(products, item.Product())
				}
			}
		}
	}
	if len(products) == 0 {
		utils.SendErrorResponse(w, http.StatusBadRequest, "No products in request or cart")
		return
	}

	reference := req.Reference
	if reference == "" {
		reference = uuid.NewString()
	}

	checkout := h.gateway.NewCheckout()
	if err := checkout.SetReference(reference); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Customer != nil {
		if err := checkout.SetCustomer(req.Customer); err != nil {
			utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	checkout.SetProducts(products...)

	form, err := checkout.PaymentForm(nil)
	if err != nil {
		var verr *pagseguro.ValidationError
		if errors.As(err, &verr) {
			utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("error rendering payment form")
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not render payment form")
		return
	}

	log.Info().Str("reference", reference).Int("products", len(products)).Msg("payment form rendered")

	utils.SendSuccessResponse(w, models.APIResponse{
		Status: "success",
		Data: map[string]string{
			"reference": reference,
			"form":      form,
		},
	})
}

// CheckoutPage serves a minimal merchant page embedding the payment form
// for the current session cart.
func (h *CheckoutHandler) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, cartSessionName)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	cart, _ := session.Values["cart"].([]models.CartItem)
	if len(cart) == 0 {
		utils.SendErrorResponse(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	products := make([]models.Product, 0, len(cart))
	for _, item := range cart {
		products = append(products, item.Product())
	}

	reference := r.URL.Query().Get("reference")
	if reference == "" {
		reference = uuid.NewString()
	}

	checkout := h.gateway.NewCheckout()
	if err := checkout.SetReference(reference); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	checkout.SetProducts(products...)

	form, err := checkout.PaymentForm(nil)
	if err != nil {
		log.Error().Err(err).Msg("error rendering checkout page")
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not render payment form")
		return
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Finalizar compra</title></head>
<body>
%s
</body>
</html>`, form)

	utils.SendHTMLResponse(w, http.StatusOK, page)
}
