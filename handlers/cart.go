// handlers/cart.go
package handlers

import (
	"encoding/gob"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"

	"pagseguro-checkout-api/config"
	"pagseguro-checkout-api/models"
	"pagseguro-checkout-api/utils"
)

const cartSessionName = "cart-session"

func init() {
	gob.Register([]models.CartItem{})
}

// NewSessionStore builds the cookie store shared by the cart and checkout
// handlers.
func NewSessionStore(cfg config.SessionConfig) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   cfg.MaxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

type CartHandler struct {
	store *sessions.CookieStore
}

func NewCartHandler(store *sessions.CookieStore) *CartHandler {
	return &CartHandler{store: store}
}

func (h *CartHandler) sessionCart(r *http.Request) (*sessions.Session, []models.CartItem, error) {
	session, err := h.store.Get(r, cartSessionName)
	if err != nil {
		return nil, nil, err
	}
	cart, ok := session.Values["cart"].([]models.CartItem)
	if !ok {
		cart = []models.CartItem{}
	}
	return session, cart, nil
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	session, cart, err := h.sessionCart(r)
	if err != nil {
		log.Error().Err(err).Msg("error getting cart session")
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if item.ID == "" || item.Description == "" || item.Quantity < 1 {
		utils.SendErrorResponse(w, http.StatusBadRequest, "Item needs id, description and quantity >= 1")
		return
	}

	// Atualiza quantidade se o item já existe ou adiciona novo item.
	found := false
	for i, cartItem := range cart {
		if cartItem.ID == item.ID {
			cart[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, item)
	}

	session.Values["cart"] = cart
	if err := session.Save(r, w); err != nil {
		log.Error().Err(err).Msg("error saving cart session")
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	session, cart, err := h.sessionCart(r)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	var update models.CartUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated := false
	for i, cartItem := range cart {
		if cartItem.ID != update.ID {
			continue
		}
		switch update.Action {
		case "increase":
			cart[i].Quantity++
		case "decrease":
			cart[i].Quantity--
			if cart[i].Quantity < 1 {
				cart = append(cart[:i], cart[i+1:]...)
			}
		default:
			utils.SendErrorResponse(w, http.StatusBadRequest, "Unknown action")
			return
		}
		updated = true
		break
	}
	if !updated {
		utils.SendErrorResponse(w, http.StatusNotFound, "Item not in cart")
		return
	}

	session.Values["cart"] = cart
	if err := session.Save(r, w); err != nil {
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	h.writeCart(w, cart)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	_, cart, err := h.sessionCart(r)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}
	h.writeCart(w, cart)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	session, cart, err := h.sessionCart(r)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	var update models.CartUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	for i, cartItem := range cart {
		if cartItem.ID == update.ID {
			cart = append(cart[:i], cart[i+1:]...)
			break
		}
	}

	session.Values["cart"] = cart
	if err := session.Save(r, w); err != nil {
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	h.writeCart(w, cart)
}

func (h *CartHandler) writeCart(w http.ResponseWriter, cart []models.CartItem) {
	resp := models.CartResponse{Items: cart}
	for _, item := range cart {
		resp.CartSubtotal += item.Amount * float64(item.Quantity)
		resp.ItemCount += item.Quantity
	}
	utils.SendSuccessResponse(w, models.APIResponse{
		Status: "success",
		Data:   resp,
	})
}
