package models

type CartItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Quantity    int     `json:"quantity"`
	Weight      float64 `json:"weight,omitempty"`
}

// Product converts the cart entry into the checkout line item shape.
func (ci CartItem) Product() Product {
	return Product{
		ID:          ci.ID,
		Description: ci.Description,
		Amount:      ci.Amount,
		Quantity:    ci.Quantity,
		Weight:      ci.Weight,
	}
}

type CartUpdate struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

type CartResponse struct {
	Items        []CartItem `json:"items"`
	CartSubtotal float64    `json:"cart_subtotal"`
	ItemCount    int        `json:"item_count"`
}
