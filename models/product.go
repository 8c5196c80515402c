package models

import "strconv"

// Product is one order line item. The gateway expects at least one item
// per checkout; quantities below 1 are rejected by the gateway itself, the
// library does not enforce them.
type Product struct {
	ID          string  `json:"id"`
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
	Quantity    int     `json:"quantidade"`
	Weight      float64 `json:"peso,omitempty"`
}

// FormattedAmount renders the unit amount as the two-decimal currency
// string required by the checkout form (itemAmountN).
func (p Product) FormattedAmount() string {
	return strconv.FormatFloat(p.Amount, 'f', 2, 64)
}

// FormattedWeight renders the item weight without a forced precision.
func (p Product) FormattedWeight() string {
	return strconv.FormatFloat(p.Weight, 'f', -1, 64)
}
