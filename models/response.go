package models

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// TransactionView is the JSON projection of a gateway transaction served
// by the lookup endpoint, carrying the resolved status label alongside the
// raw code.
type TransactionView struct {
	Code        string            `json:"code"`
	Reference   string            `json:"reference"`
	Status      TransactionStatus `json:"status"`
	StatusLabel string            `json:"status_label"`
	GrossAmount float64           `json:"gross_amount"`
	NetAmount   float64           `json:"net_amount"`
	ItemCount   int               `json:"item_count"`
	Date        string            `json:"date"`
}

func NewTransactionView(t *Transaction) TransactionView {
	return TransactionView{
		Code:        t.Code,
		Reference:   t.Reference,
		Status:      t.Status,
		StatusLabel: t.Status.Label(),
		GrossAmount: t.GrossAmount,
		NetAmount:   t.NetAmount,
		ItemCount:   t.ItemCount,
		Date:        t.Date,
	}
}
