package models

import "encoding/xml"

// Transaction mirrors the gateway's v2 transaction XML document, returned
// by the notification and transaction lookup endpoints. Elements not
// listed here are ignored during decoding, so additions on the gateway
// side do not break lookups.
type Transaction struct {
	XMLName          xml.Name          `xml:"transaction"`
	Date             string            `xml:"date"`
	Code             string            `xml:"code"`
	Reference        string            `xml:"reference"`
	Type             int               `xml:"type"`
	Status           TransactionStatus `xml:"status"`
	LastEventDate    string            `xml:"lastEventDate"`
	PaymentMethod    PaymentMethod     `xml:"paymentMethod"`
	GrossAmount      float64           `xml:"grossAmount"`
	DiscountAmount   float64           `xml:"discountAmount"`
	FeeAmount        float64           `xml:"feeAmount"`
	NetAmount        float64           `xml:"netAmount"`
	ExtraAmount      float64           `xml:"extraAmount"`
	InstallmentCount int               `xml:"installmentCount"`
	ItemCount        int               `xml:"itemCount"`
	Items            []TransactionItem `xml:"items>item"`
	Sender           Sender            `xml:"sender"`
	Shipping         *Shipping         `xml:"shipping"`
}

type PaymentMethod struct {
	Type int `xml:"type"`
	Code int `xml:"code"`
}

type TransactionItem struct {
	ID          string  `xml:"id"`
	Description string  `xml:"description"`
	Quantity    int     `xml:"quantity"`
	Amount      float64 `xml:"amount"`
}

type Sender struct {
	Name  string `xml:"name"`
	Email string `xml:"email"`
	Phone Phone  `xml:"phone"`
}

type Phone struct {
	AreaCode string `xml:"areaCode"`
	Number   string `xml:"number"`
}

type Shipping struct {
	Address Address `xml:"address"`
	Type    int     `xml:"type"`
	Cost    float64 `xml:"cost"`
}

type Address struct {
	Street     string `xml:"street"`
	Number     string `xml:"number"`
	Complement string `xml:"complement"`
	District   string `xml:"district"`
	PostalCode string `xml:"postalCode"`
	City       string `xml:"city"`
	State      string `xml:"state"`
	Country    string `xml:"country"`
}
