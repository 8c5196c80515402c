package models

import (
	"strconv"
	"strings"
)

// Shipping types accepted by the PagSeguro checkout.
// 1=Encomenda normal (PAC), 2=SEDEX, 3=Tipo de frete não especificado.
const (
	ShippingPAC         = 1
	ShippingSedex       = 2
	ShippingUnspecified = 3
)

// Customer holds the buyer contact and shipping data rendered into the
// checkout form. Every field is optional; fields left empty are omitted
// from the rendered output.
type Customer struct {
	ID           string
	Name         string
	AreaCode     string
	Phone        string
	Email        string
	ShippingType int
	PostalCode   string
	Street       string
	Number       string
	Complement   string
	District     string
	City         string
	State        string
	Country      string
}

// NewCustomer returns a customer with the gateway defaults applied.
func NewCustomer() Customer {
	return Customer{
		ShippingType: ShippingUnspecified,
		Country:      "BRA",
	}
}

var cepReplacer = strings.NewReplacer(",", "", ".", "", " ", "")

// ParseCustomerFields normalizes loosely-keyed customer input into the
// canonical key set consumed by Customer.Merge. Recognized keys follow the
// merchant-side naming (nome, cep, tel1, ...); unrecognized keys pass
// through untouched. tel1 is always processed before tel2: tel2 only fills
// the area code and phone number when tel1 did not yield a two-digit DDD.
func ParseCustomerFields(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))

	for key, value := range raw {
		switch key {
		case "cep":
			out["cep"] = cepReplacer.Replace(value)
		case "num":
			out["num"] = value
			out["numero"] = value
		default:
			out[key] = value
		}
	}

	if tel, ok := raw["tel1"]; ok {
		splitPhone(out, tel)
	}
	if tel, ok := raw["tel2"]; ok && len(out["ddd"]) != 2 {
		splitPhone(out, tel)
	}

	return out
}

// splitPhone derives ddd from the first two characters and telefone from
// the last eight digits after stripping hyphens.
func splitPhone(out map[string]string, tel string) {
	ddd := tel
	if len(ddd) > 2 {
		ddd = ddd[:2]
	}
	number := strings.ReplaceAll(tel, "-", "")
	if len(number) > 8 {
		number = number[len(number)-8:]
	}
	out["ddd"] = ddd
	out["telefone"] = number
}

// Merge overwrites the customer fields present in the normalized mapping.
// Absent keys keep their prior or default values.
func (c *Customer) Merge(fields map[string]string) {
	if v, ok := fields["id"]; ok {
		c.ID = v
	}
	if v, ok := fields["nome"]; ok {
		c.Name = v
	}
	if v, ok := fields["ddd"]; ok {
		c.AreaCode = v
	}
	if v, ok := fields["telefone"]; ok {
		c.Phone = v
	}
	if v, ok := fields["email"]; ok {
		c.Email = v
	}
	if v, ok := fields["shippingType"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.ShippingType = n
		}
	}
	if v, ok := fields["cep"]; ok {
		c.PostalCode = v
	}
	if v, ok := fields["logradouro"]; ok {
		c.Street = v
	}
	if v, ok := fields["numero"]; ok {
		c.Number = v
	}
	if v, ok := fields["compl"]; ok {
		c.Complement = v
	}
	if v, ok := fields["bairro"]; ok {
		c.District = v
	}
	if v, ok := fields["cidade"]; ok {
		c.City = v
	}
	if v, ok := fields["uf"]; ok {
		c.State = v
	}
	if v, ok := fields["pais"]; ok {
		c.Country = v
	}
}
