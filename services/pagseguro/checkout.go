package pagseguro

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"pagseguro-checkout-api/models"
)

// Checkout assembles one payment-form render: an order reference, optional
// customer data and the registered line items. One Checkout instance is
// meant for a single render; it is not safe for concurrent use. Create a
// fresh one per request.
type Checkout struct {
	client      *Client
	reference   string
	customer    models.Customer
	products    []models.Product
	buttonImage string
}

// ButtonOptions are the late-stage overrides accepted at render time.
// Only these two fields are configurable; there is no dynamic key set.
type ButtonOptions struct {
	Reference string
	ImageURL  string
}

// NewCheckout starts a checkout with the gateway customer defaults and the
// client's configured button image.
func (c *Client) NewCheckout() *Checkout {
	return &Checkout{
		client:      c,
		customer:    models.NewCustomer(),
		buttonImage: c.buttonImage,
	}
}

// SetReference records the merchant order reference for this checkout.
func (co *Checkout) SetReference(reference string) error {
	if reference == "" {
		return &ValidationError{Message: "reference must not be blank"}
	}
	co.reference = reference
	return nil
}

// SetCustomer normalizes the given fields and merges the recognized keys
// onto the customer data. Calling it repeatedly accumulates fields.
func (co *Checkout) SetCustomer(fields map[string]string) error {
	if fields == nil {
		return &ValidationError{Message: "customer fields must not be nil"}
	}
	co.customer.Merge(models.ParseCustomerFields(fields))
	return nil
}

// Customer returns the customer data currently held by the checkout.
func (co *Checkout) Customer() models.Customer {
	return co.customer
}

// SetProducts replaces the registered line items. A single item and a
// one-element slice expansion register identically.
func (co *Checkout) SetProducts(products ...models.Product) {
	co.products = append([]models.Product(nil), products...)
}

// SetButtonImage overrides the payment-button image for this checkout.
func (co *Checkout) SetButtonImage(imageURL string) {
	co.buttonImage = imageURL
}

// PaymentForm renders the HTML form fragment that redirects the buyer to
// the gateway's hosted payment page. The fragment is emitted in a fixed
// order: form open with the required fields, customer/shipping fields,
// numbered item fields, image submit and form close. It fails without
// emitting partial output when the reference is unset or no products are
// registered. Every attribute value is HTML-escaped.
func (co *Checkout) PaymentForm(opts *ButtonOptions) (string, error) {
	reference := co.reference
	buttonImage := co.buttonImage
	if opts != nil {
		if opts.Reference != "" {
			reference = opts.Reference
		}
		if opts.ImageURL != "" {
			buttonImage = opts.ImageURL
		}
	}

	if reference == "" {
		return "", &ValidationError{Message: "reference must be set before rendering the payment form"}
	}
	if len(co.products) == 0 {
		return "", &ValidationError{Message: "at least one product must be registered"}
	}

	lines := co.formOpen(reference)
	lines = append(lines, co.customerInputs()...)
	lines = append(lines, co.productInputs()...)
	lines = append(lines, co.formClose(buttonImage)...)

	return strings.Join(lines, "\n"), nil
}

func hiddenInput(name, value string) string {
	return `<input type="hidden" name="` + name + `" value="` + html.EscapeString(value) + `">`
}

// Required fields of the checkout contract.
func (co *Checkout) formOpen(reference string) []string {
	action := "https://" + co.client.host() + "/v2/checkout/payment.html"
	return []string{
		`<form target="pagseguro" method="post" action="` + html.EscapeString(action) + `">`,
		hiddenInput("receiverEmail", co.client.email),
		hiddenInput("currency", "BRL"),
		hiddenInput("encoding", "UTF-8"),
		hiddenInput("reference", reference),
	}
}

// Buyer and shipping fields, all optional. A field is emitted only when
// its value is non-empty; a zero shipping type is omitted like any other
// empty value.
func (co *Checkout) customerInputs() []string {
	cust := co.customer
	var f []string

	if cust.Name != "" {
		f = append(f, hiddenInput("senderName", cust.Name))
	}
	if cust.AreaCode != "" {
		f = append(f, hiddenInput("senderAreaCode", cust.AreaCode))
	}
	if cust.Phone != "" {
		f = append(f, hiddenInput("senderPhone", cust.Phone))
	}
	if cust.Email != "" {
		f = append(f, hiddenInput("senderEmail", cust.Email))
	}

	if cust.ShippingType != 0 {
		f = append(f, hiddenInput("shippingType", strconv.Itoa(cust.ShippingType)))
	}
	if cust.PostalCode != "" {
		f = append(f, hiddenInput("shippingAddressPostalCode", cust.PostalCode))
	}
	if cust.Street != "" {
		f = append(f, hiddenInput("shippingAddressStreet", cust.Street))
	}
	if cust.Number != "" {
		f = append(f, hiddenInput("shippingAddressNumber", cust.Number))
	}
	if cust.Complement != "" {
		f = append(f, hiddenInput("shippingAddressComplement", cust.Complement))
	}
	if cust.District != "" {
		f = append(f, hiddenInput("shippingAddressDistrict", cust.District))
	}
	if cust.City != "" {
		f = append(f, hiddenInput("shippingAddressCity", cust.City))
	}
	if cust.State != "" {
		f = append(f, hiddenInput("shippingAddressState", cust.State))
	}
	if cust.Country != "" {
		f = append(f, hiddenInput("shippingAddressCountry", cust.Country))
	}

	return f
}

// Item fields, five per product, numbered from 1 in registration order.
func (co *Checkout) productInputs() []string {
	f := make([]string, 0, len(co.products)*5)
	for i, p := range co.products {
		n := strconv.Itoa(i + 1)
		f = append(f,
			hiddenInput("itemId"+n, p.ID),
			hiddenInput("itemDescription"+n, p.Description),
			hiddenInput("itemAmount"+n, p.FormattedAmount()),
			hiddenInput("itemQuantity"+n, strconv.Itoa(p.Quantity)),
			hiddenInput("itemWeight"+n, p.FormattedWeight()),
		)
	}
	return f
}

func (co *Checkout) formClose(buttonImage string) []string {
	return []string{
		fmt.Sprintf(`<input type="image" class="btn-pagseguro" name="submit" src="%s" alt="Pague com PagSeguro">`,
			html.EscapeString(buttonImage)),
		`</form>`,
	}
}
