package pagseguro

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"pagseguro-checkout-api/models"
)

// FindByNotificationCode fetches the transaction a gateway notification
// points at. The code comes from the notification POST the gateway sends
// to the merchant application; the caller reads it from its own request
// and passes it in explicitly.
func (c *Client) FindByNotificationCode(ctx context.Context, notificationCode string) (*models.Transaction, error) {
	if notificationCode == "" {
		return nil, &ValidationError{Message: "notification code must not be blank"}
	}

	lookupURL := c.wsEndpoint() + "/v2/transactions/notifications/" + url.PathEscape(notificationCode) + "?" + c.authQuery()
	return c.fetchTransaction(ctx, lookupURL, notificationCode)
}

// FindByTransactionCode fetches a transaction by its gateway code.
func (c *Client) FindByTransactionCode(ctx context.Context, code string) (*models.Transaction, error) {
	if code == "" {
		return nil, &ValidationError{Message: "transaction code must not be blank"}
	}

	lookupURL := c.wsEndpoint() + "/v2/transactions/" + url.PathEscape(code) + "?" + c.authQuery()
	return c.fetchTransaction(ctx, lookupURL, code)
}

func (c *Client) fetchTransaction(ctx context.Context, lookupURL, code string) (*models.Transaction, error) {
	body, err := c.get(ctx, lookupURL)
	if err != nil {
		return nil, err
	}

	// The gateway answers a plain-text sentinel, not XML, when the code
	// is not valid for these credentials.
	if string(body) == "Unauthorized" {
		return nil, &AuthorizationError{Code: code}
	}

	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.CharsetReader = charsetReader

	var transaction models.Transaction
	if err := decoder.Decode(&transaction); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &transaction, nil
}

// charsetReader accepts the ISO-8859-1 documents the v2 API answers with,
// besides plain UTF-8.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8":
		return input, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	default:
		return nil, fmt.Errorf("unsupported response charset %q", charset)
	}
}
