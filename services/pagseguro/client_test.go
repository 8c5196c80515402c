package pagseguro

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pagseguro-checkout-api/models"
)

func TestNewValidatesCredentials(t *testing.T) {
	var tests = []struct {
		name  string
		email string
		token string
	}{
		{"empty email", "", "token123"},
		{"empty token", "merchant@example.com", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := New(tt.email, tt.token)
			require.Nil(t, c)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestHostDerivation(t *testing.T) {
	product := models.Product{ID: "1", Description: "Widget", Amount: 10, Quantity: 1}

	t.Run("sandbox by default", func(t *testing.T) {
		c, err := New("merchant@example.com", "token123")
		require.NoError(t, err)

		checkout := c.NewCheckout()
		require.NoError(t, checkout.SetReference("REF-1"))
		checkout.SetProducts(product)

		form, err := checkout.PaymentForm(nil)
		require.NoError(t, err)
		require.Contains(t, form, `action="https://sandbox.pagseguro.uol.com.br/v2/checkout/payment.html"`)
	})

	t.Run("production on request", func(t *testing.T) {
		c, err := New("merchant@example.com", "token123", Production())
		require.NoError(t, err)

		checkout := c.NewCheckout()
		require.NoError(t, checkout.SetReference("REF-1"))
		checkout.SetProducts(product)

		form, err := checkout.PaymentForm(nil)
		require.NoError(t, err)
		require.Contains(t, form, `action="https://pagseguro.uol.com.br/v2/checkout/payment.html"`)
		require.NotContains(t, form, "sandbox.")
	})

	t.Run("ws endpoint follows environment", func(t *testing.T) {
		sandbox, err := New("merchant@example.com", "token123")
		require.NoError(t, err)
		require.Equal(t, "https://ws.sandbox.pagseguro.uol.com.br", sandbox.wsEndpoint())

		live, err := New("merchant@example.com", "token123", Production())
		require.NoError(t, err)
		require.Equal(t, "https://ws.pagseguro.uol.com.br", live.wsEndpoint())
	})
}

func TestClientOptions(t *testing.T) {
	t.Run("timeout override", func(t *testing.T) {
		c, err := New("merchant@example.com", "token123", WithTimeout(5*time.Second))
		require.NoError(t, err)
		require.Equal(t, 5*time.Second, c.httpClient.Timeout)
	})

	t.Run("charset override", func(t *testing.T) {
		c, err := New("merchant@example.com", "token123", WithCharset("UTF-8"))
		require.NoError(t, err)
		require.Equal(t, "UTF-8", c.charset)
	})

	t.Run("tls verification on by default", func(t *testing.T) {
		c, err := New("merchant@example.com", "token123")
		require.NoError(t, err)
		require.Nil(t, c.transport.TLSClientConfig)
	})

	t.Run("explicit insecure opt-out", func(t *testing.T) {
		c, err := New("merchant@example.com", "token123", WithInsecureSkipVerify())
		require.NoError(t, err)
		require.NotNil(t, c.transport.TLSClientConfig)
		require.True(t, c.transport.TLSClientConfig.InsecureSkipVerify)
	})

	t.Run("transport sends charset header on GET", func(t *testing.T) {
		var gotContentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
		}))
		defer srv.Close()

		c, err := New("merchant@example.com", "token123")
		require.NoError(t, err)

		_, err = c.get(context.Background(), srv.URL)
		require.NoError(t, err)
		require.Equal(t, "application/x-www-form-urlencoded; charset=ISO-8859-1", gotContentType)
	})

	t.Run("transport form-encodes POST with explicit length", func(t *testing.T) {
		var gotBody string
		var gotLength int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			gotLength = r.ContentLength
		}))
		defer srv.Close()

		c, err := New("merchant@example.com", "token123")
		require.NoError(t, err)

		_, err = c.postForm(context.Background(), srv.URL, url.Values{"notificationCode": {"abc 123"}})
		require.NoError(t, err)
		require.Equal(t, "notificationCode=abc+123", gotBody)
		require.Equal(t, int64(len(gotBody)), gotLength)
	})

	t.Run("button image override", func(t *testing.T) {
		c, err := New("merchant@example.com", "token123", WithButtonImage("https://cdn.example.com/pay.gif"))
		require.NoError(t, err)

		checkout := c.NewCheckout()
		require.NoError(t, checkout.SetReference("REF-1"))
		checkout.SetProducts(models.Product{ID: "1", Description: "Widget", Amount: 10, Quantity: 1})

		form, err := checkout.PaymentForm(nil)
		require.NoError(t, err)
		require.Contains(t, form, `src="https://cdn.example.com/pay.gif"`)
	})
}
