package pagseguro

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	SandboxHost    = "sandbox.pagseguro.uol.com.br"
	ProductionHost = "pagseguro.uol.com.br"

	RequestTimeout = 30 * time.Second

	defaultCharset     = "ISO-8859-1"
	defaultButtonImage = "https://p.simg.uol.com.br/out/pagseguro/i/botoes/pagamentos/164x37-pagar-assina.gif"
)

// Client holds the merchant credentials and the shared HTTP transport for
// the gateway's v2 API. A Client is safe for concurrent use; the Checkout
// builders it creates are not.
type Client struct {
	email       string
	token       string
	sandbox     bool
	buttonImage string
	charset     string
	transport   *http.Transport
	httpClient  *http.Client

	// wsBase overrides the derived ws endpoint, for tests only.
	wsBase string
}

type Option func(*Client)

// Production points the client at the live environment instead of the
// sandbox default.
func Production() Option {
	return func(c *Client) { c.sandbox = false }
}

// WithButtonImage sets an alternate payment-button image URL. The URL is
// not validated.
func WithButtonImage(imageURL string) Option {
	return func(c *Client) { c.buttonImage = imageURL }
}

// WithTimeout replaces the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithCharset replaces the default ISO-8859-1 request charset.
func WithCharset(charset string) Option {
	return func(c *Client) { c.charset = charset }
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithInsecureSkipVerify disables TLS certificate verification on the
// built-in transport. Certificates are verified by default; this opt-out
// exists only for compatibility with broken intermediaries and must not be
// used against the live environment.
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
}

// New validates the merchant credentials and builds a client targeting the
// sandbox environment unless Production() is given.
func New(email, token string, opts ...Option) (*Client, error) {
	if email == "" || token == "" {
		return nil, &ValidationError{Message: "credentials must not be blank"}
	}

	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	c := &Client{
		email:       email,
		token:       token,
		sandbox:     true,
		buttonImage: defaultButtonImage,
		charset:     defaultCharset,
		transport:   transport,
		httpClient: &http.Client{
			Timeout:   RequestTimeout,
			Transport: transport,
		},
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// host derives the environment hostname from the sandbox flag; it is never
// stored so the two cannot drift apart.
func (c *Client) host() string {
	if c.sandbox {
		return SandboxHost
	}
	return ProductionHost
}

func (c *Client) wsEndpoint() string {
	if c.wsBase != "" {
		return c.wsBase
	}
	return "https://ws." + c.host()
}

func (c *Client) authQuery() string {
	q := url.Values{}
	q.Set("email", c.email)
	q.Set("token", c.token)
	return q.Encode()
}

// get performs a single blocking GET round trip and returns the raw body.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset="+c.charset)

	return c.do(req)
}

// postForm form-encodes data and performs a single blocking POST round
// trip with an explicit Content-Length.
func (c *Client) postForm(ctx context.Context, rawURL string, data url.Values) ([]byte, error) {
	payload := ""
	if data != nil {
		payload = data.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset="+c.charset)
	req.ContentLength = int64(len(payload))

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return body, nil
}
