package msg91

import (
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://control.msg91.com/api/v5"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "msg91-go/1.0"
)

// HTTPClient abstracts the http.Client Do method for easier testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customises the behaviour of the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for tests and for
// region-specific MSG91 deployments.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		}
	}
}

// WithHTTPClient overrides the HTTP client used to talk to MSG91. The
// supplied client owns its own timeout configuration.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout applied when the caller's
// context carries no deadline of its own.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a zerolog logger. The client logs one debug line
// per request and one warn line per failed request; the default logger
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		if !reflect.ValueOf(logger).IsZero() {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = strings.TrimSpace(ua)
		}
	}
}

// Client is the entry point to the MSG91 API. It holds the auth key and
// shared transport configuration, and exposes the per-resource services.
// A Client is immutable after construction and safe for concurrent use.
type Client struct {
	authKey    string
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient HTTPClient
	logger     zerolog.Logger

	// SMS sends templated messages and fetches delivery logs and analytics.
	SMS *SMSService
	// Template manages reusable SMS templates and their versions.
	Template *TemplateService
	// OTP drives the legacy one-time-password endpoints.
	OTP *OTPService
}

// New constructs a Client for the given auth key. The key is required;
// everything else has a sensible default and can be adjusted with options.
func New(authKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(authKey) == "" {
		return nil, validationErr("auth_key", "auth key is required")
	}

	c := &Client{
		authKey:   strings.TrimSpace(authKey),
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, validationErr("base_url", err.Error())
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	c.SMS = &SMSService{client: c}
	c.Template = &TemplateService{client: c}
	c.OTP = &OTPService{client: c}

	return c, nil
}

// BaseURL returns the configured API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}
