// Package transport fetches JSON documents over HTTP for the catalog
// resolver. Transient failures are retried with exponential backoff;
// client errors are returned immediately.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/agentstation/walletlist/pkg/constants"
	"github.com/agentstation/walletlist/pkg/errors"
	"github.com/agentstation/walletlist/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// RetryConfig configures the retry behavior.
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig returns the retry settings used when none are given.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      constants.MaxRetries,
		InitialInterval: constants.RetryBackoff,
		MaxInterval:     constants.MaxRetryBackoff,
	}
}

// Client performs catalog GET requests.
type Client struct {
	http   *http.Client
	auth   Authenticator
	token  string
	retry  RetryConfig
	logger *zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithToken authenticates requests with token using auth.
func WithToken(auth Authenticator, token string) Option {
	return func(c *Client) {
		c.auth = auth
		c.token = token
	}
}

// WithRetry sets the retry behavior. MaxRetries of zero disables retries.
func WithRetry(cfg RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithLogger sets the logger used for retry notices.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: DefaultHTTPTimeout},
		auth:   &NoAuth{},
		retry:  DefaultRetryConfig(),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs a GET request against rawURL and returns the response body.
// Non-2xx responses become *errors.APIError; 408, 429 and 5xx are retried.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}

	op := func() ([]byte, error) {
		body, err := c.get(ctx, rawURL, host)
		if err == nil {
			return body, nil
		}
		var apiErr *errors.APIError
		if errors.As(err, &apiErr) && apiErr.Temporary() {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Warn().
			Err(err).
			Str("url", rawURL).
			Bool("rate_limited", errors.IsRateLimited(err)).
			Dur("retry_in", wait).
			Msg("Catalog request failed, retrying")
	}

	return backoff.RetryNotifyWithData(op, c.backoff(ctx), notify)
}

// backoff builds the retry policy for a single Fetch call.
func (c *Client) backoff(ctx context.Context) backoff.BackOff {
	if c.retry.MaxRetries <= 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	exp := backoff.NewExponentialBackOff()
	if c.retry.InitialInterval > 0 {
		exp.InitialInterval = c.retry.InitialInterval
	}
	if c.retry.MaxInterval > 0 {
		exp.MaxInterval = c.retry.MaxInterval
	}
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.retry.MaxRetries)), ctx)
}

func (c *Client) get(ctx context.Context, rawURL, host string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+rawURL, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		c.auth.Apply(req, c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &errors.APIError{
			Provider: host,
			Endpoint: rawURL,
			Message:  "request failed",
			Err:      err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxCatalogBytes+1))
	if err != nil {
		return nil, errors.WrapResource("read", "response body", rawURL, err)
	}
	if len(body) > constants.MaxCatalogBytes {
		return nil, errors.NewValidationError("body", len(body),
			fmt.Sprintf("response exceeds %d bytes", constants.MaxCatalogBytes))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &errors.APIError{
			Provider:   host,
			Endpoint:   rawURL,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	return body, nil
}
