package walletlist

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/agentstation/walletlist/internal/transport"
	"github.com/agentstation/walletlist/pkg/constants"
	"github.com/agentstation/walletlist/pkg/errors"
	"github.com/agentstation/walletlist/pkg/logging"
	"github.com/agentstation/walletlist/pkg/wallets"
)

// Fetcher retrieves the raw catalog document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Option is a function that configures a Manager.
type Option func(*options) error

// options holds the Manager configuration.
type options struct {
	catalogURL string
	injector   wallets.Injector
	fetcher    Fetcher
	httpClient *http.Client
	maxRetries int
	token      string
	authHeader string
	logger     *zerolog.Logger
}

// defaults returns the options used when none are given.
func defaults() *options {
	return &options{
		catalogURL: constants.DefaultCatalogURL,
		injector:   wallets.NoInjector{},
		maxRetries: constants.MaxRetries,
		logger:     logging.Default(),
	}
}

// apply applies opts in order and stops at the first error.
func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newFetcher returns the configured fetcher or an HTTP transport client.
func (o *options) newFetcher() Fetcher {
	if o.fetcher != nil {
		return o.fetcher
	}
	retry := transport.DefaultRetryConfig()
	retry.MaxRetries = o.maxRetries
	return transport.New(
		transport.WithHTTPClient(o.httpClient),
		transport.WithRetry(retry),
		transport.WithToken(transport.AuthenticatorFor(o.authHeader), o.token),
		transport.WithLogger(o.logger),
	)
}

// WithCatalogURL overrides the wallets list location.
func WithCatalogURL(rawURL string) Option {
	return func(o *options) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return errors.WrapValidation("catalog_url", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.NewValidationError("catalog_url", rawURL, "must be an http or https URL")
		}
		o.catalogURL = rawURL
		return nil
	}
}

// WithInjector sets the source of injected wallet information.
func WithInjector(inj wallets.Injector) Option {
	return func(o *options) error {
		if inj == nil {
			return errors.NewValidationError("injector", nil, "must not be nil")
		}
		o.injector = inj
		return nil
	}
}

// WithHTTPClient sets the HTTP client used by the default fetcher.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		o.httpClient = hc
		return nil
	}
}

// WithFetcher replaces the HTTP fetcher entirely.
func WithFetcher(f Fetcher) Option {
	return func(o *options) error {
		o.fetcher = f
		return nil
	}
}

// WithCatalogToken authenticates catalog requests with token. An empty
// header sends it as a bearer token, otherwise it is sent in that header.
func WithCatalogToken(header, token string) Option {
	return func(o *options) error {
		o.authHeader = header
		o.token = token
		return nil
	}
}

// WithMaxRetries sets how many times a transient fetch failure is retried.
func WithMaxRetries(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return errors.NewValidationError("max_retries", n, "must not be negative")
		}
		o.maxRetries = n
		return nil
	}
}

// WithLogger sets the logger used by the Manager.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}
