// Package app provides the application context and dependency management
// for the walletlist CLI. It centralizes configuration, logging and the
// lazily created wallets list manager.
package app

import (
	"context"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/walletlist"
	"github.com/agentstation/walletlist/cmd/application"
	"github.com/agentstation/walletlist/pkg/errors"
	"github.com/agentstation/walletlist/pkg/injected"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the walletlist application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Command output
	out io.Writer
	err io.Writer

	// Manager instance (lazy-initialized, singleton)
	mu       sync.RWMutex
	manager  walletlist.Manager
	registry *injected.Registry
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		out:     os.Stdout,
		err:     os.Stderr,
	}

	// Apply options first so a provided config skips file loading
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Registry returns the injected provider registry built from configuration.
func (a *App) Registry() (*injected.Registry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registryLocked()
}

func (a *App) registryLocked() (*injected.Registry, error) {
	if a.registry != nil {
		return a.registry, nil
	}

	reg := injected.NewRegistry(injected.WithEmbedding(a.config.EmbeddingWallet))
	for _, p := range a.config.InjectedWallets {
		if err := reg.Install(p); err != nil {
			return nil, errors.NewConfigError("injected_wallets", "invalid provider "+p.BridgeKey, err)
		}
	}
	a.registry = reg
	return reg, nil
}

// Manager returns the wallets list manager. Without options the instance is
// created once and cached; with options a new instance is built on top of
// the configured defaults.
func (a *App) Manager(opts ...walletlist.Option) (walletlist.Manager, error) {
	if len(opts) == 0 {
		a.mu.RLock()
		m := a.manager
		a.mu.RUnlock()
		if m != nil {
			return m, nil
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if len(opts) == 0 && a.manager != nil {
		return a.manager, nil
	}

	base, err := a.buildManagerOptions()
	if err != nil {
		return nil, err
	}

	m, err := walletlist.New(append(base, opts...)...)
	if err != nil {
		return nil, errors.WrapResource("create", "manager", "", err)
	}

	if len(opts) == 0 {
		a.manager = m
	}
	return m, nil
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	m := a.manager
	a.mu.RUnlock()

	if m != nil {
		a.logger.Debug().Str("state", m.State().String()).Msg("Shutting down")
	}
	return nil
}

// buildManagerOptions constructs manager options from the app configuration.
// Callers must hold a.mu.
func (a *App) buildManagerOptions() ([]walletlist.Option, error) {
	reg, err := a.registryLocked()
	if err != nil {
		return nil, err
	}

	opts := []walletlist.Option{
		walletlist.WithInjector(reg),
		walletlist.WithLogger(a.logger),
		walletlist.WithMaxRetries(a.config.MaxRetries),
		walletlist.WithHTTPClient(&http.Client{Timeout: a.config.HTTPTimeout}),
	}

	if a.config.CatalogURL != "" {
		opts = append(opts, walletlist.WithCatalogURL(a.config.CatalogURL))
	}

	if a.config.CatalogToken != "" {
		opts = append(opts, walletlist.WithCatalogToken(a.config.CatalogTokenHeader, a.config.CatalogToken))
	}

	return opts, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithManager sets a custom manager instance (useful for testing).
func WithManager(m walletlist.Manager) Option {
	return func(a *App) error {
		a.manager = m
		return nil
	}
}

// WithOutput redirects command output and error streams.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) error {
		a.out = out
		a.err = errOut
		return nil
	}
}
