// Package walletlist resolves the catalog of wallets a dApp client can
// connect to. The remote wallets list is fetched once, checked against its
// JSON Schema, normalized into wallets.Wallet descriptors and merged with
// the wallets injected into the current environment.
//
// Example usage:
//
//	// Create a manager with the default catalog URL and no injected wallets
//	m, err := walletlist.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Resolve the catalog (fetched once, then served from memory)
//	list, err := m.Wallets(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range list {
//	    fmt.Printf("Wallet: %s remote=%t injectable=%t\n", w.Name, w.IsRemote(), w.IsInjectable())
//	}
//
//	// Find the wallet hosting the current environment, if any
//	embedded, err := m.EmbeddedWallet(ctx)
//
//	// Configure with custom options
//	m, err = walletlist.New(
//	    walletlist.WithCatalogURL("https://example.com/wallets.json"),
//	    walletlist.WithInjector(injected.NewRegistry()),
//	)
package walletlist

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/walletlist/internal/cache"
	"github.com/agentstation/walletlist/pkg/errors"
	"github.com/agentstation/walletlist/pkg/logging"
	"github.com/agentstation/walletlist/pkg/wallets"
)

// Compile-time interface check to ensure proper implementation.
var _ Manager = (*client)(nil)

// State is the lifecycle position of the resolved catalog.
type State = cache.State

// Catalog states reported by Manager.State.
const (
	StateEmpty   = cache.Empty
	StatePending = cache.Pending
	StateReady   = cache.Ready
)

// Manager resolves the wallets list.
type Manager interface {
	// Wallets returns the resolved catalog. The first call fetches it;
	// concurrent calls share that fetch and later calls reuse its result.
	// Failures are reported as *errors.FetchWalletsError and are not cached.
	Wallets(ctx context.Context) ([]wallets.Wallet, error)

	// EmbeddedWallet returns the single wallet embedding the current
	// environment, or nil when there is none or the choice is ambiguous.
	EmbeddedWallet(ctx context.Context) (*wallets.Wallet, error)

	// State reports whether the catalog is empty, being fetched, or ready.
	State() State
}

// client is the internal implementation of the Manager interface.
type client struct {
	options *options
	fetcher Fetcher
	logger  *zerolog.Logger
	catalog *cache.Once[[]wallets.Wallet]
}

// New creates a new Manager with the given options.
func New(opts ...Option) (Manager, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With().Str("url", o.catalogURL).Logger()

	return &client{
		options: o,
		fetcher: o.newFetcher(),
		logger:  &logger,
		catalog: cache.New[[]wallets.Wallet](),
	}, nil
}

// Wallets returns a copy of the resolved catalog.
func (c *client) Wallets(ctx context.Context) ([]wallets.Wallet, error) {
	if list, ok := c.catalog.Peek(); ok {
		c.loggerFor(ctx).Debug().Int("wallets", len(list)).Msg("Serving cached wallets list")
		return wallets.CloneAll(list), nil
	}

	list, shared, err := c.catalog.Get(ctx, c.resolve)
	if err != nil {
		return nil, err
	}
	if shared {
		c.loggerFor(ctx).Debug().Msg("Wallets list fetch was shared")
	}
	return wallets.CloneAll(list), nil
}

// EmbeddedWallet returns the wallet embedding the current environment.
func (c *client) EmbeddedWallet(ctx context.Context) (*wallets.Wallet, error) {
	list, err := c.Wallets(ctx)
	if err != nil {
		return nil, err
	}
	return wallets.Embedded(list), nil
}

// State returns the catalog lifecycle state.
func (c *client) State() State {
	return c.catalog.State()
}

// loggerFor returns the logger carried by ctx, or the manager's logger
// when ctx has none.
func (c *client) loggerFor(ctx context.Context) *zerolog.Logger {
	logger := logging.FromContextOr(ctx, nil)
	if logger == nil {
		return c.logger
	}
	l := logger.With().Str("url", c.options.catalogURL).Logger()
	return &l
}

// resolve fetches, validates, normalizes and merges the catalog.
func (c *client) resolve(ctx context.Context) ([]wallets.Wallet, error) {
	url := c.options.catalogURL
	ctx = logging.WithLogger(ctx, c.loggerFor(ctx))
	logger := logging.FromContext(ctx)
	logger.Info().Msg("Fetching wallets list")

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fail(logger, url, err)
	}

	dtos, err := wallets.Decode(body)
	if err != nil {
		return nil, fail(logger, url, err)
	}

	remote := wallets.FromDTOs(dtos, c.options.injector)
	injected := c.options.injector.CurrentlyInjectedWallets()
	merged := wallets.Merge(remote, injected)

	if logger.Debug().Enabled() {
		for _, w := range merged {
			source := "remote"
			if w.IsInjected() {
				source = "injected"
			}
			wctx := logging.WithSource(logging.WithWallet(ctx, w.Name), source)
			logging.FromContext(wctx).Debug().
				Bool("remote_bridge", w.IsRemote()).
				Bool("js_bridge", w.IsInjectable()).
				Bool("embedded", w.IsEmbedded()).
				Msg("Resolved wallet")
		}
	}

	logger.Info().
		Int("remote", len(remote)).
		Int("injected", len(injected)).
		Int("wallets", len(merged)).
		Msg("Resolved wallets list")

	return merged, nil
}

func fail(logger *zerolog.Logger, url string, cause error) error {
	logger.Error().Err(cause).Msg("Failed to resolve wallets list")
	return errors.NewFetchWalletsError(url, cause)
}
