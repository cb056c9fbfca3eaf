// Package injected keeps track of wallet providers installed into the
// current process environment, the Go counterpart of provider objects a
// wallet places in a page's global scope. A Registry implements
// wallets.Injector and is safe for concurrent use.
package injected

import (
	"sort"
	"sync"

	"github.com/agentstation/walletlist/pkg/errors"
	"github.com/agentstation/walletlist/pkg/wallets"
)

// Provider describes one installed wallet provider.
type Provider struct {
	// BridgeKey is the key the provider is installed under.
	BridgeKey string `json:"bridge_key" yaml:"bridge_key" mapstructure:"bridge_key"`
	Name      string `json:"name" yaml:"name" mapstructure:"name"`
	ImageURL  string `json:"image" yaml:"image" mapstructure:"image"`
	AboutURL  string `json:"about_url" yaml:"about_url" mapstructure:"about_url"`
	TonDNS    string `json:"tondns,omitempty" yaml:"tondns,omitempty" mapstructure:"tondns"`
}

// Registry is an in-memory set of installed providers plus the key of the
// wallet embedding the environment, if any.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	embedding string
}

// Option configures a Registry.
type Option func(*Registry)

// WithProviders installs providers at construction time.
func WithProviders(providers ...Provider) Option {
	return func(r *Registry) {
		for _, p := range providers {
			r.providers[p.BridgeKey] = p
		}
	}
}

// WithEmbedding marks bridgeKey as the wallet embedding the environment.
func WithEmbedding(bridgeKey string) Option {
	return func(r *Registry) {
		r.embedding = bridgeKey
	}
}

// NewRegistry creates a Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Install adds or replaces the provider under p.BridgeKey.
func (r *Registry) Install(p Provider) error {
	if p.BridgeKey == "" {
		return errors.NewValidationError("bridge_key", p.BridgeKey, "must not be empty")
	}
	if p.Name == "" {
		return errors.NewValidationError("name", p.Name, "must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.BridgeKey] = p
	return nil
}

// Uninstall removes the provider under bridgeKey.
func (r *Registry) Uninstall(bridgeKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[bridgeKey]; !ok {
		return errors.NewNotFoundError("injected provider", bridgeKey)
	}
	delete(r.providers, bridgeKey)
	return nil
}

// SetEmbedding changes the embedding wallet key; empty clears it.
func (r *Registry) SetEmbedding(bridgeKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.embedding = bridgeKey
}

// CurrentlyInjectedWallets implements wallets.Injector. Wallets are sorted
// by bridge key so repeated calls return the same order.
func (r *Registry) CurrentlyInjectedWallets() []wallets.Wallet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.providers))
	for k := range r.providers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]wallets.Wallet, 0, len(keys))
	for _, k := range keys {
		p := r.providers[k]
		list = append(list, wallets.Wallet{
			Name:     p.Name,
			ImageURL: p.ImageURL,
			AboutURL: p.AboutURL,
			TonDNS:   p.TonDNS,
			Injectable: &wallets.InjectableBridge{
				JSBridgeKey: p.BridgeKey,
				Injected:    true,
				Embedded:    p.BridgeKey == r.embedding,
			},
		})
	}
	return list
}

// IsWalletInjected implements wallets.Injector.
func (r *Registry) IsWalletInjected(bridgeKey string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.providers[bridgeKey]
	return ok
}

// IsInsideWalletBrowser implements wallets.Injector.
func (r *Registry) IsInsideWalletBrowser(bridgeKey string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.embedding == "" || r.embedding != bridgeKey {
		return false
	}
	_, ok := r.providers[bridgeKey]
	return ok
}

var _ wallets.Injector = (*Registry)(nil)
