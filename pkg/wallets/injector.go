package wallets

//go:generate mockgen -source=injector.go -destination=mocks/injector.go -package=mocks

// Injector answers questions about wallets injected into the current
// execution environment. It is consulted, never owned, by the resolver.
type Injector interface {
	// CurrentlyInjectedWallets lists wallets detected in the environment,
	// independently of any remote catalog.
	CurrentlyInjectedWallets() []Wallet

	// IsWalletInjected reports whether a provider is installed under bridgeKey.
	IsWalletInjected(bridgeKey string) bool

	// IsInsideWalletBrowser reports whether the wallet bound to bridgeKey
	// is the one embedding the current page.
	IsInsideWalletBrowser(bridgeKey string) bool
}

// NoInjector is an Injector for environments without injected providers.
type NoInjector struct{}

// CurrentlyInjectedWallets implements Injector.
func (NoInjector) CurrentlyInjectedWallets() []Wallet { return nil }

// IsWalletInjected implements Injector.
func (NoInjector) IsWalletInjected(string) bool { return false }

// IsInsideWalletBrowser implements Injector.
func (NoInjector) IsInsideWalletBrowser(string) bool { return false }
