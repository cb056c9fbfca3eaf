package wallets

// Wallet is the normalized descriptor of one wallet in the catalog.
// Name is the identity of a wallet; no other field takes part in dedup.
type Wallet struct {
	Name     string `json:"name" yaml:"name"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
	AboutURL string `json:"aboutUrl" yaml:"aboutUrl"`
	TonDNS   string `json:"tondns,omitempty" yaml:"tondns,omitempty"`

	// Remote is set when the wallet can be reached through an SSE bridge.
	Remote *RemoteBridge `json:"remote,omitempty" yaml:"remote,omitempty"`

	// Injectable is set when the wallet exposes an in-page JS bridge.
	Injectable *InjectableBridge `json:"injectable,omitempty" yaml:"injectable,omitempty"`
}

// RemoteBridge holds the connection metadata of an SSE bridge.
type RemoteBridge struct {
	BridgeURL     string `json:"bridgeUrl" yaml:"bridgeUrl"`
	UniversalLink string `json:"universalLink" yaml:"universalLink"`
	DeepLink      string `json:"deepLink,omitempty" yaml:"deepLink,omitempty"`
}

// InjectableBridge holds the state of an in-page JS bridge.
type InjectableBridge struct {
	JSBridgeKey string `json:"jsBridgeKey" yaml:"jsBridgeKey"`
	Injected    bool   `json:"injected" yaml:"injected"`
	Embedded    bool   `json:"embedded" yaml:"embedded"`
}

// IsRemote reports whether w carries the SSE bridge facet.
func (w Wallet) IsRemote() bool {
	return w.Remote != nil
}

// IsInjectable reports whether w carries the JS bridge facet.
func (w Wallet) IsInjectable() bool {
	return w.Injectable != nil
}

// IsEmbedded reports whether w is the wallet hosting the current page.
func (w Wallet) IsEmbedded() bool {
	return w.Injectable != nil && w.Injectable.Embedded
}

// IsInjected reports whether w's JS bridge is currently present.
func (w Wallet) IsInjected() bool {
	return w.Injectable != nil && w.Injectable.Injected
}

// Clone returns a deep copy of w so callers cannot reach shared facets.
func (w Wallet) Clone() Wallet {
	c := w
	if w.Remote != nil {
		r := *w.Remote
		c.Remote = &r
	}
	if w.Injectable != nil {
		i := *w.Injectable
		c.Injectable = &i
	}
	return c
}

// CloneAll deep-copies a wallet slice.
func CloneAll(list []Wallet) []Wallet {
	if list == nil {
		return nil
	}
	out := make([]Wallet, len(list))
	for i, w := range list {
		out[i] = w.Clone()
	}
	return out
}

// Embedded returns the single wallet whose JS bridge hosts the current page.
// It returns nil when no wallet or more than one wallet claims to be embedded.
func Embedded(list []Wallet) *Wallet {
	var found *Wallet
	for i := range list {
		if !list[i].IsEmbedded() {
			continue
		}
		if found != nil {
			return nil
		}
		found = &list[i]
	}
	if found == nil {
		return nil
	}
	w := found.Clone()
	return &w
}
