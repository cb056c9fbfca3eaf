package wallets

// Bridge types understood by the catalog.
const (
	// BridgeTypeSSE is the remote server-sent-events bridge.
	BridgeTypeSSE = "sse"
	// BridgeTypeJS is the in-page injected JavaScript bridge.
	BridgeTypeJS = "js"
)

// WalletDTO is one wallet record as published by the remote catalog.
type WalletDTO struct {
	Name         string      `json:"name" yaml:"name"`
	Image        string      `json:"image" yaml:"image"`
	AboutURL     string      `json:"about_url" yaml:"about_url"`
	TonDNS       string      `json:"tondns,omitempty" yaml:"tondns,omitempty"`
	UniversalURL string      `json:"universal_url,omitempty" yaml:"universal_url,omitempty"`
	DeepLink     string      `json:"deepLink,omitempty" yaml:"deepLink,omitempty"`
	Bridge       []BridgeDTO `json:"bridge" yaml:"bridge"`
}

// BridgeDTO is one bridge entry of a WalletDTO, tagged by Type.
// URL is set for "sse" entries and Key for "js" entries.
type BridgeDTO struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
	Key  string `json:"key,omitempty" yaml:"key,omitempty"`
}
