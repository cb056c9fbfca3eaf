package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/walletlist/pkg/wallets"
)

func names(list []wallets.Wallet) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		out = append(out, w.Name)
	}
	return out
}

func TestWalletFilter_Apply(t *testing.T) {
	list := []wallets.Wallet{
		{Name: "Tonkeeper", Remote: &wallets.RemoteBridge{BridgeURL: "u"},
			Injectable: &wallets.InjectableBridge{JSBridgeKey: "tonkeeper", Injected: true, Embedded: true}},
		{Name: "Tonhub", Injectable: &wallets.InjectableBridge{JSBridgeKey: "tonhub"}},
		{Name: "MyTonWallet", Remote: &wallets.RemoteBridge{BridgeURL: "u"}},
	}

	tests := []struct {
		name   string
		filter *WalletFilter
		want   []string
	}{
		{name: "nil filter", filter: nil, want: []string{"Tonkeeper", "Tonhub", "MyTonWallet"}},
		{name: "empty filter", filter: &WalletFilter{}, want: []string{"Tonkeeper", "Tonhub", "MyTonWallet"}},
		{name: "search", filter: &WalletFilter{Search: "TONH"}, want: []string{"Tonhub"}},
		{name: "sse bridge", filter: &WalletFilter{Bridge: "sse"}, want: []string{"Tonkeeper", "MyTonWallet"}},
		{name: "js bridge", filter: &WalletFilter{Bridge: "JS"}, want: []string{"Tonkeeper", "Tonhub"}},
		{name: "unknown bridge", filter: &WalletFilter{Bridge: "ws"}, want: []string{}},
		{name: "injected", filter: &WalletFilter{Injected: true}, want: []string{"Tonkeeper"}},
		{name: "embedded", filter: &WalletFilter{Embedded: true}, want: []string{"Tonkeeper"}},
		{name: "combined", filter: &WalletFilter{Search: "ton", Bridge: "js", Injected: true}, want: []string{"Tonkeeper"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(tt.filter.Apply(list)))
		})
	}
}
