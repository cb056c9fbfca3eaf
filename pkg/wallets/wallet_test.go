package wallets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/walletlist/pkg/wallets"
)

func TestEmbedded(t *testing.T) {
	tests := []struct {
		name     string
		list     []wallets.Wallet
		expected string
	}{
		{name: "empty list"},
		{
			name: "no embedded wallet",
			list: []wallets.Wallet{remoteWallet("A", "u"), injectedWallet("B", "b", false)},
		},
		{
			name:     "exactly one embedded wallet",
			list:     []wallets.Wallet{remoteWallet("A", "u"), injectedWallet("B", "b", true)},
			expected: "B",
		},
		{
			name: "ambiguous embedding",
			list: []wallets.Wallet{injectedWallet("A", "a", true), injectedWallet("B", "b", true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wallets.Embedded(tt.list)
			if tt.expected == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got.Name)
		})
	}
}

func TestEmbedded_ReturnsCopy(t *testing.T) {
	list := []wallets.Wallet{injectedWallet("B", "b", true)}

	got := wallets.Embedded(list)
	require.NotNil(t, got)
	got.Injectable.JSBridgeKey = "changed"

	assert.Equal(t, "b", list[0].Injectable.JSBridgeKey)
}

func TestCloneAll(t *testing.T) {
	assert.Nil(t, wallets.CloneAll(nil))

	list := []wallets.Wallet{remoteWallet("A", "u")}
	clone := wallets.CloneAll(list)
	clone[0].Remote.BridgeURL = "x"

	assert.Equal(t, "u", list[0].Remote.BridgeURL)
}

func TestNoInjector(t *testing.T) {
	var inj wallets.Injector = wallets.NoInjector{}
	assert.Nil(t, inj.CurrentlyInjectedWallets())
	assert.False(t, inj.IsWalletInjected("tonkeeper"))
	assert.False(t, inj.IsInsideWalletBrowser("tonkeeper"))
}
