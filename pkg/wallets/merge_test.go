package wallets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/walletlist/pkg/wallets"
)

func remoteWallet(name, bridgeURL string) wallets.Wallet {
	return wallets.Wallet{
		Name:     name,
		ImageURL: "https://img/" + name,
		AboutURL: "https://about/" + name,
		Remote: &wallets.RemoteBridge{
			BridgeURL:     bridgeURL,
			UniversalLink: "https://link/" + name,
		},
	}
}

func injectedWallet(name, key string, embedded bool) wallets.Wallet {
	return wallets.Wallet{
		Name:     name,
		ImageURL: "https://injected-img/" + name,
		Injectable: &wallets.InjectableBridge{
			JSBridgeKey: key,
			Injected:    true,
			Embedded:    embedded,
		},
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     []wallets.Wallet
		overlay  []wallets.Wallet
		expected []wallets.Wallet
	}{
		{
			name:     "both empty",
			expected: []wallets.Wallet{},
		},
		{
			name:     "remote only",
			base:     []wallets.Wallet{remoteWallet("A", "u")},
			expected: []wallets.Wallet{remoteWallet("A", "u")},
		},
		{
			name:     "injected only",
			overlay:  []wallets.Wallet{injectedWallet("B", "b", false)},
			expected: []wallets.Wallet{injectedWallet("B", "b", false)},
		},
		{
			name:    "same name merges with injected precedence",
			base:    []wallets.Wallet{remoteWallet("A", "u")},
			overlay: []wallets.Wallet{injectedWallet("A", "a", true)},
			expected: []wallets.Wallet{{
				Name:     "A",
				ImageURL: "https://injected-img/A",
				AboutURL: "https://about/A",
				Remote: &wallets.RemoteBridge{
					BridgeURL:     "u",
					UniversalLink: "https://link/A",
				},
				Injectable: &wallets.InjectableBridge{
					JSBridgeKey: "a",
					Injected:    true,
					Embedded:    true,
				},
			}},
		},
		{
			name:    "names keep first-seen order",
			base:    []wallets.Wallet{remoteWallet("A", "a"), remoteWallet("B", "b")},
			overlay: []wallets.Wallet{injectedWallet("C", "c", false), injectedWallet("A", "a", false)},
			expected: []wallets.Wallet{
				{
					Name:       "A",
					ImageURL:   "https://injected-img/A",
					AboutURL:   "https://about/A",
					Remote:     &wallets.RemoteBridge{BridgeURL: "a", UniversalLink: "https://link/A"},
					Injectable: &wallets.InjectableBridge{JSBridgeKey: "a", Injected: true},
				},
				remoteWallet("B", "b"),
				injectedWallet("C", "c", false),
			},
		},
		{
			name:     "duplicate names within a list keep the first",
			base:     []wallets.Wallet{remoteWallet("A", "first"), remoteWallet("A", "second")},
			expected: []wallets.Wallet{remoteWallet("A", "first")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wallets.Merge(tt.base, tt.overlay)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_OneDescriptorPerName(t *testing.T) {
	base := []wallets.Wallet{remoteWallet("A", "u"), remoteWallet("B", "v")}
	overlay := []wallets.Wallet{injectedWallet("B", "b", false), injectedWallet("A", "a", false)}

	for _, got := range [][]wallets.Wallet{wallets.Merge(base, overlay), wallets.Merge(overlay, base)} {
		names := map[string]int{}
		for _, w := range got {
			names[w.Name]++
		}
		assert.Equal(t, map[string]int{"A": 1, "B": 1}, names)
	}
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	base := []wallets.Wallet{remoteWallet("A", "u")}
	overlay := []wallets.Wallet{injectedWallet("A", "a", false)}

	got := wallets.Merge(base, overlay)
	require.Len(t, got, 1)

	got[0].Remote.BridgeURL = "changed"
	got[0].Injectable.Embedded = true

	assert.Equal(t, "u", base[0].Remote.BridgeURL)
	assert.False(t, overlay[0].Injectable.Embedded)
}
