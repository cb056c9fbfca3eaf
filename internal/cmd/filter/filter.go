// Package filter narrows wallet lists for CLI output.
package filter

import (
	"strings"

	"github.com/agentstation/walletlist/pkg/wallets"
)

// WalletFilter applies filters to wallet lists
type WalletFilter struct {
	Search   string // Case-insensitive substring of the name
	Bridge   string // "sse" or "js"
	Injected bool   // Only wallets whose JS bridge is present
	Embedded bool   // Only the wallet hosting the environment
}

// Apply filters a slice of wallets, preserving order.
func (f *WalletFilter) Apply(list []wallets.Wallet) []wallets.Wallet {
	if f == nil || f.isEmpty() {
		return list
	}

	filtered := make([]wallets.Wallet, 0, len(list))
	for _, w := range list {
		if f.matches(w) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

func (f *WalletFilter) isEmpty() bool {
	return f.Search == "" &&
		f.Bridge == "" &&
		!f.Injected &&
		!f.Embedded
}

func (f *WalletFilter) matches(w wallets.Wallet) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(w.Name), strings.ToLower(f.Search)) {
		return false
	}

	switch strings.ToLower(f.Bridge) {
	case "":
	case wallets.BridgeTypeSSE:
		if !w.IsRemote() {
			return false
		}
	case wallets.BridgeTypeJS:
		if !w.IsInjectable() {
			return false
		}
	default:
		return false
	}

	if f.Injected && !w.IsInjected() {
		return false
	}
	if f.Embedded && !w.IsEmbedded() {
		return false
	}
	return true
}
