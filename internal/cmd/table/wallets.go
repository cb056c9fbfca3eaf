// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strings"

	"github.com/agentstation/walletlist/pkg/wallets"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// WalletsToTableData converts wallets to table format.
func WalletsToTableData(list []wallets.Wallet, showDetails bool) Data {
	headers := []string{"Name", "Bridges", "Injected", "Embedded"}
	if showDetails {
		headers = append(headers, "Bridge URL", "Universal Link", "JS Key", "About")
	}

	rows := make([][]string, 0, len(list))
	for _, w := range list {
		row := []string{
			w.Name,
			FormatBridges(w),
			FormatBool(w.IsInjected()),
			FormatBool(w.IsEmbedded()),
		}

		if showDetails {
			bridgeURL, universal, jsKey := "-", "-", "-"
			if w.Remote != nil {
				bridgeURL = orDash(w.Remote.BridgeURL)
				universal = orDash(w.Remote.UniversalLink)
			}
			if w.Injectable != nil {
				jsKey = orDash(w.Injectable.JSBridgeKey)
			}
			row = append(row, bridgeURL, universal, jsKey, orDash(w.AboutURL))
		}

		rows = append(rows, row)
	}

	align := []Align{AlignLeft, AlignLeft, AlignCenter, AlignCenter}
	if showDetails {
		align = append(align, AlignLeft, AlignLeft, AlignLeft, AlignLeft)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// WalletDetails converts a single wallet to a property/value table.
func WalletDetails(w wallets.Wallet) Data {
	rows := [][]string{
		{"Name", w.Name},
		{"Image", orDash(w.ImageURL)},
		{"About", orDash(w.AboutURL)},
		{"TON DNS", orDash(w.TonDNS)},
		{"Bridges", FormatBridges(w)},
	}
	if w.Remote != nil {
		rows = append(rows,
			[]string{"Bridge URL", orDash(w.Remote.BridgeURL)},
			[]string{"Universal Link", orDash(w.Remote.UniversalLink)},
			[]string{"Deep Link", orDash(w.Remote.DeepLink)},
		)
	}
	if w.Injectable != nil {
		rows = append(rows,
			[]string{"JS Key", orDash(w.Injectable.JSBridgeKey)},
			[]string{"Injected", FormatBool(w.Injectable.Injected)},
			[]string{"Embedded", FormatBool(w.Injectable.Embedded)},
		)
	}
	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// FormatBridges lists the bridge kinds a wallet supports.
func FormatBridges(w wallets.Wallet) string {
	var kinds []string
	if w.Remote != nil {
		kinds = append(kinds, wallets.BridgeTypeSSE)
	}
	if w.Injectable != nil {
		kinds = append(kinds, wallets.BridgeTypeJS)
	}
	if len(kinds) == 0 {
		return "-"
	}
	return strings.Join(kinds, ",")
}

// FormatBool renders a boolean as a check mark or a dash.
func FormatBool(b bool) string {
	if b {
		return "✓"
	}
	return "-"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
