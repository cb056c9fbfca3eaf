package output

import (
	"io"

	"github.com/agentstation/walletlist/internal/cmd/table"
	"github.com/agentstation/walletlist/pkg/wallets"
)

// FormatWallets writes a wallet list in the requested format.
func FormatWallets(w io.Writer, list []wallets.Wallet, format Format) error {
	var data any = list
	if format.IsTable() {
		data = table.WalletsToTableData(list, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatWallet writes a single wallet in the requested format.
func FormatWallet(w io.Writer, wallet wallets.Wallet, format Format) error {
	var data any = wallet
	if format.IsTable() {
		data = table.WalletDetails(wallet)
	}
	return NewFormatter(format).Format(w, data)
}
