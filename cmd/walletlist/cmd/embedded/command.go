// Package embedded implements the embedded command.
package embedded

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/walletlist/cmd/application"
	"github.com/agentstation/walletlist/internal/cmd/output"
	"github.com/agentstation/walletlist/pkg/logging"
)

// NewCommand creates the embedded command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "embedded",
		GroupID: "core",
		Short:   "Show the wallet embedding the current environment",
		Long: `Embedded resolves the wallets list and prints the one wallet whose JS
bridge reports that it hosts the current environment. Nothing is printed
when no wallet, or more than one wallet, claims to be the host.

The embedding wallet is configured with embedding_wallet in the config
file or the EMBEDDING_WALLET environment variable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(output.DetectFormat(app.OutputFormat()).String())
			if err != nil {
				return err
			}

			m, err := app.Manager()
			if err != nil {
				return err
			}

			w, err := m.EmbeddedWallet(logging.WithOperation(cmd.Context(), "embedded"))
			if err != nil {
				return err
			}
			if w == nil {
				cmd.PrintErrln("No embedding wallet detected")
				return nil
			}

			return output.FormatWallet(cmd.OutOrStdout(), *w, format)
		},
	}
}
