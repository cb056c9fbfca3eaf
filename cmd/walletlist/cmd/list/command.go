// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/walletlist"
	"github.com/agentstation/walletlist/cmd/application"
	"github.com/agentstation/walletlist/internal/cmd/filter"
	"github.com/agentstation/walletlist/internal/cmd/output"
	"github.com/agentstation/walletlist/pkg/logging"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var (
		catalogURL   string
		walletFilter filter.WalletFilter
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List wallets from the remote catalog",
		Long: `List fetches the wallets list, validates it and merges it with the
wallets injected into the local environment.

Use --format wide to include bridge URLs, universal links and JS bridge keys.`,
		Example: `  walletlist list                          # Table of all wallets
  walletlist list --format wide            # Include bridge details
  walletlist list --format json            # Machine readable output
  walletlist list --bridge js --injected   # Wallets injected locally
  walletlist list --embedded               # Wallets claiming the host environment
  walletlist list --url https://example.com/wallets.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(output.DetectFormat(app.OutputFormat()).String())
			if err != nil {
				return err
			}

			var opts []walletlist.Option
			if catalogURL != "" {
				opts = append(opts, walletlist.WithCatalogURL(catalogURL))
			}
			m, err := app.Manager(opts...)
			if err != nil {
				return err
			}

			ctx := logging.WithOperation(cmd.Context(), "list")
			list, err := m.Wallets(ctx)
			if err != nil {
				return err
			}

			list = walletFilter.Apply(list)
			app.Logger().Debug().Int("wallets", len(list)).Msg("Listing wallets")
			return output.FormatWallets(cmd.OutOrStdout(), list, format)
		},
	}

	cmd.Flags().StringVar(&catalogURL, "url", "", "wallets list URL (overrides configuration)")
	cmd.Flags().StringVar(&walletFilter.Search, "search", "", "only wallets whose name contains this text")
	cmd.Flags().StringVar(&walletFilter.Bridge, "bridge", "", "only wallets with this bridge: sse, js")
	cmd.Flags().BoolVar(&walletFilter.Injected, "injected", false, "only wallets injected into the environment")
	cmd.Flags().BoolVar(&walletFilter.Embedded, "embedded", false, "only the wallet embedding the environment")

	return cmd
}
