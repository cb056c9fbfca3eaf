// Package validate implements the validate command.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/walletlist/cmd/application"
	"github.com/agentstation/walletlist/pkg/errors"
	"github.com/agentstation/walletlist/pkg/wallets"
)

// NewCommand creates the validate command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "validate <file>",
		GroupID: "management",
		Short:   "Validate a local wallets list file",
		Long: `Validate checks a wallets list document against the catalog schema.

Every record must carry a name, image, about_url and a non-empty bridge
list. An sse bridge needs a url and the record a universal_url; a js
bridge needs a key. The first violation is reported.`,
		Example: `  walletlist validate wallets.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			body, err := os.ReadFile(path)
			if err != nil {
				return errors.WrapResource("read", "file", path, err)
			}

			dtos, err := wallets.Decode(body)
			if err != nil {
				app.Logger().Debug().Err(err).Str("file", path).Msg("Validation failed")
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d wallets valid\n", path, len(dtos))
			return nil
		},
	}
}
