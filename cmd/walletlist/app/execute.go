package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/walletlist/cmd/walletlist/cmd/embedded"
	"github.com/agentstation/walletlist/cmd/walletlist/cmd/list"
	"github.com/agentstation/walletlist/cmd/walletlist/cmd/validate"
	"github.com/agentstation/walletlist/internal/cmd/globals"
	"github.com/agentstation/walletlist/internal/cmd/output"
	"github.com/agentstation/walletlist/pkg/constants"
	"github.com/agentstation/walletlist/pkg/logging"
)

// Execute runs the walletlist CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)

	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	return rootCmd.ExecuteContext(logging.WithLogger(ctx, a.logger))
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "walletlist",
		Short:   "Wallets list resolver CLI",
		Version: a.version,
		Long: `Walletlist resolves the catalog of wallets a dApp can connect to.

It fetches the public wallets list, validates every record against the
catalog schema and merges it with the wallets injected into the local
environment, as configured in ~/.walletlist.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	flags := globals.AddFlags(rootCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setupCommand(cmd, flags)
	}

	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.err)
	rootCmd.SetVersionTemplate("walletlist {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, flags *globals.Flags) error {
	if flags.ConfigFile != "" {
		config, err := LoadConfig(flags.ConfigFile)
		if err != nil {
			return err
		}
		a.mu.Lock()
		a.config = config
		a.registry = nil
		a.manager = nil
		a.mu.Unlock()
	}

	a.config.UpdateFromFlags(flags)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(embedded.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(validate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// versionInfo is the structured output of the version command.
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Built     string `json:"built" yaml:"built"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.Format == "" && !a.config.Verbose {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "walletlist %s\n", a.version)
				return err
			}

			format, err := output.ParseFormat(a.config.Format)
			if err != nil {
				return err
			}
			info := versionInfo{
				Version:   a.version,
				Commit:    a.commit,
				Built:     a.date,
				BuiltBy:   a.builtBy,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), info)
		},
	}
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
