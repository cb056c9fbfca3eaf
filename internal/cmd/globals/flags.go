// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	ConfigFile string
	Format     string
	LogLevel   string
	Quiet      bool
	Verbose    bool
	NoColor    bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "",
		"config file (default is $HOME/.walletlist.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "o", "",
		"Output format: table, json, yaml, wide")
	// --output is kept as a hidden alias of --format
	cmd.PersistentFlags().StringVar(&flags.Format, "output", "", "")
	_ = cmd.PersistentFlags().MarkHidden("output")

	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error (overrides -v/-q)")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"Minimal output (shortcut for --log-level=warn)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"Verbose output (shortcut for --log-level=debug)")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored output")

	return flags
}
