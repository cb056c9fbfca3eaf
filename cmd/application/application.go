// Package application provides the application interface for walletlist commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            m, err := app.Manager()
//	            if err != nil {
//	                return err
//	            }
//	            list, err := m.Wallets(cmd.Context())
//	            // ... use list
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    ManagerFunc: func(...walletlist.Option) (walletlist.Manager, error) {
//	        return walletlist.New(walletlist.WithFetcher(fake))
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/walletlist"
)

// Application provides the application interface that commands need.
// The App struct from cmd/walletlist/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Manager returns the wallets list manager.
	// Without options the default cached instance is returned; with options
	// a new instance is created on top of the configured defaults.
	Manager(opts ...walletlist.Option) (walletlist.Manager, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
