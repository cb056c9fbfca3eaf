// Package constants provides shared constants used throughout the walletlist codebase.
// This includes the default catalog location, timeouts, retry limits and
// the log file permission.
package constants

import "time"

// DefaultCatalogURL is the public wallets list maintained by the TON Connect project
const DefaultCatalogURL = "https://raw.githubusercontent.com/ton-connect/wallets-list/main/wallets.json"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for catalog HTTP requests
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute

	// ShutdownTimeout bounds graceful shutdown after a failed command
	ShutdownTimeout = 5 * time.Second

	// RetryBackoff is the base backoff duration for retries
	RetryBackoff = 500 * time.Millisecond

	// MaxRetryBackoff is the maximum backoff duration for retries
	MaxRetryBackoff = 10 * time.Second
)

// Limit constants define various limits and capacities
const (
	// MaxRetries is the maximum number of retry attempts for failed catalog fetches
	MaxRetries = 3

	// MaxCatalogBytes caps the size of a catalog response body (8 MiB)
	MaxCatalogBytes = 8 << 20
)

// FilePermissions is the permission for log files created by the logger (rw-r--r--)
const FilePermissions = 0644
