package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/walletlist/internal/cmd/globals"
	"github.com/agentstation/walletlist/pkg/constants"
	"github.com/agentstation/walletlist/pkg/errors"
	"github.com/agentstation/walletlist/pkg/injected"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	CatalogURL         string
	CatalogToken       string
	CatalogTokenHeader string
	HTTPTimeout        time.Duration
	MaxRetries         int

	// Injected environment
	EmbeddingWallet string
	InjectedWallets []injected.Provider

	// Logging configuration
	LogLevel    string // from --log-level, wins over everything
	EnvLogLevel string // from LOG_LEVEL, used when no flag is given
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables
// 3. .env files
// 4. Config file (path, or ~/.walletlist.yaml, or ./.walletlist.yaml)
// 5. Defaults
func LoadConfig(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("catalog_url", constants.DefaultCatalogURL)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("max_retries", constants.MaxRetries)

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".walletlist")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit path must exist.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "failed to read config file", err)
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		CatalogURL:         v.GetString("catalog_url"),
		CatalogToken:       v.GetString("catalog_token"),
		CatalogTokenHeader: v.GetString("catalog_token_header"),
		HTTPTimeout:        v.GetDuration("http_timeout"),
		MaxRetries:         v.GetInt("max_retries"),

		EmbeddingWallet: v.GetString("embedding_wallet"),

		EnvLogLevel: getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := v.UnmarshalKey("injected_wallets", &config.InjectedWallets); err != nil {
		return nil, errors.NewConfigError("injected_wallets", "invalid provider list", err)
	}

	if config.HTTPTimeout <= 0 {
		config.HTTPTimeout = constants.DefaultHTTPTimeout
	}
	if config.MaxRetries < 0 {
		return nil, errors.NewConfigError("max_retries", "must not be negative", nil)
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(flags *globals.Flags) {
	c.Verbose = c.Verbose || flags.Verbose
	c.Quiet = c.Quiet || flags.Quiet
	c.NoColor = c.NoColor || flags.NoColor
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
