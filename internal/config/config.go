package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for a pricecheck run.
type Config struct {
	// File paths
	HoldingsFile string `mapstructure:"holdings_file"`
	OutputFile   string `mapstructure:"output_file"`

	// Fetch behaviour
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	MaxConcurrent int           `mapstructure:"max_concurrent"`
	FailFast      bool          `mapstructure:"fail_fast"`
	UserAgent     string        `mapstructure:"user_agent"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables (all optional):
//   - PRICECHECK_HOLDINGS_FILE (default holdings.csv)
//   - PRICECHECK_OUTPUT_FILE (default prices.csv)
//   - PRICECHECK_FETCH_TIMEOUT (default 15s)
//   - PRICECHECK_MAX_CONCURRENT (default 1, the sequential baseline)
//   - PRICECHECK_FAIL_FAST (default false: failed holdings are skipped)
//   - PRICECHECK_USER_AGENT
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("PRICECHECK")
	v.AutomaticEnv()

	v.SetDefault("holdings_file", "holdings.csv")
	v.SetDefault("output_file", "prices.csv")
	v.SetDefault("fetch_timeout", 15*time.Second)
	v.SetDefault("max_concurrent", 1)
	v.SetDefault("fail_fast", false)
	v.SetDefault("user_agent", "Mozilla/5.0 (X11; Linux x86_64) pricecheck/1.0")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.pricecheck")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	v.BindEnv("holdings_file", "PRICECHECK_HOLDINGS_FILE")
	v.BindEnv("output_file", "PRICECHECK_OUTPUT_FILE")
	v.BindEnv("fetch_timeout", "PRICECHECK_FETCH_TIMEOUT")
	v.BindEnv("max_concurrent", "PRICECHECK_MAX_CONCURRENT")
	v.BindEnv("fail_fast", "PRICECHECK_FAIL_FAST")
	v.BindEnv("user_agent", "PRICECHECK_USER_AGENT")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.MaxConcurrent < 1 {
		return nil, fmt.Errorf("max_concurrent must be at least 1, got %d", config.MaxConcurrent)
	}
	if config.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch_timeout must be positive, got %s", config.FetchTimeout)
	}

	return config, nil
}
