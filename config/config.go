package config

import (
	"github.com/unionlabs/bech32"
)

// Config holds the bech32 tool settings. Values are populated from flags and
// the environment through viper.
type Config struct {
	// LogLevel selects the logging level (debug, info, warn, error or
	// fatal).
	LogLevel string `mapstructure:"log_level"`

	// HRP is the human-readable part used when encoding.
	HRP string `mapstructure:"hrp"`

	// Variant is the checksum variant requested when encoding. Only
	// "bech32" is supported.
	Variant string `mapstructure:"variant"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		HRP:      "union",
		Variant:  bech32.VariantBech32,
	}
}
