// Package config loads the environment-driven configuration once at process
// start; the resulting struct is passed down through constructors.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Offsets of the two node RPC endpoints from the cluster base port.
const (
	ChainRPCPortOffset  = 7
	WalletRPCPortOffset = 9
)

// Config holds all recognized environment options.
type Config struct {
	// HTTPDebugLevel enables verbose transport logging when greater than zero.
	HTTPDebugLevel int `envconfig:"HTTP_DEBUG_LEVEL" default:"0"`
	// DefaultWallet is the wallet name used when a command omits --name.
	DefaultWallet string `envconfig:"DEFAULT_WALLET" default:"Default"`
	// BasePort anchors the endpoint derivation: chain RPC listens on
	// BasePort+7, wallet RPC on BasePort+9.
	BasePort int `envconfig:"BASE_PORT" default:"26650"`
	// Passphrase and EncKey are default credentials; when unset, wallet
	// operations fall back to an interactive prompt.
	Passphrase string `envconfig:"PASSPHRASE"`
	EncKey     string `envconfig:"ENCKEY"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// validate performs basic validation of config values.
func (c *Config) validate() error {
	if c.BasePort < 1 || c.BasePort+WalletRPCPortOffset > 65535 {
		return fmt.Errorf("base port %d out of range", c.BasePort)
	}
	if c.HTTPDebugLevel < 0 {
		return fmt.Errorf("http debug level must not be negative, got %d", c.HTTPDebugLevel)
	}
	if c.DefaultWallet == "" {
		return fmt.Errorf("default wallet name cannot be empty")
	}
	return nil
}

// ChainRPCURL returns the consensus/chain RPC endpoint for the base port.
func (c *Config) ChainRPCURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", c.BasePort+ChainRPCPortOffset)
}

// WalletRPCURL returns the wallet/client RPC endpoint for the base port.
func (c *Config) WalletRPCURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", c.BasePort+WalletRPCPortOffset)
}
