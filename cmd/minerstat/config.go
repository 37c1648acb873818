package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the minerstat CLI.
type Config struct {
	// Miner host address (IP or hostname).
	Host string

	// API key for bearer authentication. Empty means unauthenticated
	// or sourced from MINER_API_KEY by the vnish package.
	APIKey string

	// Per-request timeout.
	Timeout time.Duration

	// Directory for snapshot files.
	OutputDir string
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Host:      "172.16.58.104",
		Timeout:   10 * time.Second,
		OutputDir: ".",
	}
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if v := os.Getenv("MINER_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("MINER_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("MINER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("MINER_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	return cfg
}
