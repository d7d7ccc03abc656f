// Package config loads server configuration from defaults, an optional
// config.toml, and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"helloserver/internal/logging"
)

// Config holds all configuration settings for the application
type Config struct {
	// Port is the TCP port the HTTP server listens on
	Port int `toml:"port"`

	// Environment is the deployment environment name (development or production)
	Environment string `toml:"environment"`

	// LogDir is the directory for log files in development mode
	LogDir string `toml:"log_dir"`
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Port:        DefaultPort,
		Environment: "production",
		LogDir:      "./logs",
	}
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	// Start with default configuration
	config := defaultConfig()

	// Try to load from config.toml if it exists
	configPath := "config.toml"
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	// Override with environment variables if set
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || !ValidPort(p) {
			// An unusable PORT value falls back to the default rather than
			// aborting startup. Operators still get a trace of the bad value.
			logging.Warning("Ignoring invalid PORT=%q, using default %d", port, DefaultPort)
			config.Port = DefaultPort
		} else {
			config.Port = p
		}
	}

	if env := os.Getenv("HELLOSERVER_ENV"); env != "" {
		config.Environment = env
	}

	if logDir := os.Getenv("LOG_DIR"); logDir != "" {
		config.LogDir = logDir
	}

	// A file-sourced port outside the valid range is also replaced
	if !ValidPort(config.Port) {
		logging.Warning("Ignoring invalid port %d from config file, using default %d", config.Port, DefaultPort)
		config.Port = DefaultPort
	}

	return config, nil
}

// ValidPort reports whether p is a usable TCP port number
func ValidPort(p int) bool {
	return p >= MinPort && p <= MaxPort
}

// Addr returns the listen address for the configured port
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || os.Getenv("DEBUG") == "true"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Port: %d, Environment: %s, LogDir: %s", c.Port, c.Environment, c.LogDir)
}
