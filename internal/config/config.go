// Package config loads runtime settings from environment variables and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/raddesk/raddesk/storage"
)

type Config struct {
	// DataDir is where file-backed storage drivers keep their data.
	DataDir string `mapstructure:"RADDESK_DATA_DIR"`

	// StorageDriver selects the persistence backend: memory, json or sqlite.
	StorageDriver string `mapstructure:"RADDESK_STORAGE"`

	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string `mapstructure:"RADDESK_LOG_LEVEL"`

	// LogFormat is "console" for human-readable output or "json".
	LogFormat string `mapstructure:"RADDESK_LOG_FORMAT"`
}

// Load reads configuration from the environment, with an optional .env
// file layered underneath. A missing .env file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("RADDESK_DATA_DIR", defaultDataDir())
	v.SetDefault("RADDESK_STORAGE", string(storage.DriverJSON))
	v.SetDefault("RADDESK_LOG_LEVEL", "info")
	v.SetDefault("RADDESK_LOG_FORMAT", "console")

	v.BindEnv("RADDESK_DATA_DIR")
	v.BindEnv("RADDESK_STORAGE")
	v.BindEnv("RADDESK_LOG_LEVEL")
	v.BindEnv("RADDESK_LOG_FORMAT")

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration is safe to run with.
func (c *Config) Validate() error {
	switch storage.Driver(c.StorageDriver) {
	case storage.DriverMemory, storage.DriverJSON, storage.DriverSQLite:
	default:
		return fmt.Errorf("RADDESK_STORAGE must be \"memory\", \"json\" or \"sqlite\", got %q", c.StorageDriver)
	}
	if storage.Driver(c.StorageDriver) != storage.DriverMemory && c.DataDir == "" {
		return fmt.Errorf("RADDESK_DATA_DIR is required for the %s driver", c.StorageDriver)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("RADDESK_LOG_FORMAT must be \"console\" or \"json\", got %q", c.LogFormat)
	}
	return nil
}

// StoragePath is the path handed to the storage driver: a directory for
// json, a database file for sqlite, empty for memory.
func (c *Config) StoragePath() string {
	switch storage.Driver(c.StorageDriver) {
	case storage.DriverSQLite:
		return filepath.Join(c.DataDir, "raddesk.db")
	case storage.DriverJSON:
		return c.DataDir
	default:
		return ""
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".raddesk"
	}
	return filepath.Join(home, ".raddesk")
}
