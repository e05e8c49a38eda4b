// Package config loads pmboard settings with viper: defaults, then the
// YAML file, then PMBOARD_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config is the user configuration read from ~/.pmboard/config.yaml
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Redis   RedisConfig   `mapstructure:"redis" yaml:"redis"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// StorageConfig selects where the snapshot lives
type StorageConfig struct {
	Driver string `mapstructure:"driver" yaml:"driver"` // sqlite, redis or memory
	Path   string `mapstructure:"path" yaml:"path"`     // sqlite database file
	Key    string `mapstructure:"key" yaml:"key"`       // key the snapshot is stored under
}

// RedisConfig is used when storage.driver is redis
type RedisConfig struct {
	Addr           string `mapstructure:"addr" yaml:"addr"`
	Password       string `mapstructure:"password" yaml:"password"`
	DB             int    `mapstructure:"db" yaml:"db"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// LogConfig controls the structured logger
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"` // empty logs to stderr
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   filepath.Join(Dir(), "pmboard.db"),
			Key:    "pmDashboard_v1",
		},
		Redis: RedisConfig{
			Addr:           "localhost:6379",
			TimeoutSeconds: 2,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Dir returns the pmboard directory in the user's home
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pmboard"
	}
	return filepath.Join(home, ".pmboard")
}

// DefaultPath returns the path of the config file
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
