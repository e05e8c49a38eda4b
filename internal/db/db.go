package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported storage drivers
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name
var ErrUnknownDriver = errors.New("unknown storage driver")

// KeyValueStore is the synchronous host store the snapshot is written to
type KeyValueStore interface {
	// Get returns the stored value; ok is false when the key is absent
	Get(key string) (value string, ok bool, err error)
	// Set replaces the value stored under key
	Set(key, value string) error
	Close() error
}

// Config selects and configures a storage backend
type Config struct {
	Driver string
	Path   string // sqlite database file

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Timeout       time.Duration
}

// Open returns the store selected by cfg.Driver
func Open(cfg Config) (KeyValueStore, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return OpenSQLite(cfg.Path)
	case DriverRedis:
		return OpenRedis(cfg)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// DefaultDatabasePath returns the path to the SQLite database file
func DefaultDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".pmboard", "pmboard.db"), nil
}

// openGorm opens the SQLite file at path and migrates the kv table
func openGorm(path string) (*gorm.DB, error) {
	if path == "" {
		var err error
		path, err = DefaultDatabasePath()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
