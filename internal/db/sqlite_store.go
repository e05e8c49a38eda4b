package db

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one row of the key-value table
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable regardless of gorm naming rules
func (Entry) TableName() string {
	return "kv_entries"
}

// SQLiteStore keeps values in a local SQLite file
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (and creates if needed) the database at path.
// An empty path uses DefaultDatabasePath.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := openGorm(path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Get reads the value stored under key
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var entry Entry
	err := s.db.Where(&Entry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set inserts or replaces the value under key in a single statement
func (s *SQLiteStore) Set(key, value string) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
