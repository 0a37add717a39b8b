// SQLite-backed KV, using GORM with the pure-Go glebarez driver. State lives
// in a single two-column table (key BLOB primary key, value BLOB); Set is an
// upsert so each write is individually atomic.
package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/offerhub/go-reputation-registry/internal/keys"
)

// kvRow is the GORM model for one key/value pair.
type kvRow struct {
	Key   []byte `gorm:"type:blob;primaryKey"`
	Value []byte `gorm:"type:blob;not null"`
}

// TableName returns the database table name for kvRow.
func (kvRow) TableName() string { return "kv_entries" }

// SQLite is a KV backed by an embedded SQLite database.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) a SQLite database at path, applies PRAGMAs,
// configures the pool, attaches the OpenTelemetry plugin, and migrates the
// kv table.
func OpenSQLite(path string) (*SQLite, error) {
	// Fail early if the parent directory does not exist (instead of the
	// opaque sqlite "out of memory (14)").
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&kvRow{}); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// openSQLiteDSN is the test hook: it opens a KV on an arbitrary DSN (e.g. a
// shared in-memory database) without the parent-directory check.
func openSQLiteDSN(dsn string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&kvRow{}); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Get implements KV.
func (s *SQLite) Get(ctx context.Context, key keys.Key) ([]byte, bool, error) {
	var row kvRow
	err := s.db.WithContext(ctx).Where("key = ?", key[:]).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Value, true, nil
}

// Set implements KV as an upsert on the primary key.
func (s *SQLite) Set(ctx context.Context, key keys.Key, value []byte) error {
	row := kvRow{Key: append([]byte(nil), key[:]...), Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&row).Error
}

// Has implements KV.
func (s *SQLite) Has(ctx context.Context, key keys.Key) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&kvRow{}).Where("key = ?", key[:]).Count(&n).Error
	return n > 0, err
}

// Remove implements KV. Removing an absent key is not an error.
func (s *SQLite) Remove(ctx context.Context, key keys.Key) error {
	return s.db.WithContext(ctx).Where("key = ?", key[:]).Delete(&kvRow{}).Error
}

// Close implements KV.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
