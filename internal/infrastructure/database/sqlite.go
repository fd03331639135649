package database

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteDB wraps a gorm handle on a local sqlite file, used with DB_DRIVER=sqlite.
type SQLiteDB struct {
	DB *gorm.DB
}

// OpenSQLite opens path and auto-migrates the given models.
func OpenSQLite(path string, verbose bool, models ...interface{}) (*SQLiteDB, error) {
	logLevel := logger.Silent
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := migrateOrClose(db, models...); err != nil {
		return nil, err
	}

	return &SQLiteDB{DB: db}, nil
}

// migrateOrClose closes the pool when migration fails.
func migrateOrClose(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		return nil
	}
	if err := db.AutoMigrate(models...); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return fmt.Errorf("failed to migrate sqlite database: %w", err)
	}
	return nil
}

func (s *SQLiteDB) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLiteDB) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
