// Package database opens the backing store for the API. The same GORM
// handle serves two variants of the store, picked by configuration at
// startup: a persisted PostgreSQL database migrated with SQL files, or
// an in-process SQLite database auto-migrated from the models.
package database

import (
	"fmt"
	"time"

	"spendbook/internal/config"
	"spendbook/internal/logger"
	"spendbook/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels is the list of GORM models backing the store.
var allModels = []interface{}{
	&models.User{},
	&models.Category{},
	&models.Record{},
}

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	driver string
	pgURL  string
}

// NewManager opens the store selected by cfg.DBDriver.
func NewManager(cfg *config.Config) (*Manager, error) {
	switch cfg.DBDriver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return &Manager{db: db, driver: cfg.DBDriver}, nil

	case "postgres":
		db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)

		return &Manager{db: db, driver: cfg.DBDriver, pgURL: URL(cfg)}, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use postgres or sqlite)", cfg.DBDriver)
	}
}

// Migrate brings the schema up to date. PostgreSQL applies the SQL
// migrations from the migrations/ directory; SQLite auto-migrates from
// the models.
func (m *Manager) Migrate() error {
	if m.driver == "sqlite" {
		return m.db.AutoMigrate(allModels...)
	}

	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.pgURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
