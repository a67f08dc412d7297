// Package db provides database connection and management functionality.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gestor-financeiro/backend/config"
	"github.com/gestor-financeiro/backend/internal/integration/persistence/model"
)

// Database wraps the GORM database connection.
type Database struct {
	db *gorm.DB
}

// NewPostgresConnection creates a new PostgreSQL database connection.
// SQL statements are logged outside production.
func NewPostgresConnection(cfg *config.DatabaseConfig, environment string) (*Database, error) {
	logLevel := logger.Warn
	if environment == "production" {
		logLevel = logger.Silent
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Database{db: db}, nil
}

// DB returns the underlying GORM database instance.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Close closes the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	slog.Info("Database connection closed")
	return nil
}

// Ping reports whether the database answers within timeout.
func Ping(db *gorm.DB, timeout time.Duration) bool {
	sqlDB, err := db.DB()
	if err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}

// Migrate creates or updates the cash register, ledger and report tables.
func (d *Database) Migrate() error {
	return Migrate(d.db)
}

// Migrate runs GORM auto-migration for every persisted model on db.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// Models lists the persisted models in migration order.
func Models() []interface{} {
	return []interface{}{
		&model.CashMovementModel{},
		&model.LedgerEntryModel{},
		&model.ReportModel{},
	}
}
