// Package database opens the relational store and applies its schema.
package database

import (
	"embed"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite3 "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lehmann314159/vocablearn/internal/config"
)

const (
	DriverSQLite3 = "sqlite3"
	DriverMySQL   = "mysql"
	DriverMemory  = "memory"
)

//go:embed migrations
var migrationsFS embed.FS

// Open opens a connection pool for the configured driver
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverSQLite3:
		db, err := sqlx.Open(DriverSQLite3, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// A single connection keeps ":memory:" databases intact and
		// serializes writers on file databases.
		db.SetMaxOpenConns(1)
		return db, nil
	case DriverMySQL:
		mysqlCfg, err := mysqldriver.ParseDSN(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mysql dsn: %w", err)
		}
		mysqlCfg.ParseTime = true
		mysqlCfg.MultiStatements = true

		db, err := sqlx.Open(DriverMySQL, mysqlCfg.FormatDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies every pending up migration for the connection's driver.
// The connection stays open afterwards.
func Migrate(db *sqlx.DB) error {
	source, err := iofs.New(migrationsFS, "migrations/"+db.DriverName())
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	var m *migrate.Migrate
	switch db.DriverName() {
	case DriverSQLite3:
		driver, err := migratesqlite3.WithInstance(db.DB, &migratesqlite3.Config{})
		if err != nil {
			return fmt.Errorf("failed to create sqlite migration driver: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", source, DriverSQLite3, driver)
		if err != nil {
			return fmt.Errorf("failed to create migrator: %w", err)
		}
	case DriverMySQL:
		driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
		if err != nil {
			return fmt.Errorf("failed to create mysql migration driver: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", source, DriverMySQL, driver)
		if err != nil {
			return fmt.Errorf("failed to create migrator: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database driver %q", db.DriverName())
	}

	// m.Close is not called: it would close db as well.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
