package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/product-tracker/internal/config"
	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/migrations"
)

const (
	// DriverSQLite is the database/sql driver name registered by go-sqlite3.
	DriverSQLite = "sqlite3"
	// DriverPostgres is the database/sql driver name registered by pgx.
	DriverPostgres = "pgx"
)

// DB wraps *sql.DB with the driver-specific pieces the repositories need:
// the error classifier and the squirrel placeholder format.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the identity registry database named by cfg.DSN. A DSN
// starting with postgres:// or postgresql:// selects PostgreSQL via pgx;
// anything else is treated as a SQLite database file path whose parent
// directory is created when missing.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver := DriverForDSN(cfg.DSN)

	if driver == DriverSQLite {
		if err := createLocalDBDirIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnect").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY between pooled connections
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(4)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", driver).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	return newDB(conn, driver, log), nil
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	if driver == DriverPostgres {
		db.errorClassificator = NewPostgresErrorClassifier()
	} else {
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// DriverForDSN returns the database/sql driver name that serves dsn.
func DriverForDSN(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}

	return DriverSQLite
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations for the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.Driver())
}

// builder returns a squirrel statement builder using the placeholder format
// of the connection's driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func createLocalDBDirIfNotExists(dbFile string) error {
	if dbFile == "" || strings.HasPrefix(dbFile, "file:") || strings.Contains(dbFile, ":memory:") {
		return nil
	}

	return os.MkdirAll(filepath.Dir(dbFile), 0o700)
}
