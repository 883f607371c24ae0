package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/product-tracker/internal/config"
	"github.com/MKhiriev/product-tracker/internal/logger"
)

// Storages groups the persistence components of the identity engine into a
// single value that can be passed to the service layer.
type Storages struct {
	// Identities is the filesystem store holding the encrypted identity key.
	Identities IdentityStore

	// Registry is the SQL-backed clients table.
	Registry IdentityRegistry

	db *DB
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the registry database named by cfg.DB.DSN (SQLite file or
//     PostgreSQL URL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the identity file store rooted at cfg.Files.AppDataDir.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	logger.Info().Str("func", "NewStorages").Str("driver", db.Driver()).Msg("identity registry migrated")

	return &Storages{
		Identities: NewIdentityFileStore(cfg.Files.AppDataDir, logger),
		Registry:   NewIdentityRegistry(db, logger),
		db:         db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
