package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/models"
)

var clientsTable = models.Identity{}.TableName()

const (
	colID             = "id"
	colPrivateKeyPath = "private_key_path"
	colCreatedAt      = "created_at"

	maxWriteRetries   = 3
	writeRetryBackoff = 20 * time.Millisecond
)

// identityRegistry is the SQL-backed implementation of [IdentityRegistry]
// over the clients table. Queries are built with squirrel so the same code
// serves SQLite and PostgreSQL.
type identityRegistry struct {
	db     *DB
	logger *logger.Logger
}

// NewIdentityRegistry constructs an [IdentityRegistry] backed by db.
func NewIdentityRegistry(db *DB, logger *logger.Logger) IdentityRegistry {
	logger.Debug().Msg("creating identity registry")
	return &identityRegistry{
		db:     db,
		logger: logger,
	}
}

// Save inserts identity into the clients table. Transient driver errors
// (busy database, lost connection) are retried with exponential backoff;
// a primary key violation maps to [ErrIdentityAlreadyRegistered].
func (r *identityRegistry) Save(ctx context.Context, identity models.Identity) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(clientsTable).
		Columns(colID, colPrivateKeyPath, colCreatedAt).
		Values(identity.ID.String(), identity.PrivateKeyPath.String(), identity.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*identityRegistry.Save").Msg("error building insert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	backoff := retry.WithMaxRetries(maxWriteRetries, retry.NewExponential(writeRetryBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil && r.db.errorClassificator.Classify(execErr) == Retryable {
			log.Warn().Err(execErr).Str("func", "*identityRegistry.Save").Msg("retrying insert")
			return retry.RetryableError(execErr)
		}
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*identityRegistry.Save").Str("identity_id", identity.ID.String()).Msg("error inserting identity")

		if r.db.errorClassificator.Classify(err) == Conflict {
			return ErrIdentityAlreadyRegistered
		}
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// FindByID returns the clients row for id.
func (r *identityRegistry) FindByID(ctx context.Context, id uuid.UUID) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(colID, colPrivateKeyPath, colCreatedAt).
		From(clientsTable).
		Where(sq.Eq{colID: id.String()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*identityRegistry.FindByID").Msg("error building select query")
		return models.Identity{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	identity, err := scanIdentity(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrIdentityNotRegistered
	}
	if err != nil {
		log.Err(err).Str("func", "*identityRegistry.FindByID").Str("identity_id", id.String()).Msg("error scanning identity")
		return models.Identity{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return identity, nil
}

// List returns every registered identity, oldest first.
func (r *identityRegistry) List(ctx context.Context) ([]models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(colID, colPrivateKeyPath, colCreatedAt).
		From(clientsTable).
		OrderBy(colCreatedAt+" ASC", colID+" ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*identityRegistry.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*identityRegistry.List").Msg("error querying identities")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	identities := make([]models.Identity, 0)
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			log.Err(err).Str("func", "*identityRegistry.List").Msg("error scanning identity")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		identities = append(identities, identity)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*identityRegistry.List").Msg("error iterating identities")
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return identities, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdentity(row rowScanner) (models.Identity, error) {
	var (
		rawID     string
		path      string
		createdAt time.Time
	)

	if err := row.Scan(&rawID, &path, &createdAt); err != nil {
		return models.Identity{}, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.Identity{}, fmt.Errorf("invalid identity id %q: %w", rawID, err)
	}

	return models.Identity{
		ID:             id,
		PrivateKeyPath: models.Locator(path),
		CreatedAt:      createdAt,
	}, nil
}
