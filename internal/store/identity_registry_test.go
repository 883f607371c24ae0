package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/product-tracker/internal/config"
	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/models"
)

func newTestRegistry(t *testing.T, driver string) (IdentityRegistry, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return NewIdentityRegistry(newDB(conn, driver, logger.Nop()), logger.Nop()), mock
}

func testIdentity() models.Identity {
	id := uuid.New()
	return models.Identity{
		ID:             id,
		PrivateKeyPath: models.Locator("/data/" + id.String() + "/private_key"),
		CreatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestSave_SQLiteQuery(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverSQLite)
	identity := testIdentity()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO clients (id,private_key_path,created_at) VALUES (?,?,?)")).
		WithArgs(identity.ID.String(), identity.PrivateKeyPath.String(), identity.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), identity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_PostgresPlaceholders(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverPostgres)
	identity := testIdentity()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO clients (id,private_key_path,created_at) VALUES ($1,$2,$3)")).
		WithArgs(identity.ID.String(), identity.PrivateKeyPath.String(), identity.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), identity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_UniqueViolation(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		err    error
	}{
		{
			name:   "postgres",
			driver: DriverPostgres,
			err:    pgError(pgerrcode.UniqueViolation),
		},
		{
			name:   "sqlite primary key",
			driver: DriverSQLite,
			err:    sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRegistry(t, tt.driver)

			mock.ExpectExec("INSERT INTO clients").WillReturnError(tt.err)

			err := repo.Save(context.Background(), testIdentity())
			assert.ErrorIs(t, err, ErrIdentityAlreadyRegistered)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSave_RetriesBusyDatabase(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverSQLite)

	mock.ExpectExec("INSERT INTO clients").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec("INSERT INTO clients").WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), testIdentity()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_GivesUpAfterRetries(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverPostgres)

	for range maxWriteRetries + 1 {
		mock.ExpectExec("INSERT INTO clients").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	err := repo.Save(context.Background(), testIdentity())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_NonRetryableError(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverPostgres)

	mock.ExpectExec("INSERT INTO clients").WillReturnError(errors.New("boom"))

	err := repo.Save(context.Background(), testIdentity())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_Success(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverSQLite)
	identity := testIdentity()

	rows := sqlmock.NewRows([]string{"id", "private_key_path", "created_at"}).
		AddRow(identity.ID.String(), identity.PrivateKeyPath.String(), identity.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, private_key_path, created_at FROM clients WHERE id = ?")).
		WithArgs(identity.ID.String()).
		WillReturnRows(rows)

	got, err := repo.FindByID(context.Background(), identity.ID)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestFindByID_NotRegistered(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverSQLite)

	mock.ExpectQuery("SELECT (.+) FROM clients").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrIdentityNotRegistered)
}

func TestFindByID_CorruptID(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverSQLite)

	rows := sqlmock.NewRows([]string{"id", "private_key_path", "created_at"}).
		AddRow("not-a-uuid", "/p", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM clients").WillReturnRows(rows)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestList(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverSQLite)
	first, second := testIdentity(), testIdentity()
	second.CreatedAt = first.CreatedAt.Add(time.Minute)

	rows := sqlmock.NewRows([]string{"id", "private_key_path", "created_at"}).
		AddRow(first.ID.String(), first.PrivateKeyPath.String(), first.CreatedAt).
		AddRow(second.ID.String(), second.PrivateKeyPath.String(), second.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, private_key_path, created_at FROM clients ORDER BY created_at ASC, id ASC")).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Identity{first, second}, got)
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverSQLite)

	mock.ExpectQuery("SELECT (.+) FROM clients").WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestList_Empty(t *testing.T) {
	repo, mock := newTestRegistry(t, DriverSQLite)

	mock.ExpectQuery("SELECT (.+) FROM clients").
		WillReturnRows(sqlmock.NewRows([]string{"id", "private_key_path", "created_at"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestStorages_SQLite exercises the registry against a real SQLite file,
// including migrations and the primary key constraint.
func TestStorages_SQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Storage{
		DB:    config.DB{DSN: filepath.Join(dir, "db", "tracker.db")},
		Files: config.Files{AppDataDir: dir},
	}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	assert.Equal(t, DriverSQLite, storages.db.Driver())

	identity := testIdentity()
	require.NoError(t, storages.Registry.Save(context.Background(), identity))

	got, err := storages.Registry.FindByID(context.Background(), identity.ID)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, got.ID)
	assert.Equal(t, identity.PrivateKeyPath, got.PrivateKeyPath)
	assert.True(t, identity.CreatedAt.Equal(got.CreatedAt))

	err = storages.Registry.Save(context.Background(), identity)
	assert.ErrorIs(t, err, ErrIdentityAlreadyRegistered)

	all, err := storages.Registry.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDriverForDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "/home/u/.local/share/product-tracker-app/tracker.db", want: DriverSQLite},
		{dsn: "file:test.db?cache=shared", want: DriverSQLite},
		{dsn: "postgres://u:p@localhost:5432/tracker", want: DriverPostgres},
		{dsn: "PostgreSQL://localhost/tracker", want: DriverPostgres},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, DriverForDSN(tt.dsn))
		})
	}
}
