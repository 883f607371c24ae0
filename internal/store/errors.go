package store

import "errors"

// Sentinel errors returned by the identity file store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorageIO is returned (wrapped) when the application data directory
	// cannot be read or written: permissions, disk full, missing parents.
	ErrStorageIO = errors.New("identity storage i/o error")

	// ErrBlobFormat is returned when a stored key blob exists but its text
	// encoding is corrupt or too short to hold a nonce. Decoding fails
	// before the key vault is ever invoked.
	ErrBlobFormat = errors.New("stored key blob is corrupt")

	// ErrIdentityDirExists is returned by Persist when a directory for the
	// requested identity id is already present.
	ErrIdentityDirExists = errors.New("identity directory already exists")
)

// Sentinel errors returned by [IdentityRegistry] implementations.
var (
	// ErrIdentityNotRegistered is returned when no registry row matches the
	// requested identity id.
	ErrIdentityNotRegistered = errors.New("identity is not registered")

	// ErrIdentityAlreadyRegistered is returned when inserting an identity
	// violates the primary key of the clients table.
	ErrIdentityAlreadyRegistered = errors.New("identity is already registered")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan identity row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan identity rows")
)
