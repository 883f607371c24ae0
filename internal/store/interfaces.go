package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/product-tracker/models"
)

// IdentityStore persists the encrypted private key of the local identity on
// the filesystem. Layout under the application data root:
//
//	<root>/<identity uuid>/private_key   base64(nonce || ciphertext+tag)
//	<root>/.identity.lock                 creation lock file
type IdentityStore interface {
	// FindExisting returns the id of the identity directory under the data
	// root, if any. Only directories whose name is a canonical UUID count.
	FindExisting() (uuid.UUID, bool, error)

	// Persist writes blob for identity id and returns its locator. The
	// identity directory only becomes visible once the blob is completely
	// written, so a failed call leaves nothing behind for FindExisting.
	Persist(id uuid.UUID, blob models.EncryptedBlob) (models.Locator, error)

	// Load reads and decodes the blob at locator. It fails with
	// [ErrStorageIO] if the file is unreadable and [ErrBlobFormat] if the
	// stored text is corrupt.
	Load(locator models.Locator) (models.EncryptedBlob, error)

	// Remove deletes the identity directory of id. Missing directories are
	// not an error.
	Remove(id uuid.UUID) error

	// LocatorFor returns the well-known locator of identity id.
	LocatorFor(id uuid.UUID) models.Locator

	// LockCreation takes the exclusive cross-process identity creation
	// lock, waiting until ctx is done. The returned func releases it.
	LockCreation(ctx context.Context) (unlock func() error, err error)

	// CleanupStaging removes staging directories left behind by an
	// interrupted Persist and reports how many were removed.
	CleanupStaging() (int, error)
}

// IdentityRegistry records identities and their key locators in the
// application database (the clients table).
type IdentityRegistry interface {
	// Save inserts identity. Returns [ErrIdentityAlreadyRegistered] if a row
	// with the same id exists.
	Save(ctx context.Context, identity models.Identity) error

	// FindByID returns the identity registered under id, or
	// [ErrIdentityNotRegistered].
	FindByID(ctx context.Context, id uuid.UUID) (models.Identity, error)

	// List returns all registered identities ordered by creation time.
	List(ctx context.Context) ([]models.Identity, error)
}
