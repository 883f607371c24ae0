package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/product-tracker/models"
)

// IdentityManager owns the lifecycle of the single local identity: creating
// it once per installation and unlocking its signing key on demand.
type IdentityManager interface {
	// HasIdentity reports whether an identity directory exists.
	HasIdentity(ctx context.Context) (bool, error)

	// CreateIdentity generates, encrypts, persists and registers a new
	// Ed25519 identity. Returns ErrAlreadyExists if one exists already.
	CreateIdentity(ctx context.Context) (models.Identity, error)

	// LoadPrivateKey decrypts the private key of identity id and returns it
	// together with its public key. Returns ErrNotFound if id is unknown.
	LoadPrivateKey(ctx context.Context, id uuid.UUID) (models.KeyPair, error)

	// CurrentIdentity returns the installation's identity or ErrNoIdentity.
	CurrentIdentity(ctx context.Context) (models.Identity, error)

	// ListIdentities returns every identity in the registry, oldest first.
	ListIdentities(ctx context.Context) ([]models.Identity, error)
}

// SessionAuthenticator signs in the local identity.
type SessionAuthenticator interface {
	// Authenticate proves possession of the identity's private key by
	// signing and verifying a fresh timestamp challenge, then issues a
	// session.
	Authenticate(ctx context.Context) (models.Session, error)
}

// SessionValidator checks sessions issued by a [SessionAuthenticator].
type SessionValidator interface {
	// IsValid reports whether session has not expired yet.
	IsValid(session models.Session) bool
}

// SessionSealer converts sessions to and from tamper-evident strings.
type SessionSealer interface {
	// Seal returns a signed token carrying session.
	Seal(session models.Session) (string, error)

	// Open verifies a token produced by Seal and returns its session.
	// Returns ErrSessionInvalid on a bad signature, issuer or expiry.
	Open(token string) (models.Session, error)
}
