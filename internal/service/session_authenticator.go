package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/product-tracker/internal/crypto"
	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/models"
)

// DefaultSessionTTL is the lifetime of a session when none is configured.
const DefaultSessionTTL = 3 * time.Hour

// sessionAuthenticator is the concrete implementation of
// [SessionAuthenticator]. Signing in is a local proof of possession: the
// identity's key signs the current unix timestamp and the signature must
// verify against the identity's own public key.
type sessionAuthenticator struct {
	identities IdentityManager
	sessionTTL time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

// NewSessionAuthenticator constructs a [SessionAuthenticator] issuing
// sessions that live for sessionTTL (DefaultSessionTTL when not positive).
func NewSessionAuthenticator(identities IdentityManager, sessionTTL time.Duration, logger *logger.Logger) SessionAuthenticator {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &sessionAuthenticator{
		identities: identities,
		sessionTTL: sessionTTL,
		now:        time.Now,
		logger:     logger,
	}
}

// Authenticate signs in the local identity. It fails with ErrNoIdentity
// when no identity exists, propagates key loading errors unchanged and
// returns ErrSignature if self-verification fails. Nothing is retried.
func (a *sessionAuthenticator) Authenticate(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	identity, err := a.identities.CurrentIdentity(ctx)
	if err != nil {
		return models.Session{}, err
	}

	keyPair, err := a.identities.LoadPrivateKey(ctx, identity.ID)
	if err != nil {
		return models.Session{}, err
	}
	defer clear(keyPair.PrivateKey)

	now := a.now()
	challenge := []byte(strconv.FormatInt(now.Unix(), 10))

	signature := crypto.Sign(keyPair.PrivateKey, challenge)
	if !crypto.Verify(keyPair.PublicKey, challenge, signature) {
		log.Error().Str("func", "*sessionAuthenticator.Authenticate").Str("identity_id", identity.ID.String()).Msg("challenge signature does not verify")
		return models.Session{}, ErrSignature
	}

	session := models.Session{
		Token:     uuid.NewString(),
		ClientID:  identity.ID,
		ExpiresAt: now.Add(a.sessionTTL).Unix(),
	}

	log.Info().Str("func", "*sessionAuthenticator.Authenticate").Str("identity_id", identity.ID.String()).Time("expires_at", session.Expiry()).Msg("session issued")
	return session, nil
}
