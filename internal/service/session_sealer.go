package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/product-tracker/internal/crypto"
	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/internal/utils"
	"github.com/MKhiriev/product-tracker/models"
)

// sessionTokenKeyInfo is the HKDF info label of the session token MAC key.
const sessionTokenKeyInfo = "product-tracker/session-token/v1"

// sessionSealer is the concrete implementation of [SessionSealer]. Tokens
// are HS256 JWTs keyed with a subkey of the vault key, so a session cannot
// be forged without the installation's encryption key.
type sessionSealer struct {
	signKey []byte
	issuer  string
	now     func() time.Time
	logger  *logger.Logger
}

// NewSessionSealer derives the token signing key from vault and returns a
// [SessionSealer] stamping tokens with issuer.
func NewSessionSealer(vault crypto.KeyVault, issuer string, logger *logger.Logger) (SessionSealer, error) {
	signKey, err := vault.DeriveSubkey(sessionTokenKeyInfo)
	if err != nil {
		return nil, fmt.Errorf("error deriving session token key: %w", err)
	}

	return &sessionSealer{
		signKey: signKey,
		issuer:  issuer,
		now:     time.Now,
		logger:  logger,
	}, nil
}

func (s *sessionSealer) Seal(session models.Session) (string, error) {
	token, err := utils.GenerateSessionToken(s.issuer, session, s.signKey)
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionSealer.Seal").Msg("error sealing session")
		return "", fmt.Errorf("error sealing session: %w", err)
	}

	return token, nil
}

func (s *sessionSealer) Open(token string) (models.Session, error) {
	session, err := utils.ValidateSessionToken(token, s.signKey, s.issuer, s.now())
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "*sessionSealer.Open").Msg("session token rejected")
		return models.Session{}, fmt.Errorf("%w: %v", ErrSessionInvalid, err)
	}

	return session, nil
}
