package service

import (
	"fmt"

	"github.com/MKhiriev/product-tracker/internal/config"
	"github.com/MKhiriev/product-tracker/internal/crypto"
	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/internal/store"
)

// Services groups the identity and session services into a single value
// handed to the command layer.
type Services struct {
	Identities    IdentityManager
	Authenticator SessionAuthenticator
	Validator     SessionValidator
	Sealer        SessionSealer
}

// NewServices wires the services over storages and vault using cfg.
func NewServices(storages *store.Storages, vault crypto.KeyVault, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	identities := NewIdentityManager(storages.Identities, storages.Registry, vault, cfg.Storage.Files.LockTimeout, logger)

	sealer, err := NewSessionSealer(vault, cfg.App.TokenIssuer, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session sealer: %w", err)
	}

	return &Services{
		Identities:    identities,
		Authenticator: NewSessionAuthenticator(identities, cfg.App.SessionTTL, logger),
		Validator:     NewSessionValidator(),
		Sealer:        sealer,
	}, nil
}
