package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/product-tracker/internal/crypto"
	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/internal/store"
	"github.com/MKhiriev/product-tracker/models"
)

const defaultLockTimeout = 5 * time.Second

// identityManager is the concrete implementation of [IdentityManager].
//
// Identity creation is a critical section guarded twice: mu serializes
// callers inside this process and the store's creation lock serializes
// processes sharing the data directory. Both are held from the existence
// check until the identity is registered.
type identityManager struct {
	identities store.IdentityStore
	registry   store.IdentityRegistry
	vault      crypto.KeyVault

	// lockTimeout bounds waiting for the cross-process creation lock.
	lockTimeout time.Duration

	mu     sync.Mutex
	now    func() time.Time
	logger *logger.Logger
}

// NewIdentityManager constructs an [IdentityManager] over the given
// persistence components and key vault.
func NewIdentityManager(identities store.IdentityStore, registry store.IdentityRegistry, vault crypto.KeyVault, lockTimeout time.Duration, logger *logger.Logger) IdentityManager {
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}

	return &identityManager{
		identities:  identities,
		registry:    registry,
		vault:       vault,
		lockTimeout: lockTimeout,
		now:         time.Now,
		logger:      logger,
	}
}

func (m *identityManager) HasIdentity(ctx context.Context) (bool, error) {
	_, found, err := m.identities.FindExisting()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*identityManager.HasIdentity").Msg("error scanning for identity")
		return false, fmt.Errorf("error scanning for identity: %w", err)
	}

	return found, nil
}

func (m *identityManager) CreateIdentity(ctx context.Context) (models.Identity, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	lockCtx, cancel := context.WithTimeout(ctx, m.lockTimeout)
	defer cancel()

	unlock, err := m.identities.LockCreation(lockCtx)
	if err != nil {
		log.Err(err).Str("func", "*identityManager.CreateIdentity").Msg("error acquiring creation lock")
		return models.Identity{}, fmt.Errorf("error acquiring creation lock: %w", err)
	}
	defer func() {
		if err := unlock(); err != nil {
			log.Err(err).Str("func", "*identityManager.CreateIdentity").Msg("error releasing creation lock")
		}
	}()

	_, found, err := m.identities.FindExisting()
	if err != nil {
		log.Err(err).Str("func", "*identityManager.CreateIdentity").Msg("error scanning for identity")
		return models.Identity{}, fmt.Errorf("error scanning for identity: %w", err)
	}
	if found {
		return models.Identity{}, ErrAlreadyExists
	}

	keyPair, err := crypto.GenerateSigningKeyPair()
	if err != nil {
		return models.Identity{}, fmt.Errorf("error generating key pair: %w", err)
	}

	der, err := crypto.MarshalPrivateKey(keyPair.PrivateKey)
	clear(keyPair.PrivateKey)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error encoding private key: %w", err)
	}

	blob, err := m.vault.Encrypt(der)
	clear(der)
	if err != nil {
		log.Err(err).Str("func", "*identityManager.CreateIdentity").Msg("error encrypting private key")
		return models.Identity{}, fmt.Errorf("error encrypting private key: %w", err)
	}

	id := uuid.New()
	locator, err := m.identities.Persist(id, blob)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error persisting private key: %w", err)
	}

	identity := models.Identity{
		ID:             id,
		PrivateKeyPath: locator,
		CreatedAt:      m.now().UTC(),
	}

	if err = m.registry.Save(ctx, identity); err != nil {
		log.Err(err).Str("func", "*identityManager.CreateIdentity").Str("identity_id", id.String()).Msg("error registering identity, rolling back")
		if rmErr := m.identities.Remove(id); rmErr != nil {
			log.Err(rmErr).Str("func", "*identityManager.CreateIdentity").Str("identity_id", id.String()).Msg("error rolling back identity key")
		}
		return models.Identity{}, fmt.Errorf("%w: %w", ErrRegistration, err)
	}

	log.Info().Str("func", "*identityManager.CreateIdentity").Str("identity_id", id.String()).Msg("identity created")
	return identity, nil
}

func (m *identityManager) LoadPrivateKey(ctx context.Context, id uuid.UUID) (models.KeyPair, error) {
	log := logger.FromContext(ctx)

	identity, err := m.resolve(ctx, id)
	if err != nil {
		return models.KeyPair{}, err
	}

	blob, err := m.identities.Load(identity.PrivateKeyPath)
	if err != nil {
		log.Err(err).Str("func", "*identityManager.LoadPrivateKey").Str("identity_id", id.String()).Msg("error loading key blob")
		return models.KeyPair{}, fmt.Errorf("error loading private key: %w", err)
	}

	der, err := m.vault.Decrypt(blob)
	if err != nil {
		log.Err(err).Str("func", "*identityManager.LoadPrivateKey").Str("identity_id", id.String()).Msg("error decrypting key blob")
		return models.KeyPair{}, fmt.Errorf("error decrypting private key: %w", err)
	}
	defer clear(der)

	keyPair, err := crypto.ParsePrivateKey(der)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("error decoding private key: %w", err)
	}

	return keyPair, nil
}

func (m *identityManager) CurrentIdentity(ctx context.Context) (models.Identity, error) {
	id, found, err := m.identities.FindExisting()
	if err != nil {
		return models.Identity{}, fmt.Errorf("error scanning for identity: %w", err)
	}
	if !found {
		return models.Identity{}, ErrNoIdentity
	}

	return m.resolve(ctx, id)
}

func (m *identityManager) ListIdentities(ctx context.Context) ([]models.Identity, error) {
	identities, err := m.registry.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*identityManager.ListIdentities").Msg("error listing identity registry")
		return nil, fmt.Errorf("error listing identity registry: %w", err)
	}

	return identities, nil
}

// resolve returns the registered identity for id. An identity directory
// without a registry row (created before the registry existed) is
// registered under its well-known locator.
func (m *identityManager) resolve(ctx context.Context, id uuid.UUID) (models.Identity, error) {
	log := logger.FromContext(ctx)

	identity, err := m.registry.FindByID(ctx, id)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, store.ErrIdentityNotRegistered) {
		log.Err(err).Str("func", "*identityManager.resolve").Str("identity_id", id.String()).Msg("error reading identity registry")
		return models.Identity{}, fmt.Errorf("error reading identity registry: %w", err)
	}

	existing, found, err := m.identities.FindExisting()
	if err != nil {
		return models.Identity{}, fmt.Errorf("error scanning for identity: %w", err)
	}
	if !found || existing != id {
		return models.Identity{}, ErrNotFound
	}

	identity = models.Identity{
		ID:             id,
		PrivateKeyPath: m.identities.LocatorFor(id),
		CreatedAt:      m.now().UTC(),
	}

	switch err = m.registry.Save(ctx, identity); {
	case err == nil:
		log.Info().Str("func", "*identityManager.resolve").Str("identity_id", id.String()).Msg("identity registry backfilled")
	case errors.Is(err, store.ErrIdentityAlreadyRegistered):
		// registered concurrently under the same well-known locator
	default:
		log.Warn().Err(err).Str("func", "*identityManager.resolve").Str("identity_id", id.String()).Msg("error backfilling identity registry")
	}

	return identity, nil
}
