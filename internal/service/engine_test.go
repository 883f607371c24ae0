package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/product-tracker/internal/crypto"
	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/internal/store"
	"github.com/MKhiriev/product-tracker/models"
)

// memoryRegistry is an in-memory [store.IdentityRegistry].
type memoryRegistry struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Identity
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{rows: make(map[uuid.UUID]models.Identity)}
}

func (r *memoryRegistry) Save(_ context.Context, identity models.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[identity.ID]; ok {
		return store.ErrIdentityAlreadyRegistered
	}
	r.rows[identity.ID] = identity
	return nil
}

func (r *memoryRegistry) FindByID(_ context.Context, id uuid.UUID) (models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	identity, ok := r.rows[id]
	if !ok {
		return models.Identity{}, store.ErrIdentityNotRegistered
	}
	return identity, nil
}

func (r *memoryRegistry) List(_ context.Context) ([]models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	identities := make([]models.Identity, 0, len(r.rows))
	for _, identity := range r.rows {
		identities = append(identities, identity)
	}
	return identities, nil
}

type testEngine struct {
	root          string
	identities    IdentityManager
	authenticator SessionAuthenticator
	validator     SessionValidator
	registry      *memoryRegistry
}

func newTestEngine(t *testing.T, root string, registry *memoryRegistry, keyFill byte) testEngine {
	t.Helper()
	vault := newTestVault(t, keyFill)
	identities := NewIdentityManager(store.NewIdentityFileStore(root, logger.Nop()), registry, vault, 0, logger.Nop())

	return testEngine{
		root:          root,
		identities:    identities,
		authenticator: NewSessionAuthenticator(identities, 0, logger.Nop()),
		validator:     NewSessionValidator(),
		registry:      registry,
	}
}

func identityDirs(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	require.NoError(t, err)

	var dirs []string
	for _, entry := range entries {
		if _, err := uuid.Parse(entry.Name()); err == nil && entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs
}

func TestEngine_FreshInstallSignIn(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, t.TempDir(), newMemoryRegistry(), 0x42)

	has, err := e.identities.HasIdentity(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	identity, err := e.identities.CreateIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(e.root, identity.ID.String(), store.PrivateKeyFileName), identity.PrivateKeyPath.String())

	info, err := os.Stat(identity.PrivateKeyPath.String())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	session, err := e.authenticator.Authenticate(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, session.ClientID)
	assert.True(t, e.validator.IsValid(session))
}

func TestEngine_SecondCreateRejected(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, t.TempDir(), newMemoryRegistry(), 0x42)

	first, err := e.identities.CreateIdentity(ctx)
	require.NoError(t, err)

	_, err = e.identities.CreateIdentity(ctx)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	assert.Equal(t, []string{first.ID.String()}, identityDirs(t, e.root))
}

func TestEngine_TamperedBlob(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, t.TempDir(), newMemoryRegistry(), 0x42)

	identity, err := e.identities.CreateIdentity(ctx)
	require.NoError(t, err)

	data, err := os.ReadFile(identity.PrivateKeyPath.String())
	require.NoError(t, err)
	blob, err := models.ParseEncryptedBlob(string(data))
	require.NoError(t, err)

	raw := blob.Bytes()
	raw[len(raw)-1] ^= 0x01
	tampered, err := models.EncryptedBlobFromBytes(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(identity.PrivateKeyPath.String(), []byte(tampered.String()), 0o600))

	_, err = e.authenticator.Authenticate(ctx)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestEngine_WrongEncryptionKey(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	registry := newMemoryRegistry()

	_, err := newTestEngine(t, root, registry, 0x42).identities.CreateIdentity(ctx)
	require.NoError(t, err)

	_, err = newTestEngine(t, root, registry, 0x43).authenticator.Authenticate(ctx)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestEngine_NoIdentity(t *testing.T) {
	e := newTestEngine(t, filepath.Join(t.TempDir(), "missing"), newMemoryRegistry(), 0x42)

	_, err := e.authenticator.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestEngine_CorruptBlobText(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, t.TempDir(), newMemoryRegistry(), 0x42)

	identity, err := e.identities.CreateIdentity(ctx)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(identity.PrivateKeyPath.String(), []byte("%%% not base64 %%%"), 0o600))

	_, err = e.authenticator.Authenticate(ctx)
	assert.ErrorIs(t, err, store.ErrBlobFormat)
}

func TestEngine_MissingBlobFile(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, t.TempDir(), newMemoryRegistry(), 0x42)

	identity, err := e.identities.CreateIdentity(ctx)
	require.NoError(t, err)
	require.NoError(t, os.Remove(identity.PrivateKeyPath.String()))

	_, err = e.authenticator.Authenticate(ctx)
	assert.ErrorIs(t, err, store.ErrStorageIO)
}

func TestEngine_ConcurrentCreate(t *testing.T) {
	const callers = 8

	tests := []struct {
		name string
		// shared runs all callers through a single manager; otherwise every
		// caller gets its own, as separate processes would.
		shared bool
	}{
		{name: "one manager", shared: true},
		{name: "separate managers", shared: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			registry := newMemoryRegistry()

			managers := make([]IdentityManager, callers)
			for i := range managers {
				if tt.shared && i > 0 {
					managers[i] = managers[0]
					continue
				}
				managers[i] = newTestEngine(t, root, registry, 0x42).identities
			}

			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes []models.Identity
				rejected  int
			)
			for _, m := range managers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					identity, err := m.CreateIdentity(context.Background())

					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						successes = append(successes, identity)
					case errors.Is(err, ErrAlreadyExists):
						rejected++
					default:
						t.Errorf("unexpected error: %v", err)
					}
				}()
			}
			wg.Wait()

			require.Len(t, successes, 1)
			assert.Equal(t, callers-1, rejected)
			assert.Equal(t, []string{successes[0].ID.String()}, identityDirs(t, root))

			registered, err := managers[0].ListIdentities(context.Background())
			require.NoError(t, err)
			require.Len(t, registered, 1)
			assert.Equal(t, successes[0].ID, registered[0].ID)
		})
	}
}

func TestEngine_BackfillsLegacyIdentity(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	created, err := newTestEngine(t, root, newMemoryRegistry(), 0x42).identities.CreateIdentity(ctx)
	require.NoError(t, err)

	// a fresh registry stands in for an installation that predates it
	registry := newMemoryRegistry()
	e := newTestEngine(t, root, registry, 0x42)

	session, err := e.authenticator.Authenticate(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, session.ClientID)

	backfilled, err := registry.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.PrivateKeyPath, backfilled.PrivateKeyPath)
}
