// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/models"
)

const (
	// PrivateKeyFileName is the fixed name of the key blob inside an
	// identity directory.
	PrivateKeyFileName = "private_key"

	creationLockName = ".identity.lock"
	stagingMarker    = ".tmp-"

	dirPerm  fs.FileMode = 0o700
	filePerm fs.FileMode = 0o600

	lockRetryDelay = 50 * time.Millisecond
)

// identityFileStore implements [IdentityStore] on top of the local
// filesystem. All paths are rooted at root, the application data directory.
type identityFileStore struct {
	root   string
	logger *logger.Logger
}

// NewIdentityFileStore returns an [IdentityStore] rooted at root. The
// directory is created lazily on the first write.
func NewIdentityFileStore(root string, logger *logger.Logger) IdentityStore {
	return &identityFileStore{
		root:   root,
		logger: logger,
	}
}

func (s *identityFileStore) FindExisting() (uuid.UUID, bool, error) {
	entries, err := os.ReadDir(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "identityFileStore.FindExisting").Msg("error reading data directory")
		return uuid.Nil, false, fmt.Errorf("%w: read data directory: %v", ErrStorageIO, err)
	}

	// os.ReadDir sorts entries by name, so the result is stable.
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		id, ok := parseIdentityDirName(entry.Name())
		if !ok {
			continue
		}

		return id, true, nil
	}

	return uuid.Nil, false, nil
}

func (s *identityFileStore) Persist(id uuid.UUID, blob models.EncryptedBlob) (models.Locator, error) {
	log := s.logger.With().Str("func", "identityFileStore.Persist").Str("identity_id", id.String()).Logger()

	if err := os.MkdirAll(s.root, dirPerm); err != nil {
		log.Err(err).Msg("error creating data directory")
		return "", fmt.Errorf("%w: create data directory: %v", ErrStorageIO, err)
	}

	finalDir := s.identityDir(id)
	if _, err := os.Lstat(finalDir); err == nil {
		return "", fmt.Errorf("%w: %s", ErrIdentityDirExists, id)
	}

	stagingDir, err := os.MkdirTemp(s.root, "."+id.String()+stagingMarker+"*")
	if err != nil {
		log.Err(err).Msg("error creating staging directory")
		return "", fmt.Errorf("%w: create staging directory: %v", ErrStorageIO, err)
	}

	published := false
	defer func() {
		if !published {
			_ = os.RemoveAll(stagingDir)
		}
	}()

	if err = writeFileSync(filepath.Join(stagingDir, PrivateKeyFileName), []byte(blob.String()), filePerm); err != nil {
		log.Err(err).Msg("error writing key blob")
		return "", fmt.Errorf("%w: write key blob: %v", ErrStorageIO, err)
	}
	syncDir(stagingDir)

	if err = os.Rename(stagingDir, finalDir); err != nil {
		log.Err(err).Msg("error publishing identity directory")
		return "", fmt.Errorf("%w: publish identity directory: %v", ErrStorageIO, err)
	}
	published = true
	syncDir(s.root)

	log.Debug().Msg("identity key persisted")
	return s.LocatorFor(id), nil
}

func (s *identityFileStore) Load(locator models.Locator) (models.EncryptedBlob, error) {
	if locator == "" {
		return models.EncryptedBlob{}, fmt.Errorf("%w: empty locator", ErrStorageIO)
	}

	data, err := os.ReadFile(locator.String())
	if err != nil {
		s.logger.Err(err).Str("func", "identityFileStore.Load").Msg("error reading key blob")
		return models.EncryptedBlob{}, fmt.Errorf("%w: read key blob: %v", ErrStorageIO, err)
	}

	blob, err := models.ParseEncryptedBlob(string(data))
	if err != nil {
		s.logger.Err(err).Str("func", "identityFileStore.Load").Msg("stored key blob is corrupt")
		return models.EncryptedBlob{}, fmt.Errorf("%w: %v", ErrBlobFormat, err)
	}

	return blob, nil
}

func (s *identityFileStore) Remove(id uuid.UUID) error {
	if err := os.RemoveAll(s.identityDir(id)); err != nil {
		s.logger.Err(err).Str("func", "identityFileStore.Remove").Str("identity_id", id.String()).Msg("error removing identity directory")
		return fmt.Errorf("%w: remove identity directory: %v", ErrStorageIO, err)
	}

	syncDir(s.root)
	return nil
}

func (s *identityFileStore) LocatorFor(id uuid.UUID) models.Locator {
	return models.Locator(filepath.Join(s.identityDir(id), PrivateKeyFileName))
}

func (s *identityFileStore) LockCreation(ctx context.Context) (func() error, error) {
	if err := os.MkdirAll(s.root, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", ErrStorageIO, err)
	}

	lock := flock.New(filepath.Join(s.root, creationLockName))

	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		s.logger.Err(err).Str("func", "identityFileStore.LockCreation").Msg("error acquiring identity creation lock")
		return nil, fmt.Errorf("%w: acquire creation lock: %v", ErrStorageIO, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: creation lock is held by another process", ErrStorageIO)
	}

	return lock.Unlock, nil
}

func (s *identityFileStore) CleanupStaging() (int, error) {
	entries, err := os.ReadDir(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: read data directory: %v", ErrStorageIO, err)
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() || !isStagingDirName(entry.Name()) {
			continue
		}

		if err := os.RemoveAll(filepath.Join(s.root, entry.Name())); err != nil {
			return removed, fmt.Errorf("%w: remove staging directory: %v", ErrStorageIO, err)
		}
		removed++
	}

	return removed, nil
}

func (s *identityFileStore) identityDir(id uuid.UUID) string {
	return filepath.Join(s.root, id.String())
}

// parseIdentityDirName accepts only the canonical lowercase hyphenated UUID
// form that Persist writes.
func parseIdentityDirName(name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(name)
	if err != nil || id.String() != name {
		return uuid.Nil, false
	}

	return id, true
}

func isStagingDirName(name string) bool {
	if !strings.HasPrefix(name, ".") {
		return false
	}

	idPart, _, found := strings.Cut(name[1:], stagingMarker)
	if !found {
		return false
	}

	_, ok := parseIdentityDirName(idPart)
	return ok
}
