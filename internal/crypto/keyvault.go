// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/product-tracker/models"
)

// KeySize is the required length of the vault key (AES-256).
const KeySize = 32

// keyVault is the private implementation of [KeyVault]. The key is kept in a
// memguard Enclave (encrypted in memory) and is only decrypted into a locked
// buffer for the duration of a single operation.
type keyVault struct {
	mu  sync.RWMutex
	key *memguard.Enclave
}

// NewKeyVault constructs a [KeyVault] from a 32-byte key. The vault takes
// ownership of key: the slice is wiped once it has been sealed into the
// enclave, so callers must not reuse it.
//
// Returns [ErrInvalidKeyLength] if len(key) != [KeySize].
func NewKeyVault(key []byte) (KeyVault, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}

	return &keyVault{key: memguard.NewEnclave(key)}, nil
}

// Encrypt implements [KeyVault].
func (k *keyVault) Encrypt(plaintext []byte) (models.EncryptedBlob, error) {
	var blob models.EncryptedBlob
	err := k.withAEAD(func(gcm cipher.AEAD) error {
		nonce := make([]byte, gcm.NonceSize())
		if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
			return fmt.Errorf("generate nonce: %w", err)
		}

		blob = models.EncryptedBlob{
			Nonce:      nonce,
			Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
		}
		return nil
	})
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	return blob, nil
}

// Decrypt implements [KeyVault].
func (k *keyVault) Decrypt(blob models.EncryptedBlob) ([]byte, error) {
	var plaintext []byte
	err := k.withAEAD(func(gcm cipher.AEAD) error {
		if len(blob.Nonce) != gcm.NonceSize() || len(blob.Ciphertext) < gcm.Overhead() {
			return fmt.Errorf("%w: blob is truncated", ErrAuthenticationFailed)
		}

		// An error here means the key is wrong or the blob was modified.
		out, err := gcm.Open(nil, blob.Nonce, blob.Ciphertext, nil)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}
		plaintext = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

// DeriveSubkey implements [KeyVault].
func (k *keyVault) DeriveSubkey(info string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.key == nil {
		return nil, ErrVaultDestroyed
	}

	buf, err := k.key.Open()
	if err != nil {
		return nil, fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()

	subkey := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, buf.Bytes(), nil, []byte(info)), subkey); err != nil {
		return nil, fmt.Errorf("derive subkey: %w", err)
	}

	return subkey, nil
}

// Destroy implements [KeyVault].
func (k *keyVault) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.key = nil
}

// withAEAD opens the key enclave, builds an AES-256-GCM instance and passes
// it to fn. The plaintext key is wiped as soon as fn returns.
func (k *keyVault) withAEAD(fn func(gcm cipher.AEAD) error) error {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.key == nil {
		return ErrVaultDestroyed
	}

	buf, err := k.key.Open()
	if err != nil {
		return fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("create gcm: %w", err)
	}

	return fn(gcm)
}
