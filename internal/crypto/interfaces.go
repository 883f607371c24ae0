package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keyvault_mock.go -package=mock

import "github.com/MKhiriev/product-tracker/models"

// KeyVault performs authenticated symmetric encryption of data at rest with
// the process-wide 256-bit key supplied through configuration.
//
// Blob layout:
//
//	nonce (12 bytes) || ciphertext || GCM tag (16 bytes)
//
// The vault knows nothing about files, identities or sessions; it only
// seals and opens byte payloads.
type KeyVault interface {
	// Encrypt seals plaintext with AES-256-GCM under a fresh random nonce.
	// Two calls with the same plaintext never return the same blob.
	Encrypt(plaintext []byte) (models.EncryptedBlob, error)

	// Decrypt opens a blob produced by Encrypt. It returns
	// [ErrAuthenticationFailed] if the tag does not verify (tampered input
	// or a different key) or the nonce is missing. No partial plaintext is
	// ever returned.
	Decrypt(blob models.EncryptedBlob) ([]byte, error)

	// DeriveSubkey returns a 32-byte key derived from the vault key with
	// HKDF-SHA256 and the given info label, so that other primitives (for
	// example session token MACs) never reuse the encryption key directly.
	DeriveSubkey(info string) ([]byte, error)

	// Destroy drops the key material. Every later call fails with
	// [ErrVaultDestroyed].
	Destroy()
}
