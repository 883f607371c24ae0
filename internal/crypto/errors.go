package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned by [NewKeyVault] when the configured
	// key is not exactly 32 bytes. It is a startup condition, not a
	// per-call error.
	ErrInvalidKeyLength = errors.New("encryption key must be exactly 32 bytes long")

	// ErrAuthenticationFailed is returned when a blob fails authenticated
	// decryption: tampered ciphertext or tag, wrong key, or truncated input.
	ErrAuthenticationFailed = errors.New("authenticated decryption failed")

	// ErrVaultDestroyed is returned by every operation on a destroyed vault.
	ErrVaultDestroyed = errors.New("key vault is destroyed")

	// ErrInvalidPrivateKey is returned when decrypted key bytes are not a
	// PKCS#8 encoded Ed25519 private key.
	ErrInvalidPrivateKey = errors.New("invalid ed25519 private key")
)
