package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidEncryptionKey indicates that the at-rest encryption key is
	// absent or not exactly 32 bytes long.
	ErrInvalidEncryptionKey = errors.New("ENCRYPTION_KEY must be set and exactly 32 bytes long")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty data directory or DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive session lifetime).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
