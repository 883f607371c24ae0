// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EncryptionKeySize is the required length in bytes of App.EncryptionKey.
const EncryptionKeySize = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. A missing or
// wrongly sized encryption key is fatal: the application cannot read or
// protect its identity without it.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.EncryptionKey) != EncryptionKeySize {
		return ErrInvalidEncryptionKey
	}

	if cfg.App.SessionTTL <= 0 || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.Files.AppDataDir == "" || cfg.Storage.DB.DSN == "" || cfg.Storage.Files.LockTimeout <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}
