package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers all configuration flags on fs and returns the config
// the flags write into. The returned value is only populated once fs has
// been parsed (cobra does this before running a command).
//
// Flags:
//
//	-k/--encryption-key  32-byte at-rest encryption key (hidden; prefer the
//	                     APP_ENCRYPTION_KEY variable, a flag value is visible
//	                     in the process list and shell history)
//	-f/--data-dir        application data directory
//	-d/--dsn             identity registry DSN (SQLite path or postgres:// URL)
//	-c/--config          json file path with configs
//	--session-ttl        session lifetime (e.g., "3h", "90m")
//	--token-issuer       sealed session token issuer
//	--lock-timeout       identity creation lock timeout (e.g., "5s")
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.App.EncryptionKey, "encryption-key", "k", "", "32-byte at-rest encryption key (prefer APP_ENCRYPTION_KEY)")
	fs.StringVarP(&cfg.Storage.Files.AppDataDir, "data-dir", "f", "", "Application data directory")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Identity registry DSN (SQLite path or postgres:// URL)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.DurationVar(&cfg.App.SessionTTL, "session-ttl", 0, "Session lifetime (e.g., 3h, 90m)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.Storage.Files.LockTimeout, "lock-timeout", 0, "Identity creation lock timeout (e.g., 5s)")

	_ = fs.MarkHidden("encryption-key")

	return cfg
}
