package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory created under the user data dir.
	AppDirName = "product-tracker-app"

	// DefaultSessionTTL is the lifetime of a session issued by sign-in.
	DefaultSessionTTL = 3 * time.Hour

	// DefaultTokenIssuer is the "iss" claim of sealed session tokens.
	DefaultTokenIssuer = "product-tracker"

	// DefaultLockTimeout bounds waiting for the identity creation lock.
	DefaultLockTimeout = 5 * time.Second

	defaultDBFileName = "tracker.db"
)

func defaultConfig() (*StructuredConfig, error) {
	dataDir, err := userDataDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving user data dir: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionTTL:  DefaultSessionTTL,
			TokenIssuer: DefaultTokenIssuer,
		},
		Storage: Storage{
			Files: Files{
				AppDataDir:  filepath.Join(dataDir, AppDirName),
				LockTimeout: DefaultLockTimeout,
			},
		},
	}, nil
}

// resolve fills the fields whose defaults depend on other merged values.
func (cfg *StructuredConfig) resolve() {
	if cfg.App.EncryptionKey == "" {
		cfg.App.EncryptionKey = cfg.LegacyEncryptionKey
	}
	cfg.LegacyEncryptionKey = ""

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = cfg.LegacyDatabaseURL
	}
	cfg.LegacyDatabaseURL = ""

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.AppDataDir != "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.Storage.Files.AppDataDir, defaultDBFileName)
	}
}

// userDataDir returns the per-user data directory existing installations
// keep their identity in: $XDG_DATA_HOME (default ~/.local/share) on Linux
// and other unixes, ~/Library/Application Support on macOS and the roaming
// %AppData% folder on Windows.
func userDataDir() (string, error) {
	if runtime.GOOS == "windows" {
		return os.UserConfigDir()
	}

	if xdg.DataHome == "" {
		return "", fmt.Errorf("no data home directory")
	}
	return xdg.DataHome, nil
}
