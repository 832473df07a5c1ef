// Package config handles klingnet-keys configuration.
//
// Settings are resolved in order: built-in defaults, the .conf file, then
// command-line flags. The result is checked by Validate before use.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the tool's runtime configuration.
type Config struct {
	// Config file the settings were read from (not persisted).
	File string

	// Key derivation
	Identity IdentityConfig

	// Variable-length digest
	Digest DigestConfig

	// Logging
	Log LogConfig
}

// IdentityConfig holds keypair derivation settings.
type IdentityConfig struct {
	Scheme string `conf:"identity.scheme"` // ed25519, secp256k1 or ed25519-seed
}

// DigestConfig holds digest settings.
type DigestConfig struct {
	Algorithm   string `conf:"digest.algo"` // blake2b or sha256
	DefaultSize int    `conf:"digest.size"` // Output bytes when --size is not given
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet-keys
//	macOS:   ~/Library/Application Support/KlingnetKeys
//	Windows: %APPDATA%\KlingnetKeys
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-keys"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetKeys")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "KlingnetKeys")
		}
		return filepath.Join(home, "AppData", "Roaming", "KlingnetKeys")
	default:
		return filepath.Join(home, ".klingnet-keys")
	}
}

// DefaultConfigFile returns the default config file path.
func DefaultConfigFile() string {
	return filepath.Join(DefaultDataDir(), "klingnet-keys.conf")
}
