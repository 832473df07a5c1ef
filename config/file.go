package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadFile loads configuration values from a .conf file.
// Format: key = value (one per line, # for comments)
// A missing file yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}
		key = strings.TrimSpace(key)
		values[key] = unquote(strings.TrimSpace(value))
	}

	return values, scanner.Err()
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "identity.scheme", "scheme":
		cfg.Identity.Scheme = strings.ToLower(value)

	case "digest.algo":
		cfg.Digest.Algorithm = strings.ToLower(value)
	case "digest.size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Digest.DefaultSize = n

	case "log.level":
		cfg.Log.Level = strings.ToLower(value)
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a default configuration file, creating its
// directory if needed.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	d := Default()
	content := `# klingnet-keys configuration
#
# Command-line flags override every value in this file.

# ============================================================================
# Identity
# ============================================================================

# Key scheme for derived keypairs: ed25519, secp256k1, or ed25519-seed
# (ed25519-seed uses the mnemonic entropy directly as the Ed25519 seed)
identity.scheme = ` + d.Identity.Scheme + `

# ============================================================================
# Digest
# ============================================================================

# Algorithm for "hash" when --algo is not given: blake2b or sha256
digest.algo = ` + d.Digest.Algorithm + `

# BLAKE2b output size in bytes for "hash" when --size is not given (1-64)
digest.size = ` + strconv.Itoa(d.Digest.DefaultSize) + `

# ============================================================================
# Logging
# ============================================================================

log.level = ` + d.Log.Level + `
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0600)
}
