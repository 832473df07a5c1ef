package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flags holds global command-line flags.
type Flags struct {
	Config   string
	Scheme   string
	LogLevel string
	LogFile  string
	LogJSON  bool

	fs *pflag.FlagSet
}

// Register binds the global flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Config, "config", "c", "", "Config file path (default: "+DefaultConfigFile()+")")
	fs.StringVar(&f.Scheme, "scheme", "", "Key scheme: ed25519, secp256k1, or ed25519-seed")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")
	f.fs = fs
}

// changed reports whether a flag was set explicitly.
func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// ApplyFlags applies explicitly set command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.changed("scheme") {
		cfg.Identity.Scheme = f.Scheme
	}
	if f.changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if f.changed("log-file") {
		cfg.Log.File = f.LogFile
	}
	if f.changed("log-json") {
		cfg.Log.JSON = f.LogJSON
	}
}

// Load loads configuration with the following precedence:
// 1. Default values
// 2. Config file
// 3. Command-line flags
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	if f != nil && f.Config != "" {
		cfg.File = f.Config
	}

	fileValues, err := LoadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	// Flags have the highest precedence.
	ApplyFlags(cfg, f)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
