package config

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File: DefaultConfigFile(),
		Identity: IdentityConfig{
			Scheme: "ed25519",
		},
		Digest: DigestConfig{
			Algorithm:   "blake2b",
			DefaultSize: 32,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
