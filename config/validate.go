package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-keys/internal/digest"
	"github.com/Klingon-tech/klingnet-keys/internal/identity"
	"github.com/Klingon-tech/klingnet-keys/internal/log"
)

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if _, err := identity.ParseScheme(cfg.Identity.Scheme); err != nil {
		return fmt.Errorf("identity.scheme: %w", err)
	}
	if _, err := digest.ParseAlgorithm(cfg.Digest.Algorithm); err != nil {
		return fmt.Errorf("digest.algo: %w", err)
	}
	if cfg.Digest.DefaultSize < digest.MinSize || cfg.Digest.DefaultSize > digest.MaxSize {
		return fmt.Errorf("digest.size must be in range [%d, %d]", digest.MinSize, digest.MaxSize)
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}
	return nil
}
