package identity

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58/base58"

	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
)

// Scheme selects the asymmetric algorithm a seed is turned into.
type Scheme string

const (
	SchemeEd25519   Scheme = "ed25519"
	SchemeSecp256k1 Scheme = "secp256k1"

	// SchemeEd25519Seed uses the entropy itself as the Ed25519 private seed,
	// without the seeded generator.
	SchemeEd25519Seed Scheme = "ed25519-seed"
)

// ParseScheme converts a config/flag value into a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case SchemeEd25519, SchemeSecp256k1, SchemeEd25519Seed:
		return Scheme(s), nil
	default:
		return "", fmt.Errorf("unknown key scheme %q (want %s, %s or %s)",
			s, SchemeEd25519, SchemeSecp256k1, SchemeEd25519Seed)
	}
}

// KeyPair is a keypair derived from a 32-byte seed.
//
// For ed25519 and ed25519-seed, Secret is the 32-byte private seed and Public the 32-byte
// public key. For secp256k1, Secret is the 32-byte scalar and Public the
// 33-byte compressed point.
type KeyPair struct {
	Scheme Scheme
	Secret []byte
	Public []byte
}

// SecretHex returns the hex-encoded secret key.
func (kp *KeyPair) SecretHex() string {
	return hex.EncodeToString(kp.Secret)
}

// PublicHex returns the hex-encoded public key.
func (kp *KeyPair) PublicHex() string {
	return hex.EncodeToString(kp.Public)
}

// PublicBase58 returns the base58-encoded public key.
func (kp *KeyPair) PublicBase58() string {
	return base58.Encode(kp.Public)
}

// Fingerprint returns a short identifier of the public key, safe to log.
func (kp *KeyPair) Fingerprint() string {
	return crypto.Fingerprint(kp.Public)
}

// Equal reports whether two keypairs hold the same key material.
func (kp *KeyPair) Equal(other *KeyPair) bool {
	if kp == nil || other == nil {
		return kp == other
	}
	return kp.Scheme == other.Scheme &&
		string(kp.Secret) == string(other.Secret) &&
		string(kp.Public) == string(other.Public)
}

// DeriveKeyPair seeds a deterministic generator with the 32-byte seed and
// draws all key-generation randomness from it, except for ed25519-seed which
// uses the seed directly. The same seed always yields the same keypair.
func DeriveKeyPair(seed []byte, scheme Scheme) (*KeyPair, error) {
	rng, err := crypto.NewSeededReader(seed)
	if err != nil {
		return nil, fmt.Errorf("seed generator: %w", err)
	}

	switch scheme {
	case SchemeEd25519:
		priv, err := crypto.Ed25519KeyFromReader(rng)
		if err != nil {
			return nil, err
		}
		pub := priv.Public().(ed25519.PublicKey)
		return &KeyPair{
			Scheme: scheme,
			Secret: append([]byte(nil), priv.Seed()...),
			Public: append([]byte(nil), pub...),
		}, nil
	case SchemeEd25519Seed:
		priv := ed25519.NewKeyFromSeed(seed)
		return &KeyPair{
			Scheme: scheme,
			Secret: append([]byte(nil), priv.Seed()...),
			Public: append([]byte(nil), priv.Public().(ed25519.PublicKey)...),
		}, nil
	case SchemeSecp256k1:
		priv, err := crypto.PrivateKeyFromReader(rng)
		if err != nil {
			return nil, err
		}
		defer priv.Zero()
		return &KeyPair{
			Scheme: scheme,
			Secret: priv.Serialize(),
			Public: priv.PublicKey(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown key scheme %q", scheme)
	}
}
