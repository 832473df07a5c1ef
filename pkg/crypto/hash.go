// Package crypto provides the cryptographic primitives used by klingnet-keys.
package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// HashSize is the length of a BLAKE3 hash in bytes.
const HashSize = 32

// FingerprintSize is the number of hash bytes kept in a key fingerprint.
const FingerprintSize = 20

// Variable-length digest bounds (BLAKE2b).
const (
	MinVarHashSize = 1
	MaxVarHashSize = blake2b.Size
)

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) [HashSize]byte {
	return blake3.Sum256(data)
}

// Fingerprint returns a short hex identifier for a public key.
// Fingerprint = hex(BLAKE3(pubkey)[:20]).
func Fingerprint(pubKey []byte) string {
	h := Hash(pubKey)
	return hex.EncodeToString(h[:FingerprintSize])
}

// VarHash computes a BLAKE2b digest configured for exactly size bytes of
// output. The size is part of the BLAKE2b parameter block, so digests of
// different sizes are unrelated rather than truncations of each other.
func VarHash(data []byte, size int) ([]byte, error) {
	if size < MinVarHashSize || size > MaxVarHashSize {
		return nil, fmt.Errorf("digest size must be in [%d, %d], got %d", MinVarHashSize, MaxVarHashSize, size)
	}
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, fmt.Errorf("init blake2b: %w", err)
	}
	h.Write(data)
	return h.Sum(nil), nil
}
