package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the length of the seed accepted by NewSeededReader.
const SeedSize = chacha20.KeySize

// SeededReader is a deterministic byte stream: the ChaCha20 keystream keyed by
// a 32-byte seed with an all-zero nonce. It never reads ambient entropy, so the
// same seed always yields the same bytes.
type SeededReader struct {
	cipher *chacha20.Cipher
}

// NewSeededReader creates a SeededReader from a 32-byte seed.
func NewSeededReader(seed []byte) (*SeededReader, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed, nonce[:])
	if err != nil {
		return nil, fmt.Errorf("init chacha20: %w", err)
	}
	return &SeededReader{cipher: c}, nil
}

// Read fills p with the next len(p) keystream bytes. It never fails.
func (r *SeededReader) Read(p []byte) (int, error) {
	clear(p)
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
