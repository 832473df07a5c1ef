// Package digest hashes text with BLAKE2b at a caller-chosen output size,
// or with fixed-size SHA-256.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Klingon-tech/klingnet-keys/internal/log"
	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
)

// Digest size bounds in bytes.
const (
	DefaultSize = 32
	MinSize     = crypto.MinVarHashSize
	MaxSize     = crypto.MaxVarHashSize
)

// Algorithm names a digest function.
type Algorithm string

const (
	// AlgorithmBLAKE2b is the variable-size digest driven by Digest.
	AlgorithmBLAKE2b Algorithm = "blake2b"
	// AlgorithmSHA256 is fixed at 32 bytes.
	AlgorithmSHA256 Algorithm = "sha256"
)

// ParseAlgorithm converts a config/flag value into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmBLAKE2b, AlgorithmSHA256:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("unknown digest algorithm %q (want %s or %s)", s, AlgorithmBLAKE2b, AlgorithmSHA256)
	}
}

// ErrInvalidSize is returned for a digest size that is not an unsigned integer.
var ErrInvalidSize = errors.New("invalid digest size")

// State is a snapshot of the digest: HashHex is always the digest of Input
// at Size bytes. Error holds the last rejected size input.
type State struct {
	Input   string
	Size    int
	HashHex string
	Error   string
}

// Digest recomputes the hash whenever the input or the size changes.
// A Digest is not safe for concurrent use.
type Digest struct {
	logger zerolog.Logger
	state  State
}

// New returns a digest of the empty input at DefaultSize.
func New() *Digest {
	return NewWithLogger(log.Digest)
}

// NewWithLogger is New with an explicit logger.
func NewWithLogger(logger zerolog.Logger) *Digest {
	d := &Digest{logger: logger}
	d.state.Size = DefaultSize
	d.state.HashHex = Sum([]byte(d.state.Input), d.state.Size)
	return d
}

// State returns the current state.
func (d *Digest) State() State {
	return d.state
}

// SetInput replaces the text and recomputes the hash.
func (d *Digest) SetInput(text string) State {
	d.state.Input = text
	d.state.Error = ""
	d.recompute()
	return d.state
}

// SetDigestSize parses raw as the output size and recomputes the hash.
// Empty input selects DefaultSize; parsed values are clamped to
// [MinSize, MaxSize]. Input that is not an unsigned integer is rejected with
// ErrInvalidSize and leaves the size and hash unchanged.
func (d *Digest) SetDigestSize(raw string) (State, error) {
	size, err := ParseSize(raw)
	if err != nil {
		d.state.Error = err.Error()
		d.logger.Debug().Err(err).Msg("Digest size rejected")
		return d.state, err
	}
	d.state.Size = size
	d.state.Error = ""
	d.recompute()
	return d.state, nil
}

func (d *Digest) recompute() {
	d.state.HashHex = Sum([]byte(d.state.Input), d.state.Size)
	d.logger.Debug().
		Int("size", d.state.Size).
		Int("input_len", len(d.state.Input)).
		Msg("Digest updated")
}

// ParseSize converts a raw size string into a digest size in
// [MinSize, MaxSize]. Values too large for uint64 clamp to MaxSize.
func ParseSize(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSize, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return MaxSize, nil
		}
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidSize, raw)
	}
	switch {
	case n < MinSize:
		return MinSize, nil
	case n > MaxSize:
		return MaxSize, nil
	default:
		return int(n), nil
	}
}

// Sum returns the hex BLAKE2b digest of data at size bytes.
// size must be within [MinSize, MaxSize].
func Sum(data []byte, size int) string {
	h, err := crypto.VarHash(data, size)
	if err != nil {
		panic(fmt.Sprintf("digest: %v", err))
	}
	return hex.EncodeToString(h)
}

// SumSHA256 returns the hex SHA-256 digest of data.
func SumSHA256(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
