package identity

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Klingon-tech/klingnet-keys/internal/log"
)

// State is a snapshot of the deriver: the phrase, its seed, the derived
// keypair and the last validation error.
//
// Either Mnemonic is set and matches SeedHex, or both are unset. KeyPair is
// set iff SeedHex holds 32 bytes. Error is non-empty only when the latest
// update was rejected, in which case the other fields are unchanged.
type State struct {
	Mnemonic *Mnemonic
	SeedHex  string
	KeyPair  *KeyPair
	Error    string
}

// Phrase returns the mnemonic phrase, or "" when unset.
func (s State) Phrase() string {
	if s.Mnemonic == nil {
		return ""
	}
	return s.Mnemonic.Phrase()
}

// Deriver keeps a mnemonic, its hex seed and the derived keypair in sync.
// Every update replaces the whole state or leaves it untouched.
// A Deriver is not safe for concurrent use.
type Deriver struct {
	scheme Scheme
	logger zerolog.Logger

	state State
	err   error
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithScheme selects the keypair algorithm (default ed25519).
func WithScheme(s Scheme) Option {
	return func(d *Deriver) { d.scheme = s }
}

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Deriver) { d.logger = l }
}

// NewDeriver returns an empty deriver.
func NewDeriver(opts ...Option) *Deriver {
	d := &Deriver{
		scheme: SchemeEd25519,
		logger: log.Identity,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Scheme returns the configured keypair algorithm.
func (d *Deriver) Scheme() Scheme {
	return d.scheme
}

// State returns a snapshot of the current state.
func (d *Deriver) State() State {
	s := d.state
	if s.KeyPair != nil {
		kp := *s.KeyPair
		kp.Secret = append([]byte(nil), kp.Secret...)
		kp.Public = append([]byte(nil), kp.Public...)
		s.KeyPair = &kp
	}
	return s
}

// Err returns the typed error behind State().Error, or nil.
func (d *Deriver) Err() error {
	return d.err
}

// Reset clears the phrase, seed, keypair and error.
func (d *Deriver) Reset() State {
	d.state = State{}
	d.err = nil
	return d.State()
}

// SetMnemonic replaces the phrase. An empty phrase resets the deriver; an
// invalid one only records the error.
func (d *Deriver) SetMnemonic(phrase string) State {
	if phrase == "" {
		return d.Reset()
	}

	m, err := ParseMnemonic(phrase)
	if err != nil {
		return d.reject("mnemonic", err)
	}
	return d.commit("mnemonic", m, hex.EncodeToString(m.entropy))
}

// SetSeedHex replaces the seed. An empty value resets the deriver. The seed
// is stored as given; it must decode to exactly 32 bytes.
func (d *Deriver) SetSeedHex(seedHex string) State {
	if seedHex == "" {
		return d.Reset()
	}

	entropy, err := hex.DecodeString(seedHex)
	if err != nil {
		return d.reject("seed", fmt.Errorf("%w: %w", ErrInvalidHexEncoding, err))
	}
	m, err := MnemonicFromEntropy(entropy)
	clear(entropy)
	if err != nil {
		return d.reject("seed", err)
	}
	return d.commit("seed", m, seedHex)
}

// commit builds the next state in full, keypair included, before swapping it
// in.
func (d *Deriver) commit(field string, m *Mnemonic, seedHex string) State {
	kp, err := d.keyPairFor(seedHex, d.state.KeyPair)
	if err != nil {
		return d.reject(field, err)
	}

	d.state = State{Mnemonic: m, SeedHex: seedHex, KeyPair: kp}
	d.err = nil
	if kp != nil {
		d.logger.Debug().
			Str("scheme", string(kp.Scheme)).
			Str("fingerprint", kp.Fingerprint()).
			Msg("Keypair derived")
	}
	return d.State()
}

func (d *Deriver) reject(field string, err error) State {
	d.state.Error = err.Error()
	d.err = err
	d.logger.Debug().Str("field", field).Err(err).Msg("Input rejected")
	return d.State()
}

// keyPairFor derives the keypair for seedHex. An empty seed keeps current.
// seedHex has been validated by the caller, so a decode or length failure is
// a programming error.
func (d *Deriver) keyPairFor(seedHex string, current *KeyPair) (*KeyPair, error) {
	if seedHex == "" {
		return current, nil
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		panic(fmt.Sprintf("identity: validated seed does not decode: %v", err))
	}
	defer clear(seed)
	if len(seed) != EntropySize {
		panic(fmt.Sprintf("identity: validated seed has %d bytes, want %d", len(seed), EntropySize))
	}
	return DeriveKeyPair(seed, d.scheme)
}
