// Package identity derives a keypair from a BIP-39 mnemonic or its raw
// entropy and keeps the phrase, seed and keypair consistent.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits is the entropy size for 24-word mnemonics.
const MnemonicEntropyBits = 256

// EntropySize is the only supported entropy length in bytes.
const EntropySize = MnemonicEntropyBits / 8

// MnemonicWords is the only supported phrase length.
const MnemonicWords = 24

var (
	ErrInvalidPhrase            = errors.New("invalid mnemonic phrase")
	ErrInvalidHexEncoding       = errors.New("invalid hex encoding")
	ErrUnsupportedEntropyLength = errors.New("unsupported entropy length")
)

// Mnemonic is a validated 24-word English phrase and the entropy it encodes.
type Mnemonic struct {
	phrase  string
	entropy []byte
}

// Phrase returns the phrase with words separated by single spaces.
func (m *Mnemonic) Phrase() string {
	return m.phrase
}

// Entropy returns a copy of the entropy bytes.
func (m *Mnemonic) Entropy() []byte {
	return append([]byte(nil), m.entropy...)
}

// ParseMnemonic validates a phrase against the English wordlist and its
// embedded checksum and recovers the entropy.
func ParseMnemonic(phrase string) (*Mnemonic, error) {
	words := strings.Fields(phrase)
	if len(words) != MnemonicWords {
		return nil, fmt.Errorf("%w: expected %d words, got %d", ErrInvalidPhrase, MnemonicWords, len(words))
	}
	for i, w := range words {
		if _, ok := bip39.GetWordIndex(w); !ok {
			return nil, fmt.Errorf("%w: unknown word %q at position %d", ErrInvalidPhrase, w, i+1)
		}
	}

	normalized := strings.Join(words, " ")
	entropy, err := bip39.EntropyFromMnemonic(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPhrase, err)
	}
	return &Mnemonic{phrase: normalized, entropy: entropy}, nil
}

// MnemonicFromEntropy encodes 32 bytes of entropy as a 24-word phrase.
func MnemonicFromEntropy(entropy []byte) (*Mnemonic, error) {
	if len(entropy) != EntropySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrUnsupportedEntropyLength, EntropySize, len(entropy))
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedEntropyLength, err)
	}
	return &Mnemonic{phrase: phrase, entropy: append([]byte(nil), entropy...)}, nil
}

// GenerateMnemonic creates a new 24-word BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}
