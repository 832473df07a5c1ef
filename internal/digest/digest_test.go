package digest

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestDigest() *Digest {
	return NewWithLogger(zerolog.Nop())
}

func TestNew_DefaultState(t *testing.T) {
	s := newTestDigest().State()
	if s.Size != DefaultSize {
		t.Errorf("Size = %d, want %d", s.Size, DefaultSize)
	}
	// BLAKE2b-256 of the empty string.
	want := "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	if s.HashHex != want {
		t.Errorf("HashHex = %s, want %s", s.HashHex, want)
	}
}

func TestSetInput(t *testing.T) {
	d := newTestDigest()
	s := d.SetInput("abc")
	want := "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"
	if s.HashHex != want {
		t.Errorf("HashHex = %s, want %s", s.HashHex, want)
	}
	if s.Input != "abc" {
		t.Errorf("Input = %q, want %q", s.Input, "abc")
	}
}

func TestSetDigestSize_Clamp(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 32},
		{"0", 1},
		{"1", 1},
		{"16", 16},
		{"64", 64},
		{"65", 64},
		{"100", 64},
		{" 20 ", 20},
		{"99999999999999999999999999", 64},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			d := newTestDigest()
			d.SetInput("clamp")
			s, err := d.SetDigestSize(tt.raw)
			if err != nil {
				t.Fatalf("SetDigestSize(%q) error: %v", tt.raw, err)
			}
			if s.Size != tt.want {
				t.Errorf("Size = %d, want %d", s.Size, tt.want)
			}
			if len(s.HashHex) != tt.want*2 {
				t.Errorf("HashHex length = %d, want %d", len(s.HashHex), tt.want*2)
			}
		})
	}
}

func TestSetDigestSize_Invalid(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "1.5", "0x10", "+"} {
		t.Run(raw, func(t *testing.T) {
			d := newTestDigest()
			d.SetInput("keep me")
			before, _ := d.SetDigestSize("48")

			after, err := d.SetDigestSize(raw)
			if !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("SetDigestSize(%q) error = %v, want %v", raw, err, ErrInvalidSize)
			}
			if after.Error == "" {
				t.Error("Error should be set")
			}
			if after.Size != before.Size || after.HashHex != before.HashHex {
				t.Error("size or hash changed after rejected input")
			}
		})
	}
}

func TestSetDigestSize_ErrorCleared(t *testing.T) {
	d := newTestDigest()
	d.SetDigestSize("nope")
	s, err := d.SetDigestSize("8")
	if err != nil {
		t.Fatalf("SetDigestSize() error: %v", err)
	}
	if s.Error != "" {
		t.Errorf("Error = %q, want empty", s.Error)
	}
}

func TestDigest_WidthsAreNotPrefixes(t *testing.T) {
	d := newTestDigest()
	d.SetInput("the quick brown fox")

	s16, _ := d.SetDigestSize("16")
	s32, _ := d.SetDigestSize("32")
	s64, _ := d.SetDigestSize("64")

	if len(s16.HashHex) != 32 || len(s32.HashHex) != 64 || len(s64.HashHex) != 128 {
		t.Fatalf("unexpected lengths %d/%d/%d", len(s16.HashHex), len(s32.HashHex), len(s64.HashHex))
	}
	if strings.HasPrefix(s32.HashHex, s16.HashHex) || strings.HasPrefix(s64.HashHex, s32.HashHex) {
		t.Error("a narrower digest should not be a prefix of a wider one")
	}
}

func TestDigest_Deterministic(t *testing.T) {
	a := newTestDigest()
	b := newTestDigest()
	a.SetDigestSize("20")
	b.SetDigestSize("20")
	if a.SetInput("same").HashHex != b.SetInput("same").HashHex {
		t.Error("same input and size should hash the same")
	}
	if a.SetInput("same").HashHex == a.SetInput("Same").HashHex {
		t.Error("different inputs should hash differently")
	}
}

func TestDigest_SizeChangeKeepsInput(t *testing.T) {
	d := newTestDigest()
	d.SetInput("abc")
	d.SetDigestSize("10")
	s, _ := d.SetDigestSize("")

	want := "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"
	if s.HashHex != want {
		t.Errorf("HashHex = %s, want %s", s.HashHex, want)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", DefaultSize, false},
		{"   ", DefaultSize, false},
		{"0", MinSize, false},
		{"7", 7, false},
		{"1000", MaxSize, false},
		{"x", 0, true},
		{"-5", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSize(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestSum_PanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sum() should panic for size 0")
		}
	}()
	Sum([]byte("x"), 0)
}

func TestSumSHA256(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, tt := range tests {
		if got := SumSHA256([]byte(tt.in)); got != tt.want {
			t.Errorf("SumSHA256(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"blake2b", AlgorithmBLAKE2b, false},
		{"sha256", AlgorithmSHA256, false},
		{"", "", true},
		{"SHA256", "", true},
		{"md5", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlgorithm(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
