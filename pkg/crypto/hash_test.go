package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: []byte{},
			want:  "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		},
		{
			name:  "hello",
			input: []byte("hello"),
			want:  "ea8f163db38682925e4491c5e58d4bb3506ef8c14eb78a86e908c5624a67200f",
		},
		{
			name:  "klingnet",
			input: []byte("klingnet"),
			want:  "677c013a662a24fb62497787316a59230409463ee36a1d7a57ba32607e20f467",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hash(tt.input)
			if hex.EncodeToString(got[:]) != tt.want {
				t.Errorf("Hash(%q) = %x, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestHash_DifferentInputs(t *testing.T) {
	h1 := Hash([]byte("input A"))
	h2 := Hash([]byte("input B"))
	if h1 == h2 {
		t.Error("different inputs produced the same hash")
	}
}

func TestFingerprint(t *testing.T) {
	got := Fingerprint([]byte("hello"))
	want := "ea8f163db38682925e4491c5e58d4bb3506ef8c1"
	if got != want {
		t.Errorf("Fingerprint() = %s, want %s", got, want)
	}
	if len(got) != FingerprintSize*2 {
		t.Errorf("fingerprint length = %d, want %d", len(got), FingerprintSize*2)
	}
}

func TestVarHash_KnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		size  int
		want  string
	}{
		{
			name:  "blake2b-512 empty",
			input: "",
			size:  64,
			want:  "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
		},
		{
			name:  "blake2b-512 abc",
			input: "abc",
			size:  64,
			want:  "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		},
		{
			name:  "blake2b-256 empty",
			input: "",
			size:  32,
			want:  "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			name:  "blake2b-256 abc",
			input: "abc",
			size:  32,
			want:  "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VarHash([]byte(tt.input), tt.size)
			if err != nil {
				t.Fatalf("VarHash() error: %v", err)
			}
			if hex.EncodeToString(got) != tt.want {
				t.Errorf("VarHash(%q, %d) = %x, want %s", tt.input, tt.size, got, tt.want)
			}
		})
	}
}

func TestVarHash_Length(t *testing.T) {
	for size := MinVarHashSize; size <= MaxVarHashSize; size++ {
		got, err := VarHash([]byte("length check"), size)
		if err != nil {
			t.Fatalf("VarHash(size=%d) error: %v", size, err)
		}
		if len(got) != size {
			t.Errorf("VarHash(size=%d) length = %d", size, len(got))
		}
	}
}

func TestVarHash_NotTruncation(t *testing.T) {
	data := []byte("width is a parameter")
	short, err := VarHash(data, 16)
	if err != nil {
		t.Fatalf("VarHash() error: %v", err)
	}
	long, err := VarHash(data, 32)
	if err != nil {
		t.Fatalf("VarHash() error: %v", err)
	}
	if bytes.HasPrefix(long, short) {
		t.Error("16-byte digest should not be a prefix of the 32-byte digest")
	}
}

func TestVarHash_InvalidSize(t *testing.T) {
	for _, size := range []int{-1, 0, 65, 1000} {
		if _, err := VarHash([]byte("x"), size); err == nil {
			t.Errorf("VarHash(size=%d) should fail", size)
		}
	}
}
