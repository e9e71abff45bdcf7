package primitive

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/TheusHen/lioness/lioness"
)

var (
	_ lioness.Hash   = (*Blake2b)(nil)
	_ lioness.Hash   = (*Blake3)(nil)
	_ lioness.Hash   = (*HMAC)(nil)
	_ lioness.Hash   = (*Shake)(nil)
	_ lioness.Stream = (*ChaCha20)(nil)
	_ lioness.Stream = (*Salsa20)(nil)
	_ lioness.Stream = (*AESCTR)(nil)
	_ lioness.Stream = (*Blake3Stream)(nil)
	_ lioness.Stream = (*ShakeStream)(nil)
)

func testHashes(t *testing.T) []struct {
	name string
	hash lioness.Hash
} {
	t.Helper()
	blake2b16, err := NewBlake2b(16)
	if err != nil {
		t.Fatalf("NewBlake2b: %v", err)
	}
	shake48, err := NewShake(48)
	if err != nil {
		t.Fatalf("NewShake: %v", err)
	}
	return []struct {
		name string
		hash lioness.Hash
	}{
		{"blake2b16", blake2b16},
		{"blake3", NewBlake3()},
		{"hmac-sha256", NewHMAC(sha256.New)},
		{"shake48", shake48},
	}
}

func testStreams(t *testing.T) []struct {
	name   string
	stream lioness.Stream
} {
	t.Helper()
	aesctr24, err := NewAESCTR(24)
	if err != nil {
		t.Fatalf("NewAESCTR: %v", err)
	}
	shakeStream16, err := NewShakeStream(16)
	if err != nil {
		t.Fatalf("NewShakeStream: %v", err)
	}
	return []struct {
		name   string
		stream lioness.Stream
	}{
		{"chacha20", NewChaCha20()},
		{"salsa20", NewSalsa20()},
		{"aesctr24", aesctr24},
		{"blake3stream", NewBlake3Stream()},
		{"shakestream16", shakeStream16},
	}
}

func TestHashProperties(t *testing.T) {
	for _, h := range testHashes(t) {
		size := h.hash.Size()
		if size < 1 {
			t.Fatalf("%s: Size = %d", h.name, size)
		}
		key := make([]byte, size)
		for i := range key {
			key[i] = byte(i)
		}
		msg := []byte("the quick brown fox jumps over the lazy dog")

		d1, err := h.hash.Digest(key, msg)
		if err != nil {
			t.Fatalf("%s: Digest: %v", h.name, err)
		}
		if len(d1) != size {
			t.Fatalf("%s: digest length %d, want %d", h.name, len(d1), size)
		}
		d2, err := h.hash.Digest(key, msg)
		if err != nil {
			t.Fatalf("%s: Digest: %v", h.name, err)
		}
		if !bytes.Equal(d1, d2) {
			t.Fatalf("%s: digest is not deterministic", h.name)
		}

		// Sensitivity to the key.
		key2 := append([]byte(nil), key...)
		key2[0] ^= 0x01
		d3, err := h.hash.Digest(key2, msg)
		if err != nil {
			t.Fatalf("%s: Digest: %v", h.name, err)
		}
		if bytes.Equal(d1, d3) {
			t.Fatalf("%s: digest ignores the key", h.name)
		}

		// Sensitivity to the message.
		msg2 := append([]byte(nil), msg...)
		msg2[0] ^= 0x01
		d4, err := h.hash.Digest(key, msg2)
		if err != nil {
			t.Fatalf("%s: Digest: %v", h.name, err)
		}
		if bytes.Equal(d1, d4) {
			t.Fatalf("%s: digest ignores the message", h.name)
		}
	}
}

func TestStreamProperties(t *testing.T) {
	for _, s := range testStreams(t) {
		size := s.stream.KeySize()
		if size < 1 {
			t.Fatalf("%s: KeySize = %d", s.name, size)
		}
		key := make([]byte, size)
		for i := range key {
			key[i] = byte(i)
		}

		ks1, err := s.stream.Keystream(key, 64)
		if err != nil {
			t.Fatalf("%s: Keystream: %v", s.name, err)
		}
		if len(ks1) != 64 {
			t.Fatalf("%s: keystream length %d, want 64", s.name, len(ks1))
		}
		ks2, err := s.stream.Keystream(key, 64)
		if err != nil {
			t.Fatalf("%s: Keystream: %v", s.name, err)
		}
		if !bytes.Equal(ks1, ks2) {
			t.Fatalf("%s: keystream is not deterministic", s.name)
		}

		// A shorter request is a prefix of a longer one.
		ks3, err := s.stream.Keystream(key, 32)
		if err != nil {
			t.Fatalf("%s: Keystream: %v", s.name, err)
		}
		if !bytes.Equal(ks3, ks1[:32]) {
			t.Fatalf("%s: keystream is not prefix stable", s.name)
		}

		// Sensitivity to the key.
		key2 := append([]byte(nil), key...)
		key2[0] ^= 0x01
		ks4, err := s.stream.Keystream(key2, 64)
		if err != nil {
			t.Fatalf("%s: Keystream: %v", s.name, err)
		}
		if bytes.Equal(ks1, ks4) {
			t.Fatalf("%s: keystream ignores the key", s.name)
		}

		ks5, err := s.stream.Keystream(key, 0)
		if err != nil {
			t.Fatalf("%s: Keystream of 0 bytes: %v", s.name, err)
		}
		if len(ks5) != 0 {
			t.Fatalf("%s: keystream of 0 bytes has length %d", s.name, len(ks5))
		}
	}
}

func TestStreamKeyLength(t *testing.T) {
	for _, s := range testStreams(t) {
		bad := make([]byte, s.stream.KeySize()+1)
		if _, err := s.stream.Keystream(bad, 16); err == nil {
			t.Fatalf("%s: accepted a %d-byte key", s.name, len(bad))
		}
	}
}

func TestBlake2bSizeRange(t *testing.T) {
	if _, err := NewBlake2b(0); err == nil {
		t.Fatalf("NewBlake2b accepted size 0")
	}
	if _, err := NewBlake2b(65); err == nil {
		t.Fatalf("NewBlake2b accepted size 65")
	}
	for _, size := range []int{1, 32, 64} {
		h, err := NewBlake2b(size)
		if err != nil {
			t.Fatalf("NewBlake2b(%d): %v", size, err)
		}
		if h.Size() != size {
			t.Fatalf("Size = %d, want %d", h.Size(), size)
		}
	}
}

func TestShakeSizeRange(t *testing.T) {
	if _, err := NewShake(0); err == nil {
		t.Fatalf("NewShake accepted size 0")
	}
	if _, err := NewShakeStream(0); err == nil {
		t.Fatalf("NewShakeStream accepted key size 0")
	}
}

func TestAESCTRKeySizes(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		s, err := NewAESCTR(size)
		if err != nil {
			t.Fatalf("NewAESCTR(%d): %v", size, err)
		}
		if s.KeySize() != size {
			t.Fatalf("KeySize = %d, want %d", s.KeySize(), size)
		}
	}
	if _, err := NewAESCTR(20); err == nil {
		t.Fatalf("NewAESCTR accepted size 20")
	}
}

func TestPairWithCipher(t *testing.T) {
	c, err := lioness.New(NewBlake3(), NewChaCha20())
	if err != nil {
		t.Fatalf("lioness.New: %v", err)
	}
	key := make([]byte, c.KeySize())
	for i := range key {
		key[i] = byte(i)
	}
	msg := []byte("pairing the stock primitives with the cipher")

	ct, err := c.Encrypt(key, msg)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := c.Decrypt(key, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, msg) {
		t.Fatalf("round trip mismatch")
	}
}

func BenchmarkChaCha20Keystream(b *testing.B) {
	s := NewChaCha20()
	key := make([]byte, s.KeySize())
	b.SetBytes(64 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Keystream(key, 64*1024)
	}
}

func BenchmarkBlake3StreamKeystream(b *testing.B) {
	s := NewBlake3Stream()
	key := make([]byte, s.KeySize())
	b.SetBytes(64 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Keystream(key, 64*1024)
	}
}
