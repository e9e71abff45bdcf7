package primitive

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/salsa20"
	"golang.org/x/crypto/sha3"
)

// ChaCha20 generates keystream with ChaCha20 under an all-zero nonce.
// The cipher keys it afresh per round, so no nonce management exists at
// this layer.
type ChaCha20 struct{}

// NewChaCha20 creates a ChaCha20 keystream generator.
func NewChaCha20() *ChaCha20 { return &ChaCha20{} }

// KeySize returns the ChaCha20 key size, 32.
func (*ChaCha20) KeySize() int { return chacha20.KeySize }

// Keystream returns n bytes of ChaCha20 keystream under key.
func (*ChaCha20) Keystream(key []byte, n int) ([]byte, error) {
	s, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	s.XORKeyStream(out, out)
	return out, nil
}

// Salsa20 generates keystream with Salsa20 under an all-zero nonce.
type Salsa20 struct{}

// NewSalsa20 creates a Salsa20 keystream generator.
func NewSalsa20() *Salsa20 { return &Salsa20{} }

// KeySize returns the Salsa20 key size, 32.
func (*Salsa20) KeySize() int { return 32 }

// Keystream returns n bytes of Salsa20 keystream under key.
func (*Salsa20) Keystream(key []byte, n int) ([]byte, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("primitive: salsa20 key is %d bytes, want 32", len(key))
	}
	var k [32]byte
	copy(k[:], key)
	out := make([]byte, n)
	salsa20.XORKeyStream(out, out, make([]byte, 8), &k)
	return out, nil
}

// AESCTR generates keystream with AES in counter mode under a zero IV.
type AESCTR struct {
	keySize int
}

// NewAESCTR creates an AES-CTR keystream generator. keySize selects the
// AES variant and must be 16, 24 or 32.
func NewAESCTR(keySize int) (*AESCTR, error) {
	switch keySize {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("primitive: aes key size %d not supported", keySize)
	}
	return &AESCTR{keySize: keySize}, nil
}

// KeySize returns the configured AES key size.
func (a *AESCTR) KeySize() int { return a.keySize }

// Keystream returns n bytes of AES-CTR keystream under key.
func (a *AESCTR) Keystream(key []byte, n int) ([]byte, error) {
	if len(key) != a.keySize {
		return nil, fmt.Errorf("primitive: aes key is %d bytes, want %d", len(key), a.keySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	cipher.NewCTR(block, make([]byte, aes.BlockSize)).XORKeyStream(out, out)
	return out, nil
}

// Blake3Stream generates keystream from the keyed BLAKE3 XOF. The key
// must be exactly 32 bytes.
type Blake3Stream struct{}

// NewBlake3Stream creates a BLAKE3 XOF keystream generator.
func NewBlake3Stream() *Blake3Stream { return &Blake3Stream{} }

// KeySize returns the BLAKE3 key size, 32.
func (*Blake3Stream) KeySize() int { return 32 }

// Keystream returns n bytes of BLAKE3 XOF output under key.
func (*Blake3Stream) Keystream(key []byte, n int) ([]byte, error) {
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(h.Digest(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShakeStream generates keystream from the SHAKE256 XOF. Unlike the
// fixed-key ciphers it accepts any declared key size, so it pairs with
// hashes of any digest size.
type ShakeStream struct {
	keySize int
}

// NewShakeStream creates a SHAKE256 keystream generator keyed with
// keySize-byte keys.
func NewShakeStream(keySize int) (*ShakeStream, error) {
	if keySize < 1 {
		return nil, fmt.Errorf("primitive: shake key size %d out of range", keySize)
	}
	return &ShakeStream{keySize: keySize}, nil
}

// KeySize returns the configured key size.
func (s *ShakeStream) KeySize() int { return s.keySize }

// Keystream returns n bytes of SHAKE256 output under key.
func (s *ShakeStream) Keystream(key []byte, n int) ([]byte, error) {
	if len(key) != s.keySize {
		return nil, fmt.Errorf("primitive: shake key is %d bytes, want %d", len(key), s.keySize)
	}
	x := sha3.NewShake256()
	x.Write(key)
	out := make([]byte, n)
	if _, err := io.ReadFull(x, out); err != nil {
		return nil, err
	}
	return out, nil
}
