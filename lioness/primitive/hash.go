package primitive

import (
	"crypto/hmac"
	"fmt"
	"hash"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Blake2b is a keyed BLAKE2b hash with a selectable digest size.
type Blake2b struct {
	size int
}

// NewBlake2b creates a BLAKE2b hash producing size-byte digests.
// The size must be between 1 and 64.
func NewBlake2b(size int) (*Blake2b, error) {
	if size < 1 || size > blake2b.Size {
		return nil, fmt.Errorf("primitive: blake2b digest size %d out of range", size)
	}
	return &Blake2b{size: size}, nil
}

// Size returns the digest size.
func (h *Blake2b) Size() int { return h.size }

// Digest computes the keyed BLAKE2b digest of msg.
func (h *Blake2b) Digest(key, msg []byte) ([]byte, error) {
	d, err := blake2b.New(h.size, key)
	if err != nil {
		return nil, err
	}
	d.Write(msg)
	return d.Sum(nil), nil
}

// Blake3 is a keyed BLAKE3 hash with a 32-byte digest. BLAKE3 keys are
// exactly 32 bytes, which is also the digest size the cipher requires.
type Blake3 struct{}

// NewBlake3 creates a keyed BLAKE3 hash.
func NewBlake3() *Blake3 { return &Blake3{} }

// Size returns the digest size, 32.
func (*Blake3) Size() int { return 32 }

// Digest computes the keyed BLAKE3 digest of msg.
func (*Blake3) Digest(key, msg []byte) ([]byte, error) {
	d, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	d.Write(msg)
	return d.Sum(nil), nil
}

// HMAC is a keyed hash built from a hash.Hash constructor, for example
// NewHMAC(sha256.New) for HMAC-SHA256.
type HMAC struct {
	newHash func() hash.Hash
	size    int
}

// NewHMAC creates an HMAC hash over the given constructor.
func NewHMAC(h func() hash.Hash) *HMAC {
	return &HMAC{newHash: h, size: h().Size()}
}

// Size returns the digest size of the underlying hash.
func (m *HMAC) Size() int { return m.size }

// Digest computes the HMAC of msg under key.
func (m *HMAC) Digest(key, msg []byte) ([]byte, error) {
	mac := hmac.New(m.newHash, key)
	mac.Write(msg)
	return mac.Sum(nil), nil
}

// Shake is a keyed hash built from the SHAKE256 XOF over key||message,
// with a selectable digest size. It accepts any positive size, which
// makes it useful for reduced-size cipher instances.
type Shake struct {
	size int
}

// NewShake creates a SHAKE256 hash producing size-byte digests.
func NewShake(size int) (*Shake, error) {
	if size < 1 {
		return nil, fmt.Errorf("primitive: shake digest size %d out of range", size)
	}
	return &Shake{size: size}, nil
}

// Size returns the digest size.
func (h *Shake) Size() int { return h.size }

// Digest computes SHAKE256(key || msg) truncated to the digest size.
func (h *Shake) Digest(key, msg []byte) ([]byte, error) {
	x := sha3.NewShake256()
	x.Write(key)
	x.Write(msg)
	out := make([]byte, h.size)
	if _, err := io.ReadFull(x, out); err != nil {
		return nil, err
	}
	return out, nil
}
