package lioness

import (
	"crypto/subtle"
	"errors"
	"fmt"
)

var (
	ErrInvalidKeyLength = errors.New("lioness: invalid master key length")
	ErrMessageTooShort  = errors.New("lioness: message too short")
)

// Hash is the keyed hash a Cipher consumes. Implementations must be
// deterministic, with a fixed digest size known up front.
type Hash interface {
	// Size returns the digest size H in bytes.
	Size() int
	// Digest computes the keyed digest of msg. The key is always one
	// H-byte round subkey.
	Digest(key, msg []byte) ([]byte, error)
}

// Stream is the keystream generator a Cipher consumes. Implementations
// must be deterministic given the key and able to produce output of any
// requested length.
type Stream interface {
	// KeySize returns the key length the generator accepts, in bytes.
	KeySize() int
	// Keystream returns n bytes of keystream derived from key.
	Keystream(key []byte, n int) ([]byte, error)
}

// Cipher is a LIONESS instance bound to one hash/keystream pairing.
// The digest size H of the hash fixes everything else: the split point
// between the two message segments, the master key length (4*H) and the
// minimum message length (H+1).
//
// A Cipher holds no per-call state, so it is safe for concurrent use as
// long as the underlying primitives are.
type Cipher struct {
	hash   Hash
	stream Stream
	size   int // digest size H
}

// New creates a Cipher from the given primitives. The generator's key
// size must equal the hash digest size, because each stream round keys
// the generator with subkey XOR Left, both H bytes.
func New(h Hash, s Stream) (*Cipher, error) {
	if h == nil || s == nil {
		return nil, errors.New("lioness: nil primitive")
	}
	size := h.Size()
	if size <= 0 {
		return nil, fmt.Errorf("lioness: invalid digest size %d", size)
	}
	if ks := s.KeySize(); ks != size {
		return nil, fmt.Errorf("lioness: stream key size %d does not match digest size %d", ks, size)
	}
	return &Cipher{hash: h, stream: s, size: size}, nil
}

// DigestSize returns H, the digest size of the bound hash.
func (c *Cipher) DigestSize() int { return c.size }

// KeySize returns the master key length, 4*H.
func (c *Cipher) KeySize() int { return 4 * c.size }

// MinMessageSize returns the smallest encryptable message length, H+1.
func (c *Cipher) MinMessageSize() int { return c.size + 1 }

// Encrypt returns the ciphertext of msg under the master key. The
// ciphertext has exactly the length of msg. The key must be KeySize()
// bytes and msg at least MinMessageSize() bytes; msg itself is never
// modified.
func (c *Cipher) Encrypt(key, msg []byte) ([]byte, error) {
	if err := c.check(key, msg); err != nil {
		return nil, err
	}
	out := append([]byte(nil), msg...)
	if err := c.encrypt(key, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt returns the plaintext of msg under the master key. It is the
// exact inverse of Encrypt: Decrypt(k, Encrypt(k, m)) == m.
func (c *Cipher) Decrypt(key, msg []byte) ([]byte, error) {
	if err := c.check(key, msg); err != nil {
		return nil, err
	}
	out := append([]byte(nil), msg...)
	if err := c.decrypt(key, out); err != nil {
		return nil, err
	}
	return out, nil
}

// EncryptInPlace encrypts block in place, avoiding the copy Encrypt
// makes. Validation happens before any mutation, so on a key or length
// error the block is untouched. If a primitive fails mid-round the block
// is left holding intermediate round state; the pairings in package
// primitive cannot fail once New has accepted them.
func (c *Cipher) EncryptInPlace(key, block []byte) error {
	if err := c.check(key, block); err != nil {
		return err
	}
	return c.encrypt(key, block)
}

// DecryptInPlace decrypts block in place, with the same validation and
// failure behavior as EncryptInPlace.
func (c *Cipher) DecryptInPlace(key, block []byte) error {
	if err := c.check(key, block); err != nil {
		return err
	}
	return c.decrypt(key, block)
}

func (c *Cipher) check(key, msg []byte) error {
	if len(key) != c.KeySize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), c.KeySize())
	}
	if len(msg) < c.MinMessageSize() {
		return fmt.Errorf("%w: got %d bytes, want at least %d", ErrMessageTooShort, len(msg), c.MinMessageSize())
	}
	return nil
}

func (c *Cipher) encrypt(key, block []byte) error {
	k1, k2, k3, k4 := c.roundKeys(key)
	left, right := block[:c.size], block[c.size:]

	// R = R ^ S(L ^ K1)
	if err := c.streamRound(k1, left, right); err != nil {
		return err
	}
	// L = L ^ H(K2, R)
	if err := c.hashRound(k2, left, right); err != nil {
		return err
	}
	// R = R ^ S(L ^ K3)
	if err := c.streamRound(k3, left, right); err != nil {
		return err
	}
	// L = L ^ H(K4, R)
	return c.hashRound(k4, left, right)
}

func (c *Cipher) decrypt(key, block []byte) error {
	k1, k2, k3, k4 := c.roundKeys(key)
	left, right := block[:c.size], block[c.size:]

	// Every round XORs one segment with a value computed from the other,
	// so running the same rounds in reverse order undoes them exactly.

	// L = L ^ H(K4, R)
	if err := c.hashRound(k4, left, right); err != nil {
		return err
	}
	// R = R ^ S(L ^ K3)
	if err := c.streamRound(k3, left, right); err != nil {
		return err
	}
	// L = L ^ H(K2, R)
	if err := c.hashRound(k2, left, right); err != nil {
		return err
	}
	// R = R ^ S(L ^ K1)
	return c.streamRound(k1, left, right)
}

// streamRound rewrites Right keyed by Left: subkey XOR Left keys the
// generator and the resulting keystream is XORed into Right.
func (c *Cipher) streamRound(subkey, left, right []byte) error {
	streamKey := make([]byte, c.size)
	subtle.XORBytes(streamKey, subkey, left)

	ks, err := c.stream.Keystream(streamKey, len(right))
	if err != nil {
		return err
	}
	if len(ks) != len(right) {
		return fmt.Errorf("lioness: keystream is %d bytes, want %d", len(ks), len(right))
	}
	subtle.XORBytes(right, right, ks)
	return nil
}

// hashRound rewrites Left keyed by Right: the keyed digest of Right under
// the round subkey is XORed into Left. Digests longer than H are truncated
// to their first H bytes.
func (c *Cipher) hashRound(subkey, left, right []byte) error {
	digest, err := c.hash.Digest(subkey, right)
	if err != nil {
		return err
	}
	if len(digest) < c.size {
		return fmt.Errorf("lioness: digest is %d bytes, want %d", len(digest), c.size)
	}
	subtle.XORBytes(left, left, digest[:c.size])
	return nil
}
