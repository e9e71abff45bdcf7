package lioness

import (
	"crypto/cipher"
	"fmt"
)

// Block binds a Cipher to a master key and a fixed block width, exposing
// the result through the standard cipher.Block interface. It suits callers
// that move fixed-size records, such as onion packet bodies, and want the
// stdlib contract instead of variable-length calls.
type Block struct {
	cipher *Cipher
	key    []byte
	width  int
}

var _ cipher.Block = (*Block)(nil)

// NewBlock creates a Block of the given width. The key is copied, so the
// caller may zero its own slice afterwards. The width must be at least
// c.MinMessageSize().
func NewBlock(c *Cipher, key []byte, width int) (*Block, error) {
	if len(key) != c.KeySize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), c.KeySize())
	}
	if width < c.MinMessageSize() {
		return nil, fmt.Errorf("%w: block width %d, want at least %d", ErrMessageTooShort, width, c.MinMessageSize())
	}
	return &Block{
		cipher: c,
		key:    append([]byte(nil), key...),
		width:  width,
	}, nil
}

// BlockSize returns the fixed block width.
func (b *Block) BlockSize() int { return b.width }

// Encrypt encrypts the first BlockSize bytes of src into dst. Both must
// be at least BlockSize bytes; dst and src must overlap entirely or not
// at all, per the cipher.Block contract.
func (b *Block) Encrypt(dst, src []byte) {
	if len(src) < b.width || len(dst) < b.width {
		panic("lioness: input not full block")
	}
	copy(dst[:b.width], src[:b.width])
	if err := b.cipher.EncryptInPlace(b.key, dst[:b.width]); err != nil {
		// Key and width were validated in NewBlock; a failure here means
		// a broken primitive.
		panic(err)
	}
}

// Decrypt decrypts the first BlockSize bytes of src into dst.
func (b *Block) Decrypt(dst, src []byte) {
	if len(src) < b.width || len(dst) < b.width {
		panic("lioness: input not full block")
	}
	copy(dst[:b.width], src[:b.width])
	if err := b.cipher.DecryptInPlace(b.key, dst[:b.width]); err != nil {
		panic(err)
	}
}
