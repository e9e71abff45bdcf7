package lioness

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// roundKeys slices the master key into the four H-byte round subkeys,
// contiguous and in round order. Callers validate the key length first.
func (c *Cipher) roundKeys(key []byte) (k1, k2, k3, k4 []byte) {
	h := c.size
	return key[:h], key[h : 2*h], key[2*h : 3*h], key[3*h : 4*h]
}

// GenerateKey returns a fresh random master key of KeySize() bytes.
func (c *Cipher) GenerateKey() ([]byte, error) {
	key := make([]byte, c.KeySize())
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKey derives a master key of KeySize() bytes from an existing
// secret using HKDF-SHA256. salt can be nil (uses zero salt), info
// provides context binding so one secret can key several instances.
func (c *Cipher) DeriveKey(secret, salt, info []byte) ([]byte, error) {
	hk := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, c.KeySize())
	if _, err := io.ReadFull(hk, key); err != nil {
		return nil, err
	}
	return key, nil
}
