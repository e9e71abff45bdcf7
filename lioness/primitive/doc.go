// Package primitive provides ready-made hash and keystream pairings for
// the lioness cipher.
//
// Keyed hashes:
//   - Blake2b: BLAKE2b with a selectable digest size (1 to 64 bytes)
//   - Blake3: keyed BLAKE3 with a 32-byte digest
//   - HMAC: HMAC over any hash.Hash constructor
//   - Shake: SHAKE256 over key||message with a selectable digest size
//
// Keystream generators:
//   - ChaCha20: 32-byte key, zero nonce
//   - Salsa20: 32-byte key, zero nonce
//   - AESCTR: AES-CTR with a zero IV and a 16, 24 or 32-byte key
//   - Blake3Stream: keyed BLAKE3 XOF, 32-byte key
//   - ShakeStream: SHAKE256 XOF with a selectable key size
//
// The cipher keys its generator afresh on every round, so the generators
// here are pure deterministic expanders with no nonce surface. Pair a
// hash with a generator whose key size equals the digest size: Blake3
// with ChaCha20 matches the classic pairing, Blake2b or Shake at reduced
// sizes pair with ShakeStream for small test instances.
package primitive
