// Package lioness implements the LIONESS wide-block cipher construction.
//
// LIONESS composes a keyed hash with digest size H and a deterministic
// keystream generator into a strong pseudo-random permutation over a whole
// message of any length above H. The message is split into a fixed H-byte
// Left segment and a variable Right segment, then mixed by four alternating
// keyed rounds, keystream round first. Flipping any single input bit
// changes, with overwhelming probability, the entire output.
//
// Design goals:
//   - Primitive-agnostic: hash and keystream are injected capabilities
//   - Length preserving: ciphertext length always equals message length
//   - Keystream-first round order, fixed for interoperability
//   - No internal state: safe for concurrent use with stateless primitives
//
// The construction is an unauthenticated permutation, not an AEAD scheme:
// tampering with ciphertext scrambles the plaintext instead of failing.
// Callers that need integrity must layer a MAC on top.
package lioness
