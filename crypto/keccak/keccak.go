// Package keccak provides the Keccak-256/512 single-shot hashes used by
// the DAG cache builder, and the narrow Keccak-f[800] permutation used
// to frame the KawPoW seed and digest.
package keccak

import "golang.org/x/crypto/sha3"

// Sum256 returns the Keccak-256 digest of b.
func Sum256(b []byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	h.Sum(out[:0])
	return out
}

// Sum512 returns the Keccak-512 digest of b.
func Sum512(b []byte) [64]byte {
	var out [64]byte
	h := sha3.NewLegacyKeccak512()
	h.Write(b)
	h.Sum(out[:0])
	return out
}

// Hasher is a reusable streaming Keccak-512 hasher, used by the light
// cache builder to avoid reallocating a hash.Hash per row.
type Hasher struct {
	h interface {
		Write([]byte) (int, error)
		Reset()
		Sum([]byte) []byte
	}
}

// NewHasher512 constructs a reusable Keccak-512 streaming hasher.
func NewHasher512() *Hasher {
	return &Hasher{h: sha3.NewLegacyKeccak512()}
}

// Sum512 hashes in and writes the 64-byte digest into out, resetting
// the underlying state for reuse.
func (h *Hasher) Sum512(in []byte, out []byte) {
	h.h.Reset()
	h.h.Write(in)
	h.h.Sum(out[:0])
}
