// Package kawpow implements the Ravencoin KawPoW framing around the
// ProgPoW 0.9.4 mixing loop: Keccak-f[800] seed initialization and
// digest finalization, plus the top-level Compute entry point.
package kawpow

import (
	"encoding/binary"

	"github.com/kawpow-go/powkit/crypto/keccak"
	"github.com/kawpow-go/powkit/progpow"
)

// ravencoinTag is the 15-word ASCII tag, each character zero-extended
// to a 32-bit word, packed into the upper lanes of the Keccak-f[800]
// state during initialize/finalize. The reference implementation's
// leading word is the lowercase 'r' (0x72), not 'R' — this is the
// exact word sequence the Keccak-f[800] conformance vector exercises.
var ravencoinTag = [15]uint32{
	0x72, 0x41, 0x56, 0x45, 0x4E, 0x43, 0x4F, 0x49, 0x4E, 0x4B, 0x41, 0x57, 0x50, 0x4F, 0x57,
}

// Initialize mixes the header hash and nonce into a 25-word
// Keccak-f[800] state and returns that state alongside its folded
// 64-bit seed head, the seed ProgPoW initializes its lane registers
// from.
func Initialize(hash [32]byte, nonce uint64) ([25]uint32, uint64) {
	var seed [25]uint32
	for i := 0; i < 8; i++ {
		seed[i] = binary.LittleEndian.Uint32(hash[i*4:])
	}
	seed[8] = uint32(nonce)
	seed[9] = uint32(nonce >> 32)
	copy(seed[10:25], ravencoinTag[:])

	keccak.F800(&seed)

	seedHead := uint64(seed[0]) | (uint64(seed[1]) << 32)
	return seed, seedHead
}

// Finalize folds the post-initialize seed state and the ProgPoW mix
// hash through a second Keccak-f[800] pass to produce the 32-byte
// digest compared against the mining target.
func Finalize(seed [25]uint32, mixHash [32]byte) [32]byte {
	var state [25]uint32
	for i := 0; i < 8; i++ {
		state[i] = seed[i]
		state[i+8] = binary.LittleEndian.Uint32(mixHash[i*4:])
	}
	copy(state[16:25], ravencoinTag[:9])

	keccak.F800(&state)

	var digest [32]byte
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(digest[i*4:], state[i])
	}
	return digest
}

// Hash runs the full KawPoW pipeline for one (hash, height, nonce)
// input against a caller-supplied dataset lookup and L1 cache, and
// returns (mix, digest).
func Hash(hash [32]byte, height, nonce uint64, datasetSize int, lookup progpow.Lookup, l1 []byte) (mix [32]byte, digest [32]byte) {
	cfg := progpow.KawPow()
	seed, seedHead := Initialize(hash, nonce)
	mixBytes := progpow.Hash(cfg, height, seedHead, datasetSize, lookup, l1)
	copy(mix[:], mixBytes)
	digest = Finalize(seed, mix)
	return mix, digest
}
