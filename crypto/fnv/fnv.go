// Package fnv implements the FNV-1/FNV-1a mixing functions used across
// the DAG cache builder and the ProgPoW mixing loop. These are not the
// stdlib hash/fnv streaming hashes; they are the fixed-width integer
// combinators the reference algorithm calls directly.
package fnv

import "encoding/binary"

// Prime is the 32-bit FNV prime.
const Prime uint32 = 0x01000193

// OffsetBasis is the FNV-1a offset basis used to seed KISS99 streams.
const OffsetBasis uint32 = 0x811c9dc5

// Hash1 computes ((a * Prime) XOR b) mod 2^32.
func Hash1(a, b uint32) uint32 {
	return (a * Prime) ^ b
}

// Hash1a computes ((a XOR b) * Prime) mod 2^32.
func Hash1a(a, b uint32) uint32 {
	return (a ^ b) * Prime
}

// Block64 applies Hash1 elementwise over two 64-byte, little-endian
// u32-lane buffers.
func Block64(a, b [64]byte) [64]byte {
	var r [64]byte
	for i := 0; i < 16; i++ {
		j := i * 4
		v := Hash1(binary.LittleEndian.Uint32(a[j:]), binary.LittleEndian.Uint32(b[j:]))
		binary.LittleEndian.PutUint32(r[j:], v)
	}
	return r
}

// Block128 applies Hash1 elementwise over two 128-byte lane buffers.
func Block128(a, b [128]byte) [128]byte {
	var r [128]byte
	for i := 0; i < 32; i++ {
		j := i * 4
		v := Hash1(binary.LittleEndian.Uint32(a[j:]), binary.LittleEndian.Uint32(b[j:]))
		binary.LittleEndian.PutUint32(r[j:], v)
	}
	return r
}
