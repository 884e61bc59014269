package progpow

import "math/bits"

func rotl32(a, b uint32) uint32 {
	return bits.RotateLeft32(a, int(b&31))
}

func rotr32(a, b uint32) uint32 {
	return bits.RotateLeft32(a, -int(b&31))
}

func mulHi32(a, b uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) >> 32)
}

// RandomMath implements the ProgPoW register-math op table, selected
// by sel mod 11.
func RandomMath(a, b, sel uint32) uint32 {
	switch sel % 11 {
	case 0:
		return a + b
	case 1:
		return a * b
	case 2:
		return mulHi32(a, b)
	case 3:
		if a < b {
			return a
		}
		return b
	case 4:
		return rotl32(a, b)
	case 5:
		return rotr32(a, b)
	case 6:
		return a & b
	case 7:
		return a | b
	case 8:
		return a ^ b
	case 9:
		return uint32(bits.LeadingZeros32(a)) + uint32(bits.LeadingZeros32(b))
	case 10:
		return uint32(bits.OnesCount32(a)) + uint32(bits.OnesCount32(b))
	default:
		return 0
	}
}

// RandomMerge implements the ProgPoW register-merge op table, selected
// by sel mod 4.
func RandomMerge(a, b, sel uint32) uint32 {
	x := ((sel >> 16) % 31) + 1
	switch sel % 4 {
	case 0:
		return a*33 + b
	case 1:
		return (a ^ b) * 33
	case 2:
		return rotl32(a, x) ^ b
	case 3:
		return rotr32(a, x) ^ b
	default:
		return 0
	}
}
