package progpow

import "encoding/binary"

// U32ArrayToBytes flattens a little-endian u32 slice into bytes.
func U32ArrayToBytes(arr []uint32) []byte {
	buf := make([]byte, len(arr)*4)
	for i, v := range arr {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}

// BytesToU32Array unflattens a little-endian byte slice into u32 words.
func BytesToU32Array(buf []byte) []uint32 {
	arr := make([]uint32, len(buf)/4)
	for i := range arr {
		arr[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return arr
}
