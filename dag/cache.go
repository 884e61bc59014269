package dag

import (
	"encoding/binary"

	"github.com/kawpow-go/powkit/crypto/fnv"
	"github.com/kawpow-go/powkit/crypto/keccak"
)

// GenerateCache fills cache (length n*HashBytes + 1) with the Ethash
// light-cache construction seeded from seed, running cacheRounds
// randomizing passes, and sets the trailing finished-flag byte.
func GenerateCache(cache []byte, seed [32]byte, cacheRounds int) {
	cacheLen := len(cache) - 1
	if cacheLen%HashBytes != 0 {
		panic("dag: cache length minus flag byte must be a multiple of HashBytes")
	}
	n := cacheLen / HashBytes

	h := keccak.NewHasher512()
	h.Sum512(seed[:], cache[0:HashBytes])

	for i := 1; i < n; i++ {
		h.Sum512(cache[(i-1)*HashBytes:i*HashBytes], cache[i*HashBytes:(i+1)*HashBytes])
	}

	var r [HashBytes]byte
	for round := 0; round < cacheRounds; round++ {
		for i := 0; i < n; i++ {
			v := int(binary.LittleEndian.Uint32(cache[i*HashBytes:])) % n

			prev := ((i + n - 1) % n) * HashBytes
			vOff := v * HashBytes
			for j := 0; j < HashBytes; j++ {
				r[j] = cache[prev+j] ^ cache[vOff+j]
			}
			h.Sum512(r[:], cache[i*HashBytes:(i+1)*HashBytes])
		}
	}
	cache[cacheLen] = 1
}

// GenerateDatasetItem derives the 64-byte dataset item at index i from
// the light cache, per the Ethash/ProgPoW dataset derivation.
func GenerateDatasetItem(cache []byte, i int, datasetParents int) [HashBytes]byte {
	n := len(cache) / HashBytes
	r := HashBytes / WordBytes

	var mix [HashBytes]byte
	row := (i % n) * HashBytes
	copy(mix[:], cache[row:row+HashBytes])

	first := binary.LittleEndian.Uint32(mix[:]) ^ uint32(i)
	binary.LittleEndian.PutUint32(mix[:], first)

	h := keccak.NewHasher512()
	h.Sum512(mix[:], mix[:])

	var item [HashBytes]byte
	for j := 0; j < datasetParents; j++ {
		cacheIndex := int(fnv.Hash1(uint32(i^j), binary.LittleEndian.Uint32(mix[(j%r)*4:]))) % n
		copy(item[:], cache[cacheIndex*HashBytes:cacheIndex*HashBytes+HashBytes])
		var src, dst [HashBytes]byte
		copy(src[:], mix[:])
		copy(dst[:], item[:])
		mix = fnv.Block64(src, dst)
	}

	h.Sum512(mix[:], mix[:])
	return mix
}

// GenerateDatasetItemUnit returns size consecutive dataset items
// starting at index*size, flattened as little-endian u32 words.
func GenerateDatasetItemUnit(cache []byte, index, size, datasetParents int) []uint32 {
	hashWords := HashBytes / WordBytes
	data := make([]uint32, hashWords*size)
	for n := 0; n < size; n++ {
		item := GenerateDatasetItem(cache, index*size+n, datasetParents)
		for i := 0; i < hashWords; i++ {
			data[n*hashWords+i] = binary.LittleEndian.Uint32(item[i*4:])
		}
	}
	return data
}

// GenerateL1Cache fills l1 (length l1_cache_size + 1) with the first
// l1_cache_size/HashBytes dataset items, and sets the finished flag.
func GenerateL1Cache(l1 []byte, cache []byte, datasetParents int) {
	size := len(l1) - 1
	rows := size / HashBytes
	for i := 0; i < rows; i++ {
		item := GenerateDatasetItem(cache, i, datasetParents)
		copy(l1[i*HashBytes:(i+1)*HashBytes], item[:])
	}
	l1[size] = 1
}
