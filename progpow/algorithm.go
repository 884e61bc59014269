package progpow

import (
	"encoding/binary"

	"github.com/kawpow-go/powkit/crypto/fnv"
	"github.com/kawpow-go/powkit/kiss99"
)

// InitMix seeds the per-lane register files from the hash seed. Each
// lane draws its own KISS99 stream, diverging from the shared (z, w)
// pair via lane-indexed fnv1a folds.
func InitMix(seed uint64, numLanes, numRegs int) [][]uint32 {
	z := fnv.Hash1a(fnv.OffsetBasis, uint32(seed))
	w := fnv.Hash1a(z, uint32(seed>>32))

	mix := make([][]uint32, numLanes)
	for lane := 0; lane < numLanes; lane++ {
		jsr := fnv.Hash1a(w, uint32(lane))
		jcong := fnv.Hash1a(jsr, uint32(lane))
		rng := kiss99.New(z, w, jsr, jcong)

		regs := make([]uint32, numRegs)
		for reg := range regs {
			regs[reg] = rng.Kiss()
		}
		mix[lane] = regs
	}
	return mix
}

// Lookup resolves a dataset item index to its flattened u32 words,
// backed by whatever cache storage the caller uses. Kept as an
// abstract capability so the hot mixing loop never depends on how the
// DAG cache is stored.
type Lookup func(index int) []uint32

// Round runs one ProgPoW round: register-cache mixing, register-math
// mixing, and the final DAG access pattern, all driven by a
// MixRngState reseeded from the period seed for this round.
func Round(cfg Config, seed uint64, r int, mix [][]uint32, datasetSize int, lookup Lookup, l1 []byte) {
	state := NewMixRngState(seed, uint32(cfg.RegisterCount))
	numItems := uint32(datasetSize / (2 * 128))
	itemIndex := mix[r%cfg.LaneCount][0] % numItems
	item := lookup(int(itemIndex))
	numWordsPerLane := len(item) / cfg.LaneCount
	maxOperations := cfg.RoundCacheAccesses
	if cfg.RoundMathOperations > maxOperations {
		maxOperations = cfg.RoundMathOperations
	}

	for i := 0; i < maxOperations; i++ {
		if i < cfg.RoundCacheAccesses {
			src := state.NextSrc()
			dst := state.NextDst()
			sel := state.NextRng()
			for l := 0; l < cfg.LaneCount; l++ {
				offset := int(mix[l][src]) % (cfg.CacheBytes / 4)
				u32L1 := binary.LittleEndian.Uint32(l1[offset*4:])
				mix[l][dst] = RandomMerge(mix[l][dst], u32L1, sel)
			}
		}

		if i < cfg.RoundMathOperations {
			srcRand := state.NextRng() % (uint32(cfg.RegisterCount) * uint32(cfg.RegisterCount-1))
			src1 := srcRand % uint32(cfg.RegisterCount)
			src2 := srcRand / uint32(cfg.RegisterCount)
			if src2 >= src1 {
				src2++
			}

			sel1 := state.NextRng()
			dst := state.NextDst()
			sel2 := state.NextRng()
			for l := 0; l < cfg.LaneCount; l++ {
				data := RandomMath(mix[l][src1], mix[l][src2], sel1)
				mix[l][dst] = RandomMerge(mix[l][dst], data, sel2)
			}
		}
	}

	dsts := make([]uint32, numWordsPerLane)
	sels := make([]uint32, numWordsPerLane)
	for i := 0; i < numWordsPerLane; i++ {
		if i == 0 {
			dsts[i] = 0
		} else {
			dsts[i] = state.NextDst()
		}
		sels[i] = state.NextRng()
	}

	for l := 0; l < cfg.LaneCount; l++ {
		offset := (uint32(l) ^ uint32(r)) % uint32(cfg.LaneCount) * uint32(numWordsPerLane)
		for i := 0; i < numWordsPerLane; i++ {
			index := int(offset) + i
			word := item[index]
			dst := dsts[i]
			mix[l][dst] = RandomMerge(mix[l][dst], word, sels[i])
		}
	}
}

// Hash runs the full ProgPoW mixing loop and folds the resulting lane
// registers into the 32-byte mix hash.
func Hash(cfg Config, height uint64, seed uint64, datasetSize int, lookup Lookup, l1 []byte) []byte {
	mix := InitMix(seed, cfg.LaneCount, cfg.RegisterCount)
	number := height / uint64(cfg.PeriodLength)
	for i := 0; i < cfg.RoundCount; i++ {
		Round(cfg, number, i, mix, datasetSize, lookup, l1)
	}

	laneHash := make([]uint32, cfg.LaneCount)
	for l := range laneHash {
		h := fnv.OffsetBasis
		for i := 0; i < cfg.RegisterCount; i++ {
			h = fnv.Hash1a(h, mix[l][i])
		}
		laneHash[l] = h
	}

	const numWords = 8
	mixHash := make([]uint32, numWords)
	for i := range mixHash {
		mixHash[i] = fnv.OffsetBasis
	}
	for l := 0; l < cfg.LaneCount; l++ {
		mixHash[l%numWords] = fnv.Hash1a(mixHash[l%numWords], laneHash[l])
	}
	return U32ArrayToBytes(mixHash)
}
