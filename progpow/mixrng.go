package progpow

import (
	"github.com/kawpow-go/powkit/crypto/fnv"
	"github.com/kawpow-go/powkit/kiss99"
)

// MixRngState produces the deterministic src/dst register permutations
// and KISS99 stream a single ProgPoW round draws its instructions from.
type MixRngState struct {
	size        uint32
	srcCounter  uint32
	dstCounter  uint32
	srcSequence []uint32
	dstSequence []uint32
	rng         kiss99.State
}

// NewMixRngState seeds a MixRngState from the period seed and register
// count, running the Fisher-Yates shuffle that produces src_sequence
// and dst_sequence in lockstep with the caller's kiss99 draws.
func NewMixRngState(seed uint64, size uint32) *MixRngState {
	z := fnv.Hash1a(fnv.OffsetBasis, uint32(seed))
	w := fnv.Hash1a(z, uint32(seed>>32))
	jsr := fnv.Hash1a(w, uint32(seed))
	jcong := fnv.Hash1a(jsr, uint32(seed>>32))

	rng := kiss99.New(z, w, jsr, jcong)

	srcSeq := make([]uint32, size)
	dstSeq := make([]uint32, size)
	for i := range srcSeq {
		srcSeq[i] = uint32(i)
		dstSeq[i] = uint32(i)
	}

	for i := size; i >= 2; i-- {
		index := i - 1

		dstInd := rng.Kiss() % i
		dstSeq[index], dstSeq[dstInd] = dstSeq[dstInd], dstSeq[index]

		srcInd := rng.Kiss() % i
		srcSeq[index], srcSeq[srcInd] = srcSeq[srcInd], srcSeq[index]
	}

	return &MixRngState{
		size:        size,
		srcSequence: srcSeq,
		dstSequence: dstSeq,
		rng:         rng,
	}
}

// NextSrc returns the next source register index.
func (m *MixRngState) NextSrc() uint32 {
	v := m.srcSequence[m.srcCounter%m.size]
	m.srcCounter++
	return v
}

// NextDst returns the next destination register index.
func (m *MixRngState) NextDst() uint32 {
	v := m.dstSequence[m.dstCounter%m.size]
	m.dstCounter++
	return v
}

// NextRng draws the next raw KISS99 word.
func (m *MixRngState) NextRng() uint32 {
	return m.rng.Kiss()
}

// RngState exposes the underlying KISS99 state, used only by tests
// that assert against the reference's captured post-construction state.
func (m *MixRngState) RngState() kiss99.State {
	return m.rng
}
