package progpow

import (
	"bytes"
	"testing"
)

func TestInitMixDeterministicPerLane(t *testing.T) {
	a := InitMix(0x1122334455667788, 16, 32)
	b := InitMix(0x1122334455667788, 16, 32)
	for l := range a {
		if !equalU32(a[l], b[l]) {
			t.Fatalf("lane %d: InitMix not deterministic", l)
		}
	}
	for l := 1; l < len(a); l++ {
		if equalU32(a[0], a[l]) {
			t.Fatalf("lane 0 and lane %d produced identical register files", l)
		}
	}
}

func equalU32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fixedLookup(numWords int) Lookup {
	return func(index int) []uint32 {
		item := make([]uint32, numWords)
		for i := range item {
			item[i] = uint32(index*31 + i)
		}
		return item
	}
}

func TestHashIsPureAndVariesWithSeed(t *testing.T) {
	cfg := KawPow()
	l1 := make([]byte, cfg.CacheBytes)
	for i := range l1 {
		l1[i] = byte(i)
	}
	lookup := fixedLookup(cfg.LaneCount * 16)
	datasetSize := 2 * 128 * 64

	out1 := Hash(cfg, 0, 7, datasetSize, lookup, l1)
	out2 := Hash(cfg, 0, 7, datasetSize, lookup, l1)
	if !bytes.Equal(out1, out2) {
		t.Fatalf("Hash is not deterministic for identical inputs")
	}

	out3 := Hash(cfg, 0, 8, datasetSize, lookup, l1)
	if bytes.Equal(out1, out3) {
		t.Fatalf("Hash produced identical output for different seeds")
	}
}
