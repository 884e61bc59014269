package progpow

import (
	"reflect"
	"testing"

	"github.com/kawpow-go/powkit/kiss99"
)

func TestNewMixRngStateVector(t *testing.T) {
	wantSrc := []uint32{
		0x1A, 0x1E, 0x01, 0x13, 0x0B, 0x15, 0x0F, 0x12, 0x03, 0x11, 0x1F, 0x10, 0x1C, 0x04,
		0x16, 0x17, 0x02, 0x0D, 0x1D, 0x18, 0x0A, 0x0C, 0x05, 0x14, 0x07, 0x08, 0x0E, 0x1B,
		0x06, 0x19, 0x09, 0x00,
	}
	wantDst := []uint32{
		0x00, 0x04, 0x1B, 0x1A, 0x0D, 0x0F, 0x11, 0x07, 0x0E, 0x08, 0x09, 0x0C, 0x03, 0x0A,
		0x01, 0x0B, 0x06, 0x10, 0x1C, 0x1F, 0x02, 0x13, 0x1E, 0x16, 0x1D, 0x05, 0x18, 0x12,
		0x19, 0x17, 0x15, 0x14,
	}
	wantKiss := kiss99.New(0x6535921C, 0x29345B16, 0xC0DD7F78, 0x1165D7EB)

	state := NewMixRngState(30000/50, 32)
	if !reflect.DeepEqual(state.srcSequence, wantSrc) {
		t.Fatalf("srcSequence = %v, want %v", state.srcSequence, wantSrc)
	}
	if !reflect.DeepEqual(state.dstSequence, wantDst) {
		t.Fatalf("dstSequence = %v, want %v", state.dstSequence, wantDst)
	}
	if got := state.RngState(); got != wantKiss {
		t.Fatalf("rng state = %+v, want %+v", got, wantKiss)
	}
}
