package keccak

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestSum256Empty(t *testing.T) {
	got := Sum256(nil)
	want, _ := hex.DecodeString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Sum256(nil) = %x, want %x", got, want)
	}
}

func TestSum512Empty(t *testing.T) {
	got := Sum512(nil)
	want, _ := hex.DecodeString("0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Sum512(nil) = %x, want %x", got, want)
	}
}

func TestHasherReuseMatchesSum512(t *testing.T) {
	in := []byte("progpow dataset row")
	want := Sum512(in)

	h := NewHasher512()
	var a, b [64]byte
	h.Sum512(in, a[:])
	h.Sum512(in, b[:])

	if a != want {
		t.Fatalf("first Sum512 = %x, want %x", a, want)
	}
	if b != want {
		t.Fatalf("reused Sum512 = %x, want %x", b, want)
	}
}
