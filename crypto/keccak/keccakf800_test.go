package keccak

import "testing"

func TestF800Vector(t *testing.T) {
	state := [25]uint32{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 114, 65, 86, 69, 78, 67, 79, 73, 78, 75, 65, 87, 80, 79, 87,
	}
	want := [25]uint32{
		2727376398, 508243021, 2925876228, 3038525842, 779074219, 4021386812, 1973177222,
		1971903119, 150269505, 1978096212, 1043480230, 3070330841, 3343571286, 1787623575,
		85460266, 1901422822, 1249285963, 3359093104, 124051896, 1550870029, 3416720673,
		3924888459, 4003059341, 4262307665, 3596507164,
	}
	F800(&state)
	if state != want {
		t.Fatalf("F800 mismatch:\ngot  %v\nwant %v", state, want)
	}
}
