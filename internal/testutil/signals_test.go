package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(float64(s[0])) > 1e-7 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	RequireSliceEqual(t, a, b)

	c := DeterministicNoise(43, 1.0, 64)
	if d, _ := MaxAbsDiff(a, c); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	s := Impulse(8, 3)
	for i, v := range s {
		want := float32(0)
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("s[%d] = %v want %v", i, v, want)
		}
	}
	if Peak(Impulse(4, 9)) != 0 {
		t.Fatal("out-of-range impulse position should produce silence")
	}
}

func TestBlocks(t *testing.T) {
	sig := Stereo(Impulse(10, 0), Impulse(10, 9))
	blocks := Blocks(sig, 4)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks want 3", len(blocks))
	}
	if len(blocks[2][0]) != 2 {
		t.Fatalf("last block has %d frames want 2", len(blocks[2][0]))
	}
	blocks[0][0][1] = 5
	if sig[0][1] != 5 {
		t.Fatal("blocks do not alias the signal")
	}
	if blocks[2][1][1] != 1 {
		t.Fatal("right channel impulse missing from last block")
	}
}
