package fract

import "math"
import "testing"

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		in   float64
		up   Unit
		down Unit
	}{
		{0, 0, 0}, {1, 64, 64}, {-1, -64, -64}, {1.5, 96, 96},
		{1.0/64.0, 1, 1}, {-1.0/64.0, -1, -1},
		{HalfDelta, 1, 0}, {-HalfDelta, 0, -1},
		{1 + HalfDelta, 65, 64}, {-1 - HalfDelta, -64, -65},
		{0.3, 19, 19}, {-0.3, -19, -19},
		{8.3359375, 534, 533}, {-8.3359375, -533, -534},
	}

	for i, test := range tests {
		up := FromFloat64Up(test.in)
		if up != test.up {
			t.Fatalf("test #%d: FromFloat64Up(%f) expected %d, got %d", i, test.in, test.up, up)
		}
		down := FromFloat64Down(test.in)
		if down != test.down {
			t.Fatalf("test #%d: FromFloat64Down(%f) expected %d, got %d", i, test.in, test.down, down)
		}
	}
}

func TestFromFloat64Clamping(t *testing.T) {
	tests := []struct {
		in  float64
		out Unit
	}{
		{math.NaN(), 0}, {math.Inf(1), MaxUnit}, {math.Inf(-1), MinUnit},
		{MaxFloat64 + 10, MaxUnit}, {MinFloat64 - 10, MinUnit},
		{HalfDelta, 1}, {-HalfDelta, -1}, {2.5, 160},
	}

	for i, test := range tests {
		out := FromFloat64(test.in)
		if out != test.out {
			t.Fatalf("test #%d: FromFloat64(%f) expected %d, got %d", i, test.in, test.out, out)
		}
	}

	if FromFloat32(12.5) != 800 {
		t.Fatalf("expected FromFloat32(12.5) == 800, got %d", FromFloat32(12.5))
	}
}
