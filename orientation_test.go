package curvefill

import "testing"

func TestDischargeFlip(t *testing.T) {
	patch := CurvePatch{
		Flip: true,
		Coeffs: [4]CoefficientTriple{
			{K: 1, L: 2, M: 3},
			{K: -1, L: 0, M: 5},
			{K: 0.5, L: -0.5, M: 1},
			{K: 2, L: 2, M: 2},
		},
	}
	out := dischargeFlip(patch)
	if out.Flip {
		t.Error("Flip should be false after discharge")
	}
	for i, want := range [4]CoefficientTriple{
		{K: -1, L: -2, M: 3},
		{K: 1, L: 0, M: 5},
		{K: -0.5, L: 0.5, M: 1},
		{K: -2, L: -2, M: 2},
	} {
		if out.Coeffs[i] != want {
			t.Errorf("Coeffs[%d] = %v, want %v", i, out.Coeffs[i], want)
		}
	}
}

func TestDischargeFlip_NoOp(t *testing.T) {
	patch := CurvePatch{Flip: false, Coeffs: [4]CoefficientTriple{{K: 1, L: 1, M: 1}}}
	out := dischargeFlip(patch)
	if out.Coeffs[0] != (CoefficientTriple{K: 1, L: 1, M: 1}) {
		t.Error("coefficients should be unchanged when Flip is false")
	}
}

func TestLoopFlip(t *testing.T) {
	cases := []struct {
		c1K, d1 float64
		want    bool
	}{
		{1, 1, true},
		{-1, -1, true},
		{1, -1, false},
		{-1, 1, false},
		{0, 1, false},
		{1, 0, false},
	}
	for _, c := range cases {
		if got := loopFlip(c.c1K, c.d1); got != c.want {
			t.Errorf("loopFlip(%v, %v) = %v, want %v", c.c1K, c.d1, got, c.want)
		}
	}
}

func TestRightOfChord(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	if !rightOfChord(a, b, Pt(5, -5)) {
		t.Error("point below the chord a->b should be to its right")
	}
	if rightOfChord(a, b, Pt(5, 5)) {
		t.Error("point above the chord a->b should not be to its right")
	}
}
