package curvefill

// This file isolates the orientation/flip bookkeeping that keeps the sign of
// a curve patch's k³ − l·m implicit equation consistent with the polygon's
// winding (spec §4.7). It is deliberately small: three rules, each used
// exactly once per classified cubic.

// dischargeFlip applies the pending flip (if any) to all four coefficient
// triples of a patch and clears the flag, per spec §4.2 step 7. After this
// call patch.Flip is always false — the invariant spec §3 requires of every
// CurvePatch that leaves the classifier.
func dischargeFlip(patch CurvePatch) CurvePatch {
	if !patch.Flip {
		return patch
	}
	patch.Coeffs[0] = patch.Coeffs[0].flipKL()
	patch.Coeffs[1] = patch.Coeffs[1].flipKL()
	patch.Coeffs[2] = patch.Coeffs[2].flipKL()
	patch.Coeffs[3] = patch.Coeffs[3].flipKL()
	patch.Flip = false
	return patch
}

// loopFlip implements the Loop case's data-driven flip rule (spec §4.2.1):
// flip when sign(c1.K) and sign(d1) agree. c1 is the second of the four
// coefficient triples the Loop table produces, matching the decision the
// original prototype's loop() left as a FIXME (see SPEC_FULL.md §3 item 3).
func loopFlip(c1K, d1 float64) bool {
	if c1K == 0 || d1 == 0 {
		return false
	}
	return (c1K > 0) == (d1 > 0)
}

// rightOfChord reports whether point p is to the right of the directed
// chord from a to b — a 2D cross-product sign test. Used to compute
// CurvePatch.ControlsRightOfChord, a cheap concavity hint supplementing the
// classifier's coefficients (SPEC_FULL.md §3 item 2), grounded on the
// original prototype's CGAL::orientation(...) == RIGHT_TURN test.
func rightOfChord(a, b, p Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	return cross < 0
}
