package curvefill

import "math"

// CurveClassification is the projective type of a cubic Bezier curve under
// the Loop-Blinn classification (spec §3). It determines which closed-form
// (k,l,m) coefficient table Classify emits.
type CurveClassification int

const (
	// LineOrPoint covers degenerate cubics: all four control points
	// coincide, or (d1,d2,d3) is the zero vector.
	LineOrPoint CurveClassification = iota
	// Quadratic is a cubic that is really a raised quadratic (d1 = d2 = 0).
	Quadratic
	// Serpentine has a positive discriminant: two real inflections, no loop.
	Serpentine
	// Loop has a negative discriminant: the curve crosses itself once.
	Loop
	// Cusp sits on the discriminant boundary (δ ≈ 0).
	Cusp
)

// String implements fmt.Stringer.
func (c CurveClassification) String() string {
	switch c {
	case LineOrPoint:
		return "LineOrPoint"
	case Quadratic:
		return "Quadratic"
	case Serpentine:
		return "Serpentine"
	case Loop:
		return "Loop"
	case Cusp:
		return "Cusp"
	default:
		return "CurveClassification(?)"
	}
}

// CurvePatch is one classified cubic curve segment ready for local
// triangulation (spec §3, §4.2, §4.4). Flip is always false on a CurvePatch
// returned by Classify: step 7's flip resolution has already been
// discharged into Coeffs.
type CurvePatch struct {
	P0, P1, P2, P3 Point
	Class          CurveClassification
	Coeffs         [4]CoefficientTriple
	Flip           bool

	// ControlsRightOfChord reports, for p1 and p2 respectively, whether the
	// control point lies to the right of the directed chord p0->p3. A cheap
	// concavity hint supplementing the classifier's coefficients
	// (SPEC_FULL.md §3 item 2), not required by the core algorithm but
	// useful to callers doing their own curve-side bookkeeping.
	ControlsRightOfChord [2]bool
}

// det3 computes the determinant of the 3x3 matrix whose rows are the
// homogeneous coordinates (x,y,1) of p, q, r — equivalently the scalar
// triple product p . (q x r). Grounds the a1, a2, a3 terms of spec §4.2
// step 1.
func det3(p, q, r Point) float64 {
	return p.X*(q.Y-r.Y) - p.Y*(q.X-r.X) + (q.X*r.Y - q.Y*r.X)
}

// classifyOnce runs spec §4.2 steps 1-6 once, without Loop subdivision. It
// returns the classification, the (possibly still flip-pending) coefficient
// table, and the normalized (d1,d2,d3) triple the Loop subdivision step
// needs to locate its double-point parameters.
func classifyOnce(p0, p1, p2, p3 Point, epsilon float64) (class CurveClassification, coeffs [4]CoefficientTriple, flip bool, d1, d2, d3 float64) {
	if p0 == p1 && p0 == p2 && p0 == p3 {
		return LineOrPoint, lineOrPointCoeffs(), false, 0, 0, 0
	}

	a1 := det3(p0, p3, p2)
	a2 := det3(p1, p0, p3)
	a3 := det3(p2, p1, p0)

	d1, d2, d3 = a1-2*a2+3*a3, -a2+3*a3, 3*a3

	length := math.Sqrt(d1*d1 + d2*d2 + d3*d3)
	if length == 0 {
		return LineOrPoint, lineOrPointCoeffs(), false, 0, 0, 0
	}
	d1, d2, d3 = d1/length, d2/length, d3/length

	if math.Abs(d1) < epsilon {
		d1 = 0
	}
	if math.Abs(d2) < epsilon {
		d2 = 0
	}
	if math.Abs(d3) < epsilon {
		d3 = 0
	}

	switch {
	case d1 == 0 && d2 == 0 && d3 == 0:
		return LineOrPoint, lineOrPointCoeffs(), false, d1, d2, d3
	case d1 == 0 && d2 == 0:
		coeffs, flip = quadraticCoeffs(d3)
		return Quadratic, coeffs, flip, d1, d2, d3
	}

	discriminant := d1 * d1 * (3*d2*d2 - 4*d1*d3)
	switch {
	case discriminant > 0:
		coeffs, flip = serpentineCoeffs(d1, d2, d3)
		return Serpentine, coeffs, flip, d1, d2, d3
	case discriminant < 0:
		coeffs = loopCoeffs(d1, d2, d3)
		return Loop, coeffs, false, d1, d2, d3
	default:
		coeffs, flip = cuspCoeffs(d2, d3)
		return Cusp, coeffs, flip, d1, d2, d3
	}
}

func lineOrPointCoeffs() [4]CoefficientTriple {
	return [4]CoefficientTriple{}
}

// quadraticCoeffs implements spec §4.2 step 6's Quadratic table. flip
// follows spec's stated convention (d3 > 0), resolving Open Question (a)
// against the original prototype's opposite-signed variant.
func quadraticCoeffs(d3 float64) ([4]CoefficientTriple, bool) {
	return [4]CoefficientTriple{
		{K: 0, L: 0, M: 0},
		{K: 1.0 / 3, L: 0, M: 1.0 / 3},
		{K: 2.0 / 3, L: 1.0 / 3, M: 2.0 / 3},
		{K: 1, L: 1, M: 1},
	}, d3 > 0
}

// serpentineCoeffs implements spec §4.2 step 6's Serpentine table.
func serpentineCoeffs(d1, d2, d3 float64) ([4]CoefficientTriple, bool) {
	radicand := 9*d2*d2 - 12*d1*d3
	if radicand < 0 {
		radicand = 0
	}
	root := math.Sqrt(radicand)
	ls := 3*d2 - root
	lt := 6 * d1
	ms := 3*d2 + root
	mt := 6 * d1

	return [4]CoefficientTriple{
		{K: ls * ms, L: ls * ls * ls, M: ms * ms * ms},
		{
			K: (3*ls*ms - ls*mt - lt*ms) / 3,
			L: ls * ls * (ls - lt),
			M: ms * ms * (ms - mt),
		},
		{
			K: (lt*(mt-2*ms) + ls*(3*ms-2*mt)) / 3,
			L: (lt - ls) * (lt - ls) * ls,
			M: (mt - ms) * (mt - ms) * ms,
		},
		{
			K: (lt - ls) * (mt - ms),
			L: -(lt - ls) * (lt - ls) * (lt - ls),
			M: -(mt - ms) * (mt - ms) * (mt - ms),
		},
	}, d1 > 0
}

// loopCoeffs implements spec §4.2.1's Loop table. Its flip is resolved
// separately by loopFlip, once the caller knows whether subdivision fired.
func loopCoeffs(d1, d2, d3 float64) [4]CoefficientTriple {
	ls, lt, ms, mt := loopRoots(d1, d2, d3)

	return [4]CoefficientTriple{
		{K: ls * ms, L: ls * ls * ms, M: ls * ms * ms},
		{
			K: (-ls*mt - lt*ms + 3*ls*ms) / 3,
			L: ls * (ls*(mt-3*ms) + 2*lt*ms) / -3,
			M: ms * (ls*(2*mt-3*ms) + lt*ms) / -3,
		},
		{
			K: (lt*(mt-2*ms) + ls*(3*ms-2*mt)) / 3,
			L: (lt - ls) * (ls*(2*mt-3*ms) + lt*ms) / 3,
			M: (mt - ms) * (ls*(mt-3*ms) + 2*lt*ms) / 3,
		},
		{
			K: (lt - ls) * (mt - ms),
			L: -(lt - ls) * (lt - ls) * (mt - ms),
			M: -(lt - ls) * (mt - ms) * (mt - ms),
		},
	}
}

// cuspCoeffs implements spec §4.2 step 6's Cusp table. flip is hard-coded
// true (spec §4.2 step 6, and the borderline-discriminant note in §7).
func cuspCoeffs(d2, d3 float64) ([4]CoefficientTriple, bool) {
	ls := d3
	lt := 3 * d2
	return [4]CoefficientTriple{
		{K: ls, L: ls * ls * ls, M: 1},
		{K: ls - lt/3, L: ls * ls * (ls - lt), M: 1},
		{K: ls - 2*lt/3, L: (ls - lt) * (ls - lt) * ls, M: 1},
		{K: ls - lt, L: (ls - lt) * (ls - lt) * (ls - lt), M: 1},
	}, true
}

// loopRoots computes the (ls,lt,ms,mt) quadruple shared by loopCoeffs and
// the double-point parameters t0, t1 (spec §4.2.1). Negative radicands from
// rounding at the classification boundary are clamped to zero (spec §4.2.1
// Failure clause).
func loopRoots(d1, d2, d3 float64) (ls, lt, ms, mt float64) {
	radicand := 4*d1*d3 - 3*d2*d2
	if radicand < 0 {
		radicand = 0
	}
	root := math.Sqrt(radicand)
	return d2 - root, 2 * d1, d2 + root, 2 * d1
}

// Classify implements spec §4.2 and §4.2.1 in full: it classifies the cubic
// p0..p3, resolves its flip, and — for a Loop curve whose double-point
// parameter falls strictly inside (0,1) — subdivides at that parameter and
// recursively classifies each half, returning two patches instead of one.
func Classify(p0, p1, p2, p3 Point, classifyEpsilon, loopReclassifyEpsilon float64) []CurvePatch {
	class, coeffs, flip, d1, d2, d3 := classifyOnce(p0, p1, p2, p3, classifyEpsilon)

	if class == Loop {
		ls, lt, ms, mt := loopRoots(d1, d2, d3)
		var t0, t1 float64
		var t0Valid, t1Valid bool
		if mt != 0 {
			t0 = ms / mt
			t0Valid = t0 > 0 && t0 < 1
		}
		if lt != 0 {
			t1 = ls / lt
			t1Valid = t1 > 0 && t1 < 1
		}

		if t0Valid || t1Valid {
			tSplit := t0
			switch {
			case t0Valid && t1Valid:
				tSplit = (t0 + t1) / 2
			case t1Valid:
				tSplit = t1
			}

			whole := CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
			left := whole.Subsegment(0, tSplit)
			right := whole.Subsegment(tSplit, 1)

			patches := Classify(left.P0, left.P1, left.P2, left.P3, loopReclassifyEpsilon, loopReclassifyEpsilon)
			patches = append(patches, Classify(right.P0, right.P1, right.P2, right.P3, loopReclassifyEpsilon, loopReclassifyEpsilon)...)
			return patches
		}

		flip = loopFlip(coeffs[1].K, d1)
	}

	return []CurvePatch{newPatch(p0, p1, p2, p3, class, coeffs, flip)}
}

func newPatch(p0, p1, p2, p3 Point, class CurveClassification, coeffs [4]CoefficientTriple, flip bool) CurvePatch {
	patch := CurvePatch{
		P0: p0, P1: p1, P2: p2, P3: p3,
		Class:  class,
		Coeffs: coeffs,
		Flip:   flip,
		ControlsRightOfChord: [2]bool{
			rightOfChord(p0, p3, p1),
			rightOfChord(p0, p3, p2),
		},
	}
	return dischargeFlip(patch)
}
