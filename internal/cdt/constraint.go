package cdt

// maxFlipAttempts bounds the edge-flip recovery loop in InsertConstraint.
// A well-formed triangulation recovers any segment between two of its own
// vertices in a finite number of flips; this is a backstop against
// degenerate or duplicated input, not an expected path.
const maxFlipAttempts = 10000

// InsertConstraint recovers the edge (v1,v2) in the triangulation, flipping
// whatever edges it crosses until it appears directly, then marks it
// constrained (spec §4.3 insert_constraint, a no-op when v1 = v2).
// Grounded on Triangulator.cpp's insertConstraint, which delegates the
// actual recovery to CGAL; this package implements the classical
// diagonal-flip recovery algorithm directly.
func (t *Triangulation) InsertConstraint(v1, v2 VertexHandle) {
	if v1 == v2 {
		return
	}

	if t.markConstrainedIfPresent(v1, v2) {
		return
	}

	for attempt := 0; attempt < maxFlipAttempts; attempt++ {
		f, i, ok := t.findCrossingEdge(v1, v2)
		if !ok {
			break
		}
		t.flipEdge(f, i)
		if t.markConstrainedIfPresent(v1, v2) {
			return
		}
	}

	// Fall through: mark it anyway if it now exists, else leave the
	// triangulation as the closest approximation reachable.
	t.markConstrainedIfPresent(v1, v2)
}

// markConstrainedIfPresent sets the constrained flag on the edge between
// v1 and v2 if such an edge currently exists, on every face it borders.
func (t *Triangulation) markConstrainedIfPresent(v1, v2 VertexHandle) bool {
	found := false
	for fi := range t.faces {
		f := &t.faces[fi]
		if !f.alive {
			continue
		}
		for i := 0; i < 3; i++ {
			a, b := f.vertices[next(i)], f.vertices[prev(i)]
			if (a == v1 && b == v2) || (a == v2 && b == v1) {
				f.constrained[i] = true
				found = true
			}
		}
	}
	return found
}

// findCrossingEdge locates an internal edge that properly crosses segment
// (v1,v2): an edge with both its own endpoints distinct from v1 and v2, and
// whose segment properly intersects (v1,v2).
func (t *Triangulation) findCrossingEdge(v1, v2 VertexHandle) (FaceHandle, int, bool) {
	pv1, pv2 := t.points[v1], t.points[v2]
	for fi := range t.faces {
		f := &t.faces[fi]
		if !f.alive {
			continue
		}
		for i := 0; i < 3; i++ {
			if f.neighbors[i] == NoFace {
				continue // boundary edge, nothing to flip across
			}
			a, b := f.vertices[next(i)], f.vertices[prev(i)]
			if a == v1 || a == v2 || b == v1 || b == v2 {
				continue
			}
			pa, pb := t.points[a], t.points[b]
			if segmentsProperlyCross(pv1, pv2, pa, pb) {
				return FaceHandle(fi), i, true
			}
		}
	}
	return 0, 0, false
}

func segmentsProperlyCross(p1, p2, p3, p4 Point) bool {
	d1 := orient2(p1, p2, p3)
	d2 := orient2(p1, p2, p4)
	d3 := orient2(p3, p4, p1)
	d4 := orient2(p3, p4, p2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// flipEdge replaces the shared edge of face f (at local index i, opposite
// apex A) and its neighbor n with the other diagonal of their quadrilateral.
// No-op if the quad is not convex or i is a hull edge.
func (t *Triangulation) flipEdge(f FaceHandle, i int) {
	n := t.faces[f].neighbors[i]
	if n == NoFace {
		return
	}
	i2 := -1
	for j, nb := range t.faces[n].neighbors {
		if nb == f {
			i2 = j
			break
		}
	}
	if i2 < 0 {
		return
	}

	ff := &t.faces[f]
	nf := &t.faces[n]

	A := ff.vertices[i]
	p := ff.vertices[next(i)]
	q := ff.vertices[prev(i)]
	B := nf.vertices[i2]

	pa, pp, pB, pq := t.points[A], t.points[p], t.points[B], t.points[q]
	if orient2(pa, pp, pB) <= 0 || orient2(pa, pB, pq) <= 0 {
		return // quad not convex; this edge cannot be flipped
	}

	fAp := ff.neighbors[prev(i)]
	fQA := ff.neighbors[next(i)]
	nPB := nf.neighbors[next(i2)]
	nBq := nf.neighbors[prev(i2)]

	cAp := ff.constrained[prev(i)]
	cQA := ff.constrained[next(i)]
	cPB := nf.constrained[next(i2)]
	cBq := nf.constrained[prev(i2)]

	// Reuse the two face slots in place: f becomes (A,p,B), n becomes (A,B,q).
	ff.vertices = [3]VertexHandle{A, p, B}
	ff.neighbors = [3]FaceHandle{nPB, n, fAp}
	ff.constrained = [3]bool{cPB, false, cAp}

	nf.vertices = [3]VertexHandle{A, B, q}
	nf.neighbors = [3]FaceHandle{nBq, fQA, f}
	nf.constrained = [3]bool{cBq, cQA, false}

	// fAp and nBq still border f and n respectively after the flip; only
	// the edges that changed which of f/n they border need their
	// neighbor's back-reference corrected.
	t.fixBack(nPB, n, f)
	t.fixBack(fQA, f, n)
}
