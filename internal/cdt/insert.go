package cdt

// orient2 returns twice the signed area of triangle (a,b,c): positive when
// a,b,c wind counter-clockwise, negative when clockwise, zero when collinear.
func orient2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircumcircle reports whether d lies strictly inside the circumcircle of
// a,b,c, which must be wound counter-clockwise. Standard incremental-Delaunay
// predicate (determinant form).
func inCircumcircle(a, b, c, d Point) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > 0
}

type boundaryEdge struct {
	a, b       VertexHandle
	outerFace  FaceHandle
	outerIndex int // local index, within outerFace, of the edge back to the cavity (-1 if outerFace is NoFace)
}

// Insert adds p to the triangulation via Bowyer-Watson cavity retriangulation
// (spec §4.3 insert(point) -> VertexHandle), grounded on the incremental
// insertion loop the original prototype drives through CGAL.
func (t *Triangulation) Insert(p Point) VertexHandle {
	v := VertexHandle(len(t.points))
	t.points = append(t.points, p)

	bad := t.findBadFaces(p)
	edges := t.cavityBoundary(bad)

	for _, f := range bad {
		t.faces[f].alive = false
	}

	newFaces := make([]FaceHandle, len(edges))
	for i, e := range edges {
		pa, pb := t.points[e.a], t.points[e.b]
		va, vb := e.a, e.b
		if orient2(pa, pb, p) < 0 {
			va, vb = vb, va
			pa, pb = pb, pa
		}
		fh := t.newFace(va, vb, v)
		newFaces[i] = fh

		if e.outerFace != NoFace {
			t.setNeighbor(fh, localIndex(&t.faces[fh], v), e.outerFace)
			t.faces[e.outerFace].neighbors[e.outerIndex] = fh
			t.faces[fh].constrained[localIndex(&t.faces[fh], v)] = t.faces[e.outerFace].constrained[e.outerIndex]
		}
	}

	// Link the new fan of triangles to each other across the edges meeting
	// at p. Each new face is (a, b, p); its edge (b, p) borders the new face
	// whose first corner is b, which in turn sees this face across (p, b).
	byStart := make(map[VertexHandle]FaceHandle, len(newFaces))
	for _, fh := range newFaces {
		byStart[t.faces[fh].vertices[0]] = fh
	}
	for _, fh := range newFaces {
		other, ok := byStart[t.faces[fh].vertices[1]]
		if !ok {
			continue
		}
		t.faces[fh].neighbors[0] = other
		t.faces[other].neighbors[1] = fh
	}

	if len(newFaces) > 0 {
		t.anyInfinite = t.pickInfiniteFace(newFaces)
	}

	return v
}

// pickInfiniteFace keeps InfiniteFace() valid after faces are replaced: it
// returns any currently-alive face touching the super-triangle, preferring
// one of the freshly created faces, falling back to a full scan.
func (t *Triangulation) pickInfiniteFace(candidates []FaceHandle) FaceHandle {
	for _, fh := range candidates {
		if !t.IsFinite(fh) {
			return fh
		}
	}
	for i := range t.faces {
		fh := FaceHandle(i)
		if t.faces[i].alive && !t.IsFinite(fh) {
			return fh
		}
	}
	return t.anyInfinite
}

// newFace allocates a face with vertices in the given (already
// CCW-corrected) order and no neighbors set.
func (t *Triangulation) newFace(a, b, c VertexHandle) FaceHandle {
	t.faces = append(t.faces, face{
		vertices:  [3]VertexHandle{a, b, c},
		neighbors: [3]FaceHandle{NoFace, NoFace, NoFace},
		alive:     true,
	})
	return FaceHandle(len(t.faces) - 1)
}

// findBadFaces returns every alive face whose circumcircle strictly
// contains p. A brute-force scan: this package favors a simple, clearly
// correct implementation over a locate-by-walk optimization, since the
// outlines this pipeline triangulates are small per curve patch and per
// subpath.
func (t *Triangulation) findBadFaces(p Point) []FaceHandle {
	var bad []FaceHandle
	for i := range t.faces {
		f := &t.faces[i]
		if !f.alive {
			continue
		}
		a, b, c := t.points[f.vertices[0]], t.points[f.vertices[1]], t.points[f.vertices[2]]
		if orient2(a, b, c) < 0 {
			a, b = b, a
		}
		if inCircumcircle(a, b, c, p) {
			bad = append(bad, FaceHandle(i))
		}
	}
	return bad
}

// cavityBoundary returns the boundary edges of the union of bad faces, each
// tagged with the (non-bad) face and local index lying just outside the
// cavity, if any.
func (t *Triangulation) cavityBoundary(bad []FaceHandle) []boundaryEdge {
	isBad := make(map[FaceHandle]bool, len(bad))
	for _, f := range bad {
		isBad[f] = true
	}

	var edges []boundaryEdge
	for _, f := range bad {
		ff := &t.faces[f]
		for i := 0; i < 3; i++ {
			n := ff.neighbors[i]
			if n != NoFace && isBad[n] {
				continue
			}
			a, b := ff.vertices[next(i)], ff.vertices[prev(i)]
			outerIndex := -1
			if n != NoFace {
				for j, nb := range t.faces[n].neighbors {
					if nb == f {
						outerIndex = j
						break
					}
				}
			}
			edges = append(edges, boundaryEdge{a: a, b: b, outerFace: n, outerIndex: outerIndex})
		}
	}
	return edges
}
