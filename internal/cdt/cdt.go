// Package cdt implements the Planar Triangulator contract (spec §4.3): an
// incremental constrained Delaunay triangulation over 2D points, grounded on
// the CGAL-backed Triangulator used by the original prototype's
// Triangulator.cpp. It is built on the standard library only — no example
// repo in the retrieval pack implements 2D CDT, so there was nothing to
// wire a third-party dependency to (see DESIGN.md).
package cdt

import "math"

// Point is a plain 2D point. The package is deliberately decoupled from the
// root package's Point type to avoid an import cycle; callers convert at
// the boundary.
type Point struct {
	X, Y float64
}

// VertexHandle identifies an inserted point. The three lowest-numbered
// handles are reserved for the triangulation's super-triangle and are never
// surfaced to callers through FiniteFaces.
type VertexHandle int

// FaceHandle identifies a triangle. NoFace is the zero value's complement,
// never a valid handle.
type FaceHandle int

// NoFace is the sentinel FaceHandle meaning "no neighbor" (a hull edge).
const NoFace FaceHandle = -1

// Edge names a triangle's edge opposite its corner at local index Index
// (0, 1, or 2), the CGAL convention spec §4.3 asks for.
type Edge struct {
	Face  FaceHandle
	Index int
}

type face struct {
	vertices    [3]VertexHandle
	neighbors   [3]FaceHandle
	constrained [3]bool
	depth       *uint32
	alive       bool
}

// Triangulation is an incremental constrained Delaunay triangulation. The
// zero value is not usable; construct with New.
type Triangulation struct {
	points      []Point
	faces       []face
	superStart  VertexHandle
	anyInfinite FaceHandle
}

// New creates a triangulation whose super-triangle comfortably encloses the
// axis-aligned box [minX,minY]-[maxX,maxY] that the caller's points will
// fall within. Points outside that box may still be inserted correctly but
// at a higher risk of numerical ill-conditioning near the super-triangle.
func New(minX, minY, maxX, maxY float64) *Triangulation {
	dx := maxX - minX
	dy := maxY - minY
	span := math.Max(dx, dy)
	if span <= 0 {
		span = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2
	margin := span * 20

	t := &Triangulation{
		points: []Point{
			{X: midX - margin, Y: midY - margin},
			{X: midX + margin, Y: midY - margin},
			{X: midX, Y: midY + margin},
		},
		superStart: 0,
	}
	t.faces = append(t.faces, face{
		vertices:  [3]VertexHandle{0, 1, 2},
		neighbors: [3]FaceHandle{NoFace, NoFace, NoFace},
		alive:     true,
	})
	t.anyInfinite = 0
	return t
}

func (t *Triangulation) isSuper(v VertexHandle) bool {
	return v >= t.superStart && v < t.superStart+3
}

// IsFinite reports whether f has no corner on the super-triangle.
func (t *Triangulation) IsFinite(f FaceHandle) bool {
	ff := &t.faces[f]
	return !t.isSuper(ff.vertices[0]) && !t.isSuper(ff.vertices[1]) && !t.isSuper(ff.vertices[2])
}

// InfiniteFace returns a face incident to the super-triangle, the entry
// point spec §4.3 calls infinite_face().
func (t *Triangulation) InfiniteFace() FaceHandle {
	return t.anyInfinite
}

// FiniteFaces returns every currently-alive face with no super-triangle
// corner, in arbitrary order.
func (t *Triangulation) FiniteFaces() []FaceHandle {
	var out []FaceHandle
	for i := range t.faces {
		fh := FaceHandle(i)
		if t.faces[i].alive && t.IsFinite(fh) {
			out = append(out, fh)
		}
	}
	return out
}

// InfiniteFaces returns every currently-alive face that does have a
// super-triangle corner — the ring MarkDepths seeds its first BFS from.
func (t *Triangulation) InfiniteFaces() []FaceHandle {
	var out []FaceHandle
	for i := range t.faces {
		fh := FaceHandle(i)
		if t.faces[i].alive && !t.IsFinite(fh) {
			out = append(out, fh)
		}
	}
	return out
}

// VertexAt returns the vertex at local corner i (0..2) of face f.
func (t *Triangulation) VertexAt(f FaceHandle, i int) VertexHandle {
	return t.faces[f].vertices[i]
}

// NeighborAt returns the face across the edge opposite local corner i, or
// NoFace on a hull edge.
func (t *Triangulation) NeighborAt(f FaceHandle, i int) FaceHandle {
	return t.faces[f].neighbors[i]
}

// Point returns the coordinates of vertex v.
func (t *Triangulation) Point(v VertexHandle) Point {
	return t.points[v]
}

// IsConstrained reports whether e's edge was inserted (or recovered) as a
// constraint.
func (t *Triangulation) IsConstrained(e Edge) bool {
	return t.faces[e.Face].constrained[e.Index]
}

// Depth returns the face's flood-fill depth and whether it has been set.
func (t *Triangulation) Depth(f FaceHandle) (uint32, bool) {
	d := t.faces[f].depth
	if d == nil {
		return 0, false
	}
	return *d, true
}

// SetDepth assigns f's flood-fill depth.
func (t *Triangulation) SetDepth(f FaceHandle, depth uint32) {
	d := depth
	t.faces[f].depth = &d
}

func localIndex(f *face, v VertexHandle) int {
	for i, fv := range f.vertices {
		if fv == v {
			return i
		}
	}
	return -1
}

// edgeOpposite returns the local index of the edge opposite vertex v in
// face f (v must be a corner of f).
func edgeOpposite(f *face, v VertexHandle) int {
	return localIndex(f, v)
}

// next and prev walk the 0,1,2 corner cycle.
func next(i int) int { return (i + 1) % 3 }
func prev(i int) int { return (i + 2) % 3 }

// setNeighbor sets face f's neighbor at local index i to n. Callers are
// responsible for fixing up n's own neighbor slot separately; this only
// writes f's side.
func (t *Triangulation) setNeighbor(f FaceHandle, i int, n FaceHandle) {
	t.faces[f].neighbors[i] = n
}

// fixBack updates the neighbor slot of n (if valid) that used to point at
// oldFace so it points at newFace instead — used after a face is replaced
// during retriangulation or a flip.
func (t *Triangulation) fixBack(n FaceHandle, oldFace, newFace FaceHandle) {
	if n == NoFace {
		return
	}
	nf := &t.faces[n]
	for i, nb := range nf.neighbors {
		if nb == oldFace {
			nf.neighbors[i] = newFace
			return
		}
	}
}
