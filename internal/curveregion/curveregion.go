// Package curveregion implements the Curve-Region Triangulator (spec §4.4):
// given one classified cubic patch, it runs a local Delaunay triangulation
// over its four control points and extracts the "inside border" — the short
// chain of vertices on the curve's concave side that the outer planarizer
// splices into the global triangulation as constraints. Grounded on
// Triangulator.cpp's insertCubicCurve, which builds the same insideBorder
// vector indexed by control-point order.
package curveregion

import "github.com/gogpu/curvefill/internal/cdt"

// Point is a plain 2D point, kept independent of the root package's Point
// to avoid an import cycle (the root package imports this one).
type Point struct {
	X, Y float64
}

// Coeff is a (k,l,m) texture triple, independent of the root package's
// CoefficientTriple for the same reason.
type Coeff struct {
	K, L, M float64
}

func (c Coeff) implicit() float64 {
	return c.K*c.K*c.K - c.L*c.M
}

// Vertex is one corner of an emitted local face, or one link of the inside
// border chain.
type Vertex struct {
	Point Point
	Coeff Coeff
	// Order is this vertex's 0-based position in the inside-border chain
	// (0 at p0), or -1 if the vertex is not on the border (spec §4.4 step 3).
	Order int
}

// Triangle is one emitted local face.
type Triangle struct {
	A, B, C Vertex
}

// Result is the output of Triangulate: every finite local face, plus the
// inside-border chain in walk order starting just after p0 and always
// ending at p3 (spec §4.4 step 2, §4.5 "the inside-border terminal is p3").
type Result struct {
	Faces  []Triangle
	Border []Vertex
}

// Triangulate runs spec §4.4 over one patch's four control points and their
// per-vertex coefficient triples, indexed p0..p3.
func Triangulate(points [4]Point, coeffs [4]Coeff) Result {
	minX, minY, maxX, maxY := points[0].X, points[0].Y, points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	tri := cdt.New(minX, minY, maxX, maxY)
	var handles [4]cdt.VertexHandle
	for i, p := range points {
		handles[i] = tri.Insert(cdt.Point{X: p.X, Y: p.Y})
	}

	adjacency := buildAdjacency(tri, handles)
	border := walkInsideBorder(coeffs, adjacency)

	order := make(map[int]int, 4)
	for i, idx := range border {
		order[idx] = i + 1 // position 0 is reserved for p0 itself
	}

	vertexAt := func(idx int) Vertex {
		o, ok := order[idx]
		if !ok {
			o = -1
		}
		if idx == 0 {
			o = 0
		}
		return Vertex{Point: points[idx], Coeff: coeffs[idx], Order: o}
	}

	indexOf := make(map[cdt.VertexHandle]int, 4)
	for i, h := range handles {
		indexOf[h] = i
	}

	var faces []Triangle
	for _, f := range tri.FiniteFaces() {
		var v [3]Vertex
		for c := 0; c < 3; c++ {
			idx := indexOf[tri.VertexAt(f, c)]
			v[c] = vertexAt(idx)
		}
		faces = append(faces, Triangle{A: v[0], B: v[1], C: v[2]})
	}

	borderVertices := make([]Vertex, len(border))
	for i, idx := range border {
		borderVertices[i] = vertexAt(idx)
	}

	return Result{Faces: faces, Border: borderVertices}
}

// buildAdjacency derives, for each of the four control-point indices, the
// set of other indices it shares a local-triangulation edge with.
func buildAdjacency(tri *cdt.Triangulation, handles [4]cdt.VertexHandle) [4][]int {
	indexOf := make(map[cdt.VertexHandle]int, 4)
	for i, h := range handles {
		indexOf[h] = i
	}

	var adj [4]map[int]bool
	for i := range adj {
		adj[i] = map[int]bool{}
	}
	for _, f := range tri.FiniteFaces() {
		var idx [3]int
		for c := 0; c < 3; c++ {
			idx[c] = indexOf[tri.VertexAt(f, c)]
		}
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				if a != b {
					adj[idx[a]][idx[b]] = true
				}
			}
		}
	}

	var out [4][]int
	for i, set := range adj {
		for j := range set {
			out[i] = append(out[i], j)
		}
	}
	return out
}

// walkInsideBorder implements spec §4.4 step 2: starting at p0, repeatedly
// step to the neighbor on the curve's concave side, preferring p1 or p2
// when they qualify, otherwise defaulting to p3, until p3 is reached or
// three more vertices have been collected. A visited guard resolves Open
// Question (c): the walk never revisits an index.
func walkInsideBorder(coeffs [4]Coeff, adjacency [4][]int) []int {
	visited := [4]bool{true} // p0 starts visited
	current := 0
	var border []int

	for len(border) < 3 {
		candidates := adjacency[current]
		pick := -1

		for _, preferred := range [2]int{1, 2} {
			if visited[preferred] {
				continue
			}
			if !contains(candidates, preferred) {
				continue
			}
			if coeffs[preferred].implicit() <= 0 {
				pick = preferred
				break
			}
		}
		if pick < 0 && !visited[3] && contains(candidates, 3) {
			pick = 3
		}
		if pick < 0 {
			for _, c := range candidates {
				if !visited[c] {
					pick = c
					break
				}
			}
		}
		if pick < 0 {
			break
		}

		border = append(border, pick)
		visited[pick] = true
		current = pick
		if pick == 3 {
			break
		}
	}

	if len(border) == 0 || border[len(border)-1] != 3 {
		border = append(border, 3)
	}
	return border
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
