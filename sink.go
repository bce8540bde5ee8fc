package curvefill

// CoefficientTriple is the (k,l,m) texture coordinate carried at a cubic
// control point (spec §3). A fragment shader interpolates it barycentrically
// across a triangle and tests the sign of k³ − l·m: non-positive is inside
// the curve's filled region, positive is outside.
type CoefficientTriple struct {
	K, L, M float64
}

// Implicit evaluates the cubic's implicit equation k³ − l·m at this triple.
// A value ≤ 0 is interior to the curve's filled region.
func (c CoefficientTriple) Implicit() float64 {
	return c.K*c.K*c.K - c.L*c.M
}

// flipKL returns the triple with its K and L components negated. M is a
// denominator-like term and must never flip (spec §4.2 step 7).
func (c CoefficientTriple) flipKL() CoefficientTriple {
	return CoefficientTriple{K: -c.K, L: -c.L, M: c.M}
}

// Vertex is a single emitted triangle corner: a 2D position plus the
// coefficient triple a shader needs to resolve the curve's silhouette
// (spec §6). Flat-fill (polygonal interior) vertices carry the constant
// triple (0,1,1), whose implicit value is −1 and so is unconditionally
// inside.
type Vertex struct {
	Point Point
	Coeff CoefficientTriple
}

// Coeff32 narrows the coefficient triple to float32, for GPU consumption
// (spec §6: "implementations SHOULD offer both widths").
func (v Vertex) Coeff32() [3]float32 {
	return [3]float32{float32(v.Coeff.K), float32(v.Coeff.L), float32(v.Coeff.M)}
}

// insideFillCoeff is the constant coefficient triple used for every vertex
// of a flat polygonal interior face (spec §4.5 phase 3). Its implicit value
// is −1 < 0, so it is unconditionally inside regardless of barycentric
// interpolation.
var insideFillCoeff = CoefficientTriple{K: 0, L: 1, M: 1}

// TriangleReceiver is invoked once per emitted triangle, in the order:
// all polygonal interior faces, then all curve-patch faces (spec §4.6).
// Within a group the order is implementation-defined. Invocations happen
// sequentially on the caller's goroutine, before Triangulate returns
// (spec §5, §6).
type TriangleReceiver interface {
	Triangle(a, b, c Vertex)
}

// TriangleReceiverFunc adapts a plain function to TriangleReceiver, the way
// http.HandlerFunc adapts a function to http.Handler.
type TriangleReceiverFunc func(a, b, c Vertex)

// Triangle implements TriangleReceiver.
func (f TriangleReceiverFunc) Triangle(a, b, c Vertex) { f(a, b, c) }

// SliceSink is a TriangleReceiver that collects every emitted triangle into
// a slice, in emission order. Useful for tests and for callers that want to
// batch the whole stream before uploading it.
type SliceSink struct {
	Triangles [][3]Vertex
}

// Triangle implements TriangleReceiver.
func (s *SliceSink) Triangle(a, b, c Vertex) {
	s.Triangles = append(s.Triangles, [3]Vertex{a, b, c})
}

// Reset clears the collected triangles for reuse.
func (s *SliceSink) Reset() {
	s.Triangles = s.Triangles[:0]
}
