// Package curvefill converts a 2D vector outline — straight segments and
// cubic Bezier curves composing one or more closed subpaths — into a stream
// of GPU-renderable triangles that reproduce the outline's filled interior
// with exact, resolution-independent curve silhouettes.
//
// # Overview
//
// The pipeline has two halves. The cubic classifier (Classify) takes four
// control points and determines the curve's projective type — serpentine,
// loop, cusp, quadratic-degenerate, or line-or-point — after Loop and Blinn,
// "Resolution Independent Curve Rendering Using Programmable Graphics
// Hardware". It emits a per-vertex (k,l,m) texture triple whose implicit
// cubic equation k³ − l·m = 0 lets a fragment shader distinguish a curve's
// interior from its exterior without any polygonal approximation of the
// curve itself. The constrained-Delaunay triangulator (internal/cdt)
// flattens the straight parts of the outline into a polygonal interior,
// marks faces inside/outside by parity, and stitches the classifier's curve
// patches into a single consistent triangle stream.
//
// # Quick Start
//
//	import "github.com/gogpu/curvefill"
//
//	path := curvefill.NewPath()
//	path.MoveTo(0, 0)
//	path.LineTo(10, 0)
//	path.CubicTo(10, 10, 0, 10, 0, 0)
//	path.Close()
//
//	var sink curvefill.SliceSink
//	if err := curvefill.Triangulate(path.All(), &sink); err != nil {
//	    // handle a reported error (non-finite input, unclosed subpath, ...)
//	}
//	// sink.Triangles now holds the interior faces followed by the curve faces.
//
// # Collaborators
//
// This package does not read glyph or font data, does not drive a GPU
// pipeline, and does not implement platform graphics primitives, stroke
// expansion, hinting, or anti-aliasing heuristics — those are named
// contracts a caller supplies: an ElementSource producing the outline, and
// a TriangleReceiver consuming the emitted triangles.
//
// # Concurrency
//
// A single Triangulate call is synchronous and single-threaded: it owns one
// constrained Delaunay triangulation plus transient per-curve local
// triangulations, and has no suspension points. The sink is invoked
// sequentially on the caller's goroutine before Triangulate returns.
package curvefill
