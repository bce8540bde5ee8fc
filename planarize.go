package curvefill

import (
	"fmt"
	"iter"
	"log/slog"
	"math"

	"github.com/gogpu/curvefill/internal/cdt"
	"github.com/gogpu/curvefill/internal/curveregion"
)

// Triangulate runs the full pipeline (spec §4.5): it walks elements once,
// inserting straight segments and curve inside-borders into a constrained
// Delaunay triangulation while buffering each curve's locally-triangulated
// faces, then marks the triangulation's faces inside/outside by depth
// parity, and finally emits every filled interior face followed by every
// buffered curve face to sink, in that order (spec §4.6).
//
// elements must be finite; Triangulate consumes it exactly once. Options
// configure epsilon thresholds, unclosed-subpath tolerance, coefficient
// width, and a call-scoped logger (see WithEpsilon, WithTolerateUnclosedSubpaths,
// WithCoefficientWidth, WithLogger).
func Triangulate(elements iter.Seq[PathElement], sink TriangleReceiver, opts ...TriangulateOption) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.resolvedLogger()

	p := &planarizer{opts: o, logger: logger}

	if err := p.insertAll(elements); err != nil {
		logger.Debug("triangulate: insertion failed", "error", err)
		return err
	}

	if p.tri == nil {
		return nil
	}

	p.tri.MarkDepths()
	p.emit(sink)

	logger.Debug("triangulate: done",
		"interiorFaces", p.interiorFaceCount,
		"curveFaces", len(p.curveFaces))
	return nil
}

type planarizer struct {
	opts   triangulateOptions
	logger *slog.Logger

	tri        *cdt.Triangulation
	minX, minY float64
	maxX, maxY float64
	haveBounds bool

	currentVertex cdt.VertexHandle
	haveCurrent   bool
	subpathBegin  cdt.VertexHandle
	haveSubpath   bool

	curveFaces        []curveregion.Triangle
	interiorFaceCount int
}

func (p *planarizer) insertAll(elements iter.Seq[PathElement]) error {
	var buffered []PathElement
	for el := range elements {
		buffered = append(buffered, el)
		for _, pt := range pointsOf(el) {
			if !isFinite(pt.X) || !isFinite(pt.Y) {
				return fmt.Errorf("curvefill: %w: (%v, %v)", ErrNonFinitePoint, pt.X, pt.Y)
			}
			p.growBounds(pt)
		}
	}
	if len(buffered) == 0 {
		return nil
	}

	margin := math.Max(p.maxX-p.minX, p.maxY-p.minY)
	if margin <= 0 {
		margin = 1
	}
	p.tri = cdt.New(p.minX-margin, p.minY-margin, p.maxX+margin, p.maxY+margin)

	for _, el := range buffered {
		switch e := el.(type) {
		case MoveTo:
			if err := p.closeDanglingSubpath(); err != nil {
				return err
			}
			vh := p.tri.Insert(toCDT(e.Point))
			p.currentVertex, p.haveCurrent = vh, true
			p.subpathBegin, p.haveSubpath = vh, true

		case LineTo:
			if !p.haveCurrent {
				return fmt.Errorf("curvefill: LineTo before MoveTo")
			}
			vh := p.tri.Insert(toCDT(e.Point))
			p.tri.InsertConstraint(p.currentVertex, vh)
			p.currentVertex = vh

		case QuadTo:
			if !p.haveCurrent {
				return fmt.Errorf("curvefill: QuadTo before MoveTo")
			}
			p0 := toPoint(p.tri.Point(p.currentVertex))
			raised := QuadBez{P0: p0, P1: e.Control, P2: e.Point}.Raise()
			p.insertCubic(raised.P1, raised.P2, raised.P3)

		case CubicTo:
			if !p.haveCurrent {
				return fmt.Errorf("curvefill: CubicTo before MoveTo")
			}
			p.insertCubic(e.Control1, e.Control2, e.Point)

		case Close:
			if !p.haveCurrent || !p.haveSubpath {
				return fmt.Errorf("curvefill: Close before MoveTo")
			}
			p.tri.InsertConstraint(p.currentVertex, p.subpathBegin)
			p.currentVertex = p.subpathBegin
		}
	}

	return p.closeDanglingSubpath()
}

// closeDanglingSubpath handles an open subpath at a subpath boundary (a new
// MoveTo, or end-of-stream): spec §7 lets the implementation tolerate an
// unclosed subpath by treating it as an implicit Close, controlled by
// WithTolerateUnclosedSubpaths (default true).
func (p *planarizer) closeDanglingSubpath() error {
	if !p.haveCurrent || !p.haveSubpath || p.currentVertex == p.subpathBegin {
		return nil
	}
	if !p.opts.tolerateUnclosed {
		return ErrUnclosedSubpath
	}
	p.tri.InsertConstraint(p.currentVertex, p.subpathBegin)
	p.currentVertex = p.subpathBegin
	return nil
}

// insertCubic implements the CubicTo branch of spec §4.5 phase 1: classify
// (possibly into two patches via Loop subdivision), triangulate each patch
// locally, buffer its curve faces, and chain the inside-border vertices
// into the global triangulation as constraints from currentVertex to the
// patch's terminal border vertex (always p3).
func (p *planarizer) insertCubic(c1, c2, end Point) {
	start := toPoint(p.tri.Point(p.currentVertex))
	patches := Classify(start, c1, c2, end, p.opts.classifyEpsilon, p.opts.loopReclassifyEpsilon)

	for _, patch := range patches {
		if patch.Class == LineOrPoint {
			vh := p.tri.Insert(toCDT(patch.P3))
			p.tri.InsertConstraint(p.currentVertex, vh)
			p.currentVertex = vh
			continue
		}

		result := curveregion.Triangulate(
			[4]curveregion.Point{
				toRegionPoint(patch.P0), toRegionPoint(patch.P1),
				toRegionPoint(patch.P2), toRegionPoint(patch.P3),
			},
			[4]curveregion.Coeff{
				toRegionCoeff(patch.Coeffs[0]), toRegionCoeff(patch.Coeffs[1]),
				toRegionCoeff(patch.Coeffs[2]), toRegionCoeff(patch.Coeffs[3]),
			},
		)
		p.curveFaces = append(p.curveFaces, result.Faces...)

		prev := p.currentVertex
		for _, v := range result.Border {
			vh := p.tri.Insert(cdt.Point{X: v.Point.X, Y: v.Point.Y})
			p.tri.InsertConstraint(prev, vh)
			prev = vh
		}
		p.currentVertex = prev
	}
}

func (p *planarizer) growBounds(pt Point) {
	if !p.haveBounds {
		p.minX, p.maxX, p.minY, p.maxY = pt.X, pt.X, pt.Y, pt.Y
		p.haveBounds = true
		return
	}
	p.minX = math.Min(p.minX, pt.X)
	p.maxX = math.Max(p.maxX, pt.X)
	p.minY = math.Min(p.minY, pt.Y)
	p.maxY = math.Max(p.maxY, pt.Y)
}

// emit implements spec §4.5 phase 3 and §4.6: interior faces first (each
// vertex tagged with the constant inside-fill coefficient), then every
// buffered curve face with its Loop-Blinn coefficients.
func (p *planarizer) emit(sink TriangleReceiver) {
	for _, f := range p.tri.FiniteFaces() {
		depth, _ := p.tri.Depth(f)
		if !cdt.Inside(depth) {
			continue
		}
		p.interiorFaceCount++
		a := Vertex{Point: toPoint(p.tri.Point(p.tri.VertexAt(f, 0))), Coeff: insideFillCoeff}
		b := Vertex{Point: toPoint(p.tri.Point(p.tri.VertexAt(f, 1))), Coeff: insideFillCoeff}
		c := Vertex{Point: toPoint(p.tri.Point(p.tri.VertexAt(f, 2))), Coeff: insideFillCoeff}
		sink.Triangle(a, b, c)
	}

	for _, tri := range p.curveFaces {
		sink.Triangle(
			Vertex{Point: fromRegionPoint(tri.A.Point), Coeff: toCoeff(tri.A.Coeff)},
			Vertex{Point: fromRegionPoint(tri.B.Point), Coeff: toCoeff(tri.B.Coeff)},
			Vertex{Point: fromRegionPoint(tri.C.Point), Coeff: toCoeff(tri.C.Coeff)},
		)
	}
}

func pointsOf(el PathElement) []Point {
	switch e := el.(type) {
	case MoveTo:
		return []Point{e.Point}
	case LineTo:
		return []Point{e.Point}
	case QuadTo:
		return []Point{e.Control, e.Point}
	case CubicTo:
		return []Point{e.Control1, e.Control2, e.Point}
	default:
		return nil
	}
}

func toCDT(p Point) cdt.Point                   { return cdt.Point{X: p.X, Y: p.Y} }
func toPoint(p cdt.Point) Point                 { return Point{X: p.X, Y: p.Y} }
func fromRegionPoint(p curveregion.Point) Point { return Point{X: p.X, Y: p.Y} }
func toRegionPoint(p Point) curveregion.Point {
	return curveregion.Point{X: p.X, Y: p.Y}
}
func toRegionCoeff(c CoefficientTriple) curveregion.Coeff {
	return curveregion.Coeff{K: c.K, L: c.L, M: c.M}
}
func toCoeff(c curveregion.Coeff) CoefficientTriple {
	return CoefficientTriple{K: c.K, L: c.L, M: c.M}
}
