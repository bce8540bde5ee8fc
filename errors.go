package curvefill

import "errors"

// Fatal errors reported by Triangulate (spec §7). Each aborts the call with
// no partial sink emission.
var (
	// ErrNonFinitePoint is returned when an input point's coordinate is NaN
	// or ±Inf.
	ErrNonFinitePoint = errors.New("curvefill: non-finite point coordinate")

	// ErrUnclosedSubpath is returned when a subpath is still open at
	// end-of-stream and WithTolerateUnclosedSubpaths(false) is in effect.
	ErrUnclosedSubpath = errors.New("curvefill: unclosed subpath at end of path")

	// ErrCoincidentInsert is returned when the planar triangulator cannot
	// deduplicate a coincident point on insertion.
	ErrCoincidentInsert = errors.New("curvefill: coincident point could not be deduplicated")
)
