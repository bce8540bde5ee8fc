package curvefill

import "log/slog"

// Width names a floating-point width for emitted coefficients.
// Points are always carried as float64; coefficients MAY be narrowed to
// float32 for GPU consumption (spec §6: "implementations SHOULD offer
// both widths"). Vertex.Coeff32 does that narrowing whatever Width is set.
type Width int

const (
	// Width64 names float64 coefficients (the default).
	Width64 Width = iota
	// Width32 names float32 coefficients. Emitted Vertex values are the same
	// as under Width64; Vertex.Coeff32 gives the narrowed triple.
	Width32
)

// defaultClassifyEpsilon is the magnitude below which a (d1,d2,d3) component
// is rounded to exactly zero during initial classification (spec §4.2 step 4).
const defaultClassifyEpsilon = 1e-3

// defaultLoopReclassifyEpsilon is the tighter threshold used when
// re-classifying the two halves of a subdivided Loop curve (spec §4.2.1).
const defaultLoopReclassifyEpsilon = 1e-4

// TriangulateOption configures a Triangulate call.
// Use functional options to customize behavior without growing Triangulate's
// signature — the same pattern the surrounding geometry types use for
// configuring optional behavior.
//
// Example:
//
//	err := curvefill.Triangulate(elements, sink,
//	    curvefill.WithCoefficientWidth(curvefill.Width32),
//	)
type TriangulateOption func(*triangulateOptions)

// triangulateOptions holds optional configuration for a Triangulate call.
type triangulateOptions struct {
	classifyEpsilon        float64
	loopReclassifyEpsilon  float64
	tolerateUnclosed       bool
	coeffWidth             Width
	logger                 *slog.Logger
}

// defaultOptions returns the default triangulation options.
func defaultOptions() triangulateOptions {
	return triangulateOptions{
		classifyEpsilon:       defaultClassifyEpsilon,
		loopReclassifyEpsilon: defaultLoopReclassifyEpsilon,
		tolerateUnclosed:      true,
		coeffWidth:            Width64,
		logger:                nil, // falls back to the package logger
	}
}

// WithEpsilon overrides the two ε thresholds used to round near-zero
// (d1,d2,d3) components to exactly zero: classify is used for the initial
// classification in spec §4.2 step 4, and loopReclassify is used when
// re-classifying the two halves produced by Loop subdivision (spec §4.2.1).
//
// Example:
//
//	// Looser thresholds for noisy, hand-authored control points.
//	curvefill.Triangulate(elements, sink, curvefill.WithEpsilon(1e-2, 1e-3))
func WithEpsilon(classify, loopReclassify float64) TriangulateOption {
	return func(o *triangulateOptions) {
		o.classifyEpsilon = classify
		o.loopReclassifyEpsilon = loopReclassify
	}
}

// WithTolerateUnclosedSubpaths controls whether an unclosed subpath at
// end-of-stream is treated as an implicit Close (spec §7) or reported as
// ErrUnclosedSubpath. Defaults to true.
func WithTolerateUnclosedSubpaths(tolerate bool) TriangulateOption {
	return func(o *triangulateOptions) {
		o.tolerateUnclosed = tolerate
	}
}

// WithCoefficientWidth records the coefficient width for the call.
// Triangulate does not read it: emitted Vertex values are the same for every
// Width, and Vertex.Coeff32 narrows any of them to float32.
func WithCoefficientWidth(w Width) TriangulateOption {
	return func(o *triangulateOptions) {
		o.coeffWidth = w
	}
}

// WithLogger overrides the package logger for the duration of a single
// Triangulate call, without mutating the process-wide logger set by
// SetLogger. Useful for tests that want to assert on emitted log records.
func WithLogger(l *slog.Logger) TriangulateOption {
	return func(o *triangulateOptions) {
		o.logger = l
	}
}

// resolvedLogger returns the call-scoped logger if set, otherwise the
// package-wide logger.
func (o triangulateOptions) resolvedLogger() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
