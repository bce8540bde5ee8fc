package curvefill

import "iter"

// ElementSource is anything that can present an outline as a forward,
// finite, non-restartable sequence of PathElement values (spec §4.1, §6).
// *Path satisfies it directly via All; callers wrapping an external,
// possibly reference-counted outline representation should satisfy it via
// an OutlineHandle instead so release happens deterministically.
type ElementSource interface {
	// All yields the outline's elements in order. Each subpath begins with
	// a MoveTo; a Close returns the pen to the subpath's MoveTo point.
	All() iter.Seq[PathElement]
}

// All implements ElementSource for *Path, yielding its elements in order.
func (p *Path) All() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, e := range p.elements {
			if !yield(e) {
				return
			}
		}
	}
}

// OutlineHandle adapts an opaque, externally-owned outline representation —
// one that must be released after use, the way a retained CGPathRef or a
// font-engine's glyph outline handle would be — into an ElementSource under
// scoped acquisition (spec §4.1 "the adapter may retain a handle for its
// lifetime and release it on teardown").
//
// Construct one with NewOutlineHandle and always defer Close; Close is safe
// to call more than once.
type OutlineHandle struct {
	elements []PathElement
	release  func()
	closed   bool
}

// NewOutlineHandle wraps elements (already extracted from some external
// outline source) together with a release callback invoked exactly once by
// Close. Pass a nil release if the source needs no teardown.
//
// Example:
//
//	h := curvefill.NewOutlineHandle(elementsFromGlyph(g), g.Release)
//	defer h.Close()
//	curvefill.Triangulate(h.All(), sink)
func NewOutlineHandle(elements []PathElement, release func()) *OutlineHandle {
	return &OutlineHandle{elements: elements, release: release}
}

// All implements ElementSource.
func (h *OutlineHandle) All() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, e := range h.elements {
			if !yield(e) {
				return
			}
		}
	}
}

// Close releases the underlying handle, if any. Safe to call multiple times.
func (h *OutlineHandle) Close() {
	if h.closed {
		return
	}
	h.closed = true
	if h.release != nil {
		h.release()
	}
}
