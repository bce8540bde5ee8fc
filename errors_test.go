package curvefill

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_AreDistinctSentinels(t *testing.T) {
	all := []error{ErrNonFinitePoint, ErrUnclosedSubpath, ErrCoincidentInsert}
	for i, e1 := range all {
		for j, e2 := range all {
			if i != j && errors.Is(e1, e2) {
				t.Errorf("sentinel errors %v and %v should be distinct", e1, e2)
			}
		}
	}
}

func TestErrors_WrappingPreservesIs(t *testing.T) {
	wrapped := fmt.Errorf("curvefill: %w: (1, NaN)", ErrNonFinitePoint)
	if !errors.Is(wrapped, ErrNonFinitePoint) {
		t.Error("fmt.Errorf(\"%w\", ...) wrapping should preserve errors.Is")
	}
}
