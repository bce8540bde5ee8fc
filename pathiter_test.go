package curvefill

import "testing"

func TestPath_All(t *testing.T) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	path.Close()

	var collected []PathElement
	for e := range path.All() {
		collected = append(collected, e)
	}
	if len(collected) != 3 {
		t.Fatalf("got %d elements, want 3", len(collected))
	}
	if _, ok := collected[0].(MoveTo); !ok {
		t.Errorf("element 0 = %T, want MoveTo", collected[0])
	}
	if _, ok := collected[2].(Close); !ok {
		t.Errorf("element 2 = %T, want Close", collected[2])
	}
}

func TestPath_All_EarlyStop(t *testing.T) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(1, 0)
	path.LineTo(2, 0)
	path.LineTo(3, 0)

	count := 0
	for range path.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iteration did not stop early: count = %d", count)
	}
}

func TestOutlineHandle_ReleasesOnClose(t *testing.T) {
	released := false
	h := NewOutlineHandle([]PathElement{MoveTo{Point: Pt(0, 0)}}, func() { released = true })

	var collected []PathElement
	for e := range h.All() {
		collected = append(collected, e)
	}
	if len(collected) != 1 {
		t.Fatalf("got %d elements, want 1", len(collected))
	}

	h.Close()
	if !released {
		t.Error("Close should invoke the release callback")
	}

	h.Close() // must be idempotent
}

func TestOutlineHandle_NilRelease(t *testing.T) {
	h := NewOutlineHandle(nil, nil)
	h.Close()
	h.Close()
}
