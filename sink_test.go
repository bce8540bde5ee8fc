package curvefill

import "testing"

func TestCoefficientTriple_Implicit(t *testing.T) {
	c := CoefficientTriple{K: 2, L: 3, M: 4}
	want := 2.0*2*2 - 3*4
	if got := c.Implicit(); got != want {
		t.Errorf("Implicit() = %v, want %v", got, want)
	}
}

func TestCoefficientTriple_FlipKL(t *testing.T) {
	c := CoefficientTriple{K: 1, L: 2, M: 3}
	flipped := c.flipKL()
	want := CoefficientTriple{K: -1, L: -2, M: 3}
	if flipped != want {
		t.Errorf("flipKL() = %v, want %v", flipped, want)
	}
}

func TestVertex_Coeff32(t *testing.T) {
	v := Vertex{Point: Pt(1, 2), Coeff: CoefficientTriple{K: 1.5, L: 2.5, M: 3.5}}
	got := v.Coeff32()
	want := [3]float32{1.5, 2.5, 3.5}
	if got != want {
		t.Errorf("Coeff32() = %v, want %v", got, want)
	}
}

func TestTriangleReceiverFunc(t *testing.T) {
	var got [3]Vertex
	var fn TriangleReceiverFunc = func(a, b, c Vertex) {
		got = [3]Vertex{a, b, c}
	}
	a := Vertex{Point: Pt(0, 0)}
	b := Vertex{Point: Pt(1, 0)}
	c := Vertex{Point: Pt(0, 1)}
	var recv TriangleReceiver = fn
	recv.Triangle(a, b, c)
	if got != ([3]Vertex{a, b, c}) {
		t.Errorf("TriangleReceiverFunc did not forward the call correctly")
	}
}

func TestSliceSink(t *testing.T) {
	var s SliceSink
	a := Vertex{Point: Pt(0, 0)}
	b := Vertex{Point: Pt(1, 0)}
	c := Vertex{Point: Pt(0, 1)}
	s.Triangle(a, b, c)
	if len(s.Triangles) != 1 {
		t.Fatalf("len(Triangles) = %d, want 1", len(s.Triangles))
	}
	s.Reset()
	if len(s.Triangles) != 0 {
		t.Errorf("Reset should empty Triangles, got %d", len(s.Triangles))
	}
}
