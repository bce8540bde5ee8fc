package cdt

// MarkDepths implements spec §4.5 phase 2: a BFS flood-fill that assigns
// every finite face a depth, where crossing a non-constrained edge keeps
// the same depth and crossing a constrained edge defers the neighbor to a
// new BFS seeded one depth deeper. A face is inside the filled region iff
// its depth is odd. Grounded on Triangulator.cpp's flood()/mark() pair.
func (t *Triangulation) MarkDepths() {
	var border []FaceHandle
	seeds := t.InfiniteFaces()
	for _, s := range seeds {
		t.SetDepth(s, 0)
	}
	border = append(border, t.flood(seeds, 0)...)
	seedDepth := make(map[FaceHandle]uint32, len(border))
	for _, f := range border {
		seedDepth[f] = 1
	}

	for len(border) > 0 {
		var next []FaceHandle
		var seeded FaceHandle
		found := false
		for _, f := range border {
			if _, set := t.Depth(f); !set {
				seeded = f
				found = true
				break
			}
		}
		if !found {
			break
		}
		depth := seedDepth[seeded]
		t.SetDepth(seeded, depth)
		next = append(next, t.flood([]FaceHandle{seeded}, depth)...)
		for _, f := range next {
			if _, ok := seedDepth[f]; !ok {
				seedDepth[f] = depth + 1
			}
		}

		// Keep any border faces from earlier rounds that are still unset,
		// plus whatever this round's flood deferred.
		var remaining []FaceHandle
		for _, f := range border {
			if _, set := t.Depth(f); !set {
				remaining = append(remaining, f)
			}
		}
		border = append(remaining, next...)
	}
}

// flood performs one BFS from seeds, all already assigned depth, and
// returns the faces it deferred across constrained edges.
func (t *Triangulation) flood(seeds []FaceHandle, depth uint32) []FaceHandle {
	queue := append([]FaceHandle(nil), seeds...)
	var deferred []FaceHandle

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		ff := &t.faces[f]
		for i := 0; i < 3; i++ {
			n := ff.neighbors[i]
			if n == NoFace || !t.faces[n].alive {
				continue
			}
			if _, set := t.Depth(n); set {
				continue
			}
			if ff.constrained[i] {
				deferred = append(deferred, n)
				continue
			}
			t.SetDepth(n, depth)
			queue = append(queue, n)
		}
	}
	return deferred
}

// Inside reports whether a face with the given depth is part of the filled
// region (spec §4.5 phase 3: depth odd).
func Inside(depth uint32) bool {
	return depth%2 == 1
}
