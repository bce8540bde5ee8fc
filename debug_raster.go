package curvefill

import (
	"image"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// DebugRasterize rasterizes an emitted triangle stream into a coverage mask
// of the given size, ignoring each vertex's (k,l,m) coefficients and
// treating every triangle as flat-filled. It exists for tests and manual
// inspection — asserting on filled area (property S1) or eyeballing a PNG —
// not as part of the classification/triangulation pipeline itself (spec §1:
// this package does not drive a GPU pipeline or implement anti-aliasing
// heuristics of its own; it borrows golang.org/x/image/vector's scanline
// rasterizer for that one diagnostic purpose).
func DebugRasterize(triangles [][3]Vertex, width, height int) *image.Alpha {
	raster := vector.NewRasterizer(width, height)
	for _, tri := range triangles {
		raster.MoveTo(toVec2(tri[0].Point))
		raster.LineTo(toVec2(tri[1].Point))
		raster.LineTo(toVec2(tri[2].Point))
		raster.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	raster.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// DebugRasterizeSink adapts SliceSink.Triangles for DebugRasterize.
func DebugRasterizeSink(s *SliceSink, width, height int) *image.Alpha {
	return DebugRasterize(s.Triangles, width, height)
}

// FilledArea reports the total filled area (in source units) of a
// rasterized coverage mask: the sum of each pixel's coverage fraction. A
// cheap numeric check for tests asserting against scenarios like S1, where
// the expected filled area is known analytically.
func FilledArea(mask *image.Alpha) float64 {
	var total float64
	bounds := mask.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			total += float64(mask.AlphaAt(x, y).A) / 255
		}
	}
	return total
}

func toVec2(p Point) f32.Vec2 {
	return f32.Vec2{float32(p.X), float32(p.Y)}
}
