package bowyerwatson

// Build a triangle enclosing every point. The triangle's right angle sits at
// (-1, -1) and its legs run out to twice the largest coordinates plus a
// margin. The maximum starts at the origin, so this assumes points with
// non-negative coordinates, which is what screen space gives us.
func SuperTriangle(points []Point) Triangle {
	var corner Point
	for _, p := range points {
		if p.X > corner.X {
			corner.X = p.X
		}
		if p.Y > corner.Y {
			corner.Y = p.Y
		}
	}
	corner.X *= 2
	corner.Y *= 2

	return Triangle{
		A: Point{-1, -1},
		B: Point{corner.X + 3, -1},
		C: Point{-1, corner.Y + 3},
	}
}

// Whether t shares any vertex with the super triangle.
func touchesSuperTriangle(t Triangle, super Triangle) bool {
	for _, v := range super.Vertices() {
		if t.HasVertex(v) {
			return true
		}
	}
	return false
}
