package bowyerwatson

// Find the boundary of the polygonal hole left by removing the bad triangles.
// An edge is on the boundary when no other bad triangle has the same edge, in
// either direction. Edges keep the direction they have in their own triangle,
// which keeps the retriangulated fan consistently wound.
//
// This is quadratic in the number of bad triangles, which is fine since a
// cavity only spans the neighborhood of one point.
func CavityBoundary(badTriangles []Triangle) []Edge {
	var boundary []Edge
	for i, triangle := range badTriangles {
		for _, edge := range triangle.Edges() {
			if !edgeSharedByOther(edge, i, badTriangles) {
				boundary = append(boundary, edge)
			}
		}
	}
	return boundary
}

func edgeSharedByOther(edge Edge, owner int, triangles []Triangle) bool {
	for j, other := range triangles {
		if j == owner {
			continue
		}
		for _, otherEdge := range other.Edges() {
			if EdgesEqual(edge, otherEdge) {
				return true
			}
		}
	}
	return false
}
