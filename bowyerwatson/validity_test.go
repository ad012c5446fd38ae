package bowyerwatson

// This contains no actual tests. It is just a helper for checking a finished
// triangulation.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Relative tolerance for the empty circumcircle check
const delaunayTolerance = 1e-6

// Helper to check that a finished triangulation is valid. The rules are:
// 1. Every triangle vertex is one of the input points.
// 2. No super triangle vertex is left.
// 3. No triangle has zero area.
// 4. Every edge is shared by at most two triangles.
// 5. No input point lies inside any triangle's circumcircle.
func AssertValidDelaunay(t *testing.T, points []Point, super Triangle, triangles []Triangle) {
	inputPoints := make(map[Point]struct{}, len(points))
	for _, p := range points {
		inputPoints[p] = struct{}{}
	}

	edgeUse := make(map[normalizedEdge]int)
	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			_, ok := inputPoints[v]
			require.True(t, ok, "vertex %v of %v is not an input point", v, tri)
		}
		require.False(t, touchesSuperTriangle(tri, super), "triangle %v uses a super triangle vertex", tri)
		require.NotZero(t, tri.SignedArea2(), "degenerate triangle %v", tri)

		for _, edge := range tri.Edges() {
			edgeUse[newNormalizedEdge(edge)]++
		}

		circle := Circumcircle(tri)
		require.True(t, circle.IsFinite(), "circumcircle of %v is not finite", tri)
		for _, p := range points {
			if tri.HasVertex(p) {
				continue
			}
			assert.GreaterOrEqual(t, Distance(circle.Center, p), circle.Radius*(1-delaunayTolerance),
				"point %v is inside the circumcircle of %v", p, tri)
		}
	}

	for edge, count := range edgeUse {
		assert.LessOrEqual(t, count, 2, "edge %v-%v is used by %d triangles", edge.lower, edge.upper, count)
	}
}

// An undirected edge with its endpoints in a canonical order, usable as a key
type normalizedEdge struct {
	lower, upper Point
}

func newNormalizedEdge(e Edge) normalizedEdge {
	a, b := e.Start, e.End
	if a.X < b.X || (a.X == b.X && a.Y < b.Y) {
		return normalizedEdge{a, b}
	}
	return normalizedEdge{b, a}
}

// Vertex sets of the triangles, ignoring vertex order, for comparing results.
func vertexSets(triangles []Triangle) []map[Point]struct{} {
	result := make([]map[Point]struct{}, len(triangles))
	for i, tri := range triangles {
		result[i] = map[Point]struct{}{tri.A: {}, tri.B: {}, tri.C: {}}
	}
	return result
}
