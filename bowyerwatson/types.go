package bowyerwatson

import "fmt"

// Point equality is exact. Triangles in the mesh are matched by their
// vertices, so we must never perturb a point once it has been handed to the
// engine.
type Point struct {
	X float64
	Y float64
}

// A triangle is an ordered triple. Two triangles with the same vertices in a
// different rotation are different values.
type Triangle struct {
	A, B, C Point
}

// An edge is an ordered pair taken in its triangle's vertex order, but edge
// equality (see EdgesEqual) ignores direction.
type Edge struct {
	Start, End Point
}

type Circle struct {
	Center Point
	Radius float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t.A, t.B, t.C)
}

func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", e.Start, e.End)
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

func (e Edge) Reverse() Edge {
	return Edge{e.End, e.Start}
}
