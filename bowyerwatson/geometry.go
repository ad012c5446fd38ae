package bowyerwatson

import "math"

// Geometric kernel. None of these functions guard against degenerate input:
// collinear or coincident vertices produce NaN or infinite results, which
// then simply fail every point-in-circle comparison.

func Distance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Law of cosines, solved for the angle opposite side a:
// A = acos((b^2 + c^2 - a^2) / 2bc)
func angleOpposite(a, b, c float64) float64 {
	return math.Acos((b*b + c*c - a*a) / (2 * b * c))
}

// Interior angles at vertices A, B and C respectively.
func TriangleAngles(t Triangle) (float64, float64, float64) {
	// Each side is named after the vertex it faces
	a := Distance(t.B, t.C)
	b := Distance(t.C, t.A)
	c := Distance(t.A, t.B)
	return angleOpposite(a, b, c), angleOpposite(b, c, a), angleOpposite(c, a, b)
}

// The circumcenter in barycentric form, weighting each vertex by sin(2θ) of
// its own angle.
func Circumcenter(t Triangle) Point {
	angleA, angleB, angleC := TriangleAngles(t)
	wA, wB, wC := math.Sin(2*angleA), math.Sin(2*angleB), math.Sin(2*angleC)
	sum := wA + wB + wC
	return Point{
		X: (t.A.X*wA + t.B.X*wB + t.C.X*wC) / sum,
		Y: (t.A.Y*wA + t.B.Y*wB + t.C.Y*wC) / sum,
	}
}

// r = abc / sqrt((a+b+c)(-a+b+c)(a-b+c)(a+b-c))
func Circumradius(t Triangle) float64 {
	a := Distance(t.A, t.B)
	b := Distance(t.B, t.C)
	c := Distance(t.C, t.A)
	return (a * b * c) / math.Sqrt((a+b+c)*(-a+b+c)*(a-b+c)*(a+b-c))
}

func Circumcircle(t Triangle) Circle {
	return Circle{Center: Circumcenter(t), Radius: Circumradius(t)}
}

// Strict: a point exactly on the circle is outside.
func (c Circle) Contains(p Point) bool {
	return Distance(c.Center, p) < c.Radius
}

func PointInCircle(c Circle, p Point) bool {
	return c.Contains(p)
}

// False for circles built from degenerate triangles.
func (c Circle) IsFinite() bool {
	for _, v := range []float64{c.Center.X, c.Center.Y, c.Radius} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{t.A, t.B},
		{t.B, t.C},
		{t.C, t.A},
	}
}

func EdgesEqual(e1, e2 Edge) bool {
	return e1 == e2 || e1 == e2.Reverse()
}

// Twice the signed area. Positive for counterclockwise triangles.
func (t Triangle) SignedArea2() float64 {
	return (t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.B.Y-t.A.Y)*(t.C.X-t.A.X)
}
