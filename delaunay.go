// An animatable Delaunay triangulation package for Go.
//
// This package builds the Delaunay triangulation of a set of points with the
// Bowyer-Watson algorithm. The work is split into small steps so that a viewer
// can show the construction as it happens; see the bowyerwatson package for
// the step engine. If you only want the triangles, use Triangulate.
package delaunay

import "github.com/osuushi/delaunay/bowyerwatson"

type Point = bowyerwatson.Point
type Triangle = bowyerwatson.Triangle
type Edge = bowyerwatson.Edge
type Circle = bowyerwatson.Circle

// Triangulate the points, running the step engine to the end.
//
// Points should have non-negative coordinates, and no two points may
// coincide. Collinear runs of points may produce garbage. None of this is
// validated.
func Triangulate(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := bowyerwatson.HandleEnginePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	engine := bowyerwatson.NewEngine()
	engine.SetPoints(points)
	if _, err := engine.RunToCompletion(0); err != nil {
		return nil, err
	}
	return engine.CurrentTriangles(), nil
}
