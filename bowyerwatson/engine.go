package bowyerwatson

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/osuushi/delaunay/dbg"
	"github.com/pkg/errors"
)

// This implements Bowyer-Watson as a resumable state machine. Each call to Step
// does one unit of work: bootstrapping the super triangle, classifying a single
// mesh triangle against the current point, emptying the cavity, pausing once,
// or filling the cavity. All progress lives on the Engine, so a caller can stop
// calling Step at any time and pick up later.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	pending []Point // replaced by SetPoints, captured at bootstrap
	points  []Point // the point list of the current run

	mesh       *Mesh
	phase      Phase
	pointIndex int
	super      Triangle
	finished   bool

	// Accumulated for the current point, cleared when its cycle completes
	bad      []badTriangle
	boundary []Edge

	steps int
	err   error
}

type badTriangle struct {
	handle   Handle
	triangle Triangle
}

// What a step did, for drawing. None of it is needed to drive the algorithm.
type Hint struct {
	Phase Phase // phase after the step

	Point    Point // the point being inserted after the step
	HasPoint bool

	// Set when the step classified a triangle
	Scanned  bool
	Handle   Handle
	Triangle Triangle
	Circle   Circle
	Bad      bool

	Finished bool
}

func NewEngine() *Engine {
	return &Engine{mesh: NewMesh()}
}

// Replace the points for the next run. A run that has already been seeded
// keeps its own copy until Reset.
func (e *Engine) SetPoints(points []Point) {
	e.pending = slices.Clone(points)
}

// Return to the state before bootstrap. Points given to SetPoints are kept.
func (e *Engine) Reset() {
	e.points = nil
	e.mesh.Reset()
	e.phase = InitialPhase()
	e.pointIndex = 0
	e.super = Triangle{}
	e.finished = false
	e.bad = nil
	e.boundary = nil
	e.steps = 0
	e.err = nil
}

// Advance the algorithm by one unit of work. Once the run has finished,
// further steps change nothing. An error means the mesh bookkeeping went
// wrong; the engine keeps returning it until Reset.
func (e *Engine) Step() (hint Hint, err error) {
	if e.err != nil {
		return e.decorate(Hint{}), e.err
	}
	defer func() {
		recoveredErr := HandleEnginePanicRecover(recover())
		if recoveredErr != nil {
			e.err = recoveredErr
			hint = e.decorate(Hint{})
			err = recoveredErr
		}
	}()

	e.steps++
	return e.decorate(e.step()), nil
}

func (e *Engine) step() Hint {
	if e.phase.Kind == Initial {
		e.bootstrap()
		e.phase = Scanning(0)
		return Hint{}
	}

	if e.pointIndex >= len(e.points) {
		e.finalize()
		return Hint{}
	}
	point := e.points[e.pointIndex]

	var hint Hint
	switch e.phase.Kind {
	case ScanningBadTriangles:
		hint = e.scanNext(point)
		if e.phase.Before(HoleBoundaryReady) {
			return hint
		}
		// The scan just finished, so go straight on to opening the hole
		e.computeBoundary()
		e.removeBadTriangles()
	case HoleBoundaryReady:
		e.computeBoundary()
		e.removeBadTriangles()
	case RemovingBadTriangles:
		if e.phase.HasRemovedOnce {
			// The empty cavity stays on screen for one step
			e.phase = Inserting()
		} else {
			e.removeBadTriangles()
		}
	case InsertingNewTriangles:
		e.fillCavity(point)
	default:
		fatalf("unknown phase %v", e.phase)
	}
	return hint
}

func (e *Engine) bootstrap() {
	e.points = slices.Clone(e.pending)
	e.pointIndex = 0
	e.finished = false
	e.super = SuperTriangle(e.points)
	e.mesh.Reset()
	e.mesh.Insert(e.super)
}

// Classify the triangle at the current scan position.
func (e *Engine) scanNext(point Point) Hint {
	i := e.phase.TriangleIndex
	if i >= e.mesh.Len() {
		// Nothing (left) to scan
		e.phase = BoundaryReady()
		return Hint{}
	}

	handle, triangle := e.mesh.At(i)
	circle := Circumcircle(triangle)
	bad := circle.Contains(point)
	if bad {
		e.bad = append(e.bad, badTriangle{handle, triangle})
	}

	if i == e.mesh.Len()-1 {
		if e.phase.Before(HoleBoundaryReady) {
			e.phase = BoundaryReady()
		}
	} else {
		e.phase = Scanning(i + 1)
	}

	return Hint{
		Scanned:  true,
		Handle:   handle,
		Triangle: triangle,
		Circle:   circle,
		Bad:      bad,
	}
}

func (e *Engine) computeBoundary() {
	e.boundary = CavityBoundary(e.BadTriangles())
	e.phase = Removing(false)
}

func (e *Engine) removeBadTriangles() {
	for _, b := range e.bad {
		e.mesh.Remove(b.handle)
	}
	e.phase = Removing(true)
}

// Connect the point to every edge of the cavity boundary, then move on to the
// next point.
func (e *Engine) fillCavity(point Point) {
	for _, edge := range e.boundary {
		e.mesh.Insert(Triangle{point, edge.Start, edge.End})
	}
	e.pointIndex++
	e.phase = Scanning(0)
	e.bad = nil
	e.boundary = nil
}

// Strip every triangle that still uses a super triangle vertex. This is safe
// to repeat; after the first time there is nothing left to strip.
func (e *Engine) finalize() {
	var doomed []Handle
	for handle, triangle := range e.mesh.All() {
		if touchesSuperTriangle(triangle, e.super) {
			doomed = append(doomed, handle)
		}
	}
	for _, handle := range doomed {
		e.mesh.Remove(handle)
	}
	e.finished = true
	e.bad = nil
	e.boundary = nil
}

func (e *Engine) decorate(hint Hint) Hint {
	hint.Phase = e.phase
	hint.Point, hint.HasPoint = e.CurrentPoint()
	hint.Finished = e.finished
	return hint
}

// Step until the run has finished. A maxSteps of zero or less means no limit.
// Returns the number of steps taken by this call.
func (e *Engine) RunToCompletion(maxSteps int) (int, error) {
	taken := 0
	for !e.finished {
		if maxSteps > 0 && taken >= maxSteps {
			return taken, errors.Errorf("run not finished after %d steps", maxSteps)
		}
		if _, err := e.Step(); err != nil {
			return taken, err
		}
		taken++
	}
	return taken, nil
}

func (e *Engine) Phase() Phase {
	return e.phase
}

func (e *Engine) Done() bool {
	return e.finished
}

func (e *Engine) Err() error {
	return e.err
}

// Number of steps since the last reset.
func (e *Engine) Steps() int {
	return e.steps
}

// The points of the current run, or the pending points if no run is seeded.
func (e *Engine) Points() []Point {
	if e.phase.Kind == Initial {
		return slices.Clone(e.pending)
	}
	return slices.Clone(e.points)
}

func (e *Engine) CurrentPoint() (Point, bool) {
	if e.phase.Kind == Initial || e.pointIndex >= len(e.points) {
		return Point{}, false
	}
	return e.points[e.pointIndex], true
}

// Bad triangles found so far for the current point, in scan order.
func (e *Engine) BadTriangles() []Triangle {
	result := make([]Triangle, len(e.bad))
	for i, b := range e.bad {
		result[i] = b.triangle
	}
	return result
}

// The cavity boundary for the current point, once it has been computed.
func (e *Engine) Boundary() []Edge {
	return slices.Clone(e.boundary)
}

func (e *Engine) SuperTriangle() (Triangle, bool) {
	return e.super, e.phase.Kind != Initial
}

func (e *Engine) Triangles() iter.Seq[Triangle] {
	return e.mesh.Triangles()
}

func (e *Engine) CurrentTriangles() []Triangle {
	return e.mesh.Snapshot()
}

func (h Hint) String() string {
	var b strings.Builder
	b.WriteString(h.Phase.String())
	if h.HasPoint {
		fmt.Fprintf(&b, " point %v", h.Point)
	}
	if h.Scanned {
		verdict := "good"
		if h.Bad {
			verdict = "bad"
		}
		fmt.Fprintf(&b, ": %s %v is %s", dbg.Name(h.Handle), h.Triangle, verdict)
	}
	if h.Finished {
		b.WriteString(" (finished)")
	}
	return b.String()
}
