package bowyerwatson

import "fmt"

// Kinds are declared in the order a point's cycle visits them, and the engine
// relies on that order to tell whether a transition has already happened.
type PhaseKind int

const (
	Initial PhaseKind = iota
	ScanningBadTriangles
	HoleBoundaryReady
	RemovingBadTriangles
	InsertingNewTriangles
)

var phaseNames = [...]string{
	Initial:               "Initial",
	ScanningBadTriangles:  "ScanningBadTriangles",
	HoleBoundaryReady:     "HoleBoundaryReady",
	RemovingBadTriangles:  "RemovingBadTriangles",
	InsertingNewTriangles: "InsertingNewTriangles",
}

func (k PhaseKind) String() string {
	if k < 0 || int(k) >= len(phaseNames) {
		return fmt.Sprintf("PhaseKind(%d)", int(k))
	}
	return phaseNames[k]
}

// The engine's position within the algorithm. Only the fields belonging to
// Kind are meaningful: TriangleIndex for ScanningBadTriangles, and
// HasRemovedOnce for RemovingBadTriangles.
type Phase struct {
	Kind           PhaseKind
	TriangleIndex  int
	HasRemovedOnce bool
}

func InitialPhase() Phase {
	return Phase{Kind: Initial}
}

func Scanning(triangleIndex int) Phase {
	return Phase{Kind: ScanningBadTriangles, TriangleIndex: triangleIndex}
}

func BoundaryReady() Phase {
	return Phase{Kind: HoleBoundaryReady}
}

func Removing(hasRemovedOnce bool) Phase {
	return Phase{Kind: RemovingBadTriangles, HasRemovedOnce: hasRemovedOnce}
}

func Inserting() Phase {
	return Phase{Kind: InsertingNewTriangles}
}

// Whether p comes strictly before kind in a point's cycle.
func (p Phase) Before(kind PhaseKind) bool {
	return p.Kind < kind
}

func (p Phase) String() string {
	switch p.Kind {
	case ScanningBadTriangles:
		return fmt.Sprintf("%v(%d)", p.Kind, p.TriangleIndex)
	case RemovingBadTriangles:
		return fmt.Sprintf("%v(%t)", p.Kind, p.HasRemovedOnce)
	default:
		return p.Kind.String()
	}
}
