package diagram

import (
	"slices"

	"github.com/google/uuid"
)

// Kind tags the type of a diagram element. Tools carry the same tag so that
// a tool can be matched against the edges it creates.
type Kind string

// Edge kinds used by the demo editor.
const (
	KindTransition  Kind = "transition"
	KindAssociation Kind = "association"
	KindDependency  Kind = "dependency"
)

// Edge connects two fixed connection points through an ordered list of
// waypoints. Waypoint order is path order from Start to End.
type Edge struct {
	ID    uuid.UUID
	Kind  Kind
	Label string
	Start Point
	End   Point

	waypoints      []Point
	allowWaypoints bool
}

// NewEdge creates an edge between two connection points.
// allowWaypoints controls whether bends may be added to it.
func NewEdge(kind Kind, start, end Point, allowWaypoints bool) *Edge {
	return &Edge{
		ID:             uuid.New(),
		Kind:           kind,
		Start:          start,
		End:            end,
		allowWaypoints: allowWaypoints,
	}
}

// SupportsWaypoints reports whether the edge accepts waypoints at all.
func (e *Edge) SupportsWaypoints() bool {
	return e.allowWaypoints
}

// Waypoints returns a copy of the edge's waypoints in path order.
func (e *Edge) Waypoints() []Point {
	return slices.Clone(e.waypoints)
}

// SetWaypoints replaces the waypoint list wholesale.
func (e *Edge) SetWaypoints(points []Point) {
	e.waypoints = slices.Clone(points)
}

// ConnectionPoints returns the two fixed endpoints of the edge.
func (e *Edge) ConnectionPoints() (Point, Point) {
	return e.Start, e.End
}

// Path returns the full polyline: start, waypoints, end.
func (e *Edge) Path() []Point {
	path := make([]Point, 0, len(e.waypoints)+2)
	path = append(path, e.Start)
	path = append(path, e.waypoints...)
	path = append(path, e.End)
	return path
}

// HitSegment returns the index of the first path segment within tol of p,
// or -1 if none is. Segment i runs from Path()[i] to Path()[i+1].
func (e *Edge) HitSegment(p Point, tol float64) int {
	for i, seg := range Segments(e.Path()) {
		if seg.Distance(p) <= tol {
			return i
		}
	}
	return -1
}

// InsertWaypoint inserts p into the waypoint list ahead of the end point of
// the first segment that passes within tol of p. Segments are tried in path
// order and the first match wins. It reports whether p was inserted.
func (e *Edge) InsertWaypoint(p Point, tol float64) bool {
	seg := e.HitSegment(p, tol)
	if seg < 0 {
		return false
	}
	// Segment seg ends at path index seg+1, which is waypoint index seg.
	e.SetWaypoints(slices.Insert(e.Waypoints(), seg, p))
	return true
}
