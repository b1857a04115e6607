package behavior

import (
	"github.com/google/uuid"
	"github.com/ha1tch/diagram-toolkit/pkg/diagram"
)

// GestureState is the progress of the current press-drag-release gesture.
type GestureState int

const (
	GestureIdle     GestureState = iota // no gesture, or press rejected
	GestureArmed                        // valid press, waiting for drag
	GestureInserted                     // insertion attempted this gesture
)

func (s GestureState) String() string {
	switch s {
	case GestureArmed:
		return "armed"
	case GestureInserted:
		return "inserted"
	default:
		return "idle"
	}
}

// TransitionPointInserter adds a waypoint to the selected edge when the user
// presses on it and starts dragging. At most one waypoint is added per
// gesture.
type TransitionPointInserter struct {
	part    EditorPart
	tools   ToolBar
	manager *Manager

	// Gesture state, reset on every release.
	pending  bool
	inserted bool
	location diagram.Point
	edgeID   uuid.UUID
}

// NewTransitionPointInserter creates the behavior. Edit notifications are
// sent through m.
func NewTransitionPointInserter(part EditorPart, tools ToolBar, m *Manager) *TransitionPointInserter {
	return &TransitionPointInserter{
		part:    part,
		tools:   tools,
		manager: m,
	}
}

// State returns the current gesture state.
func (b *TransitionPointInserter) State() GestureState {
	switch {
	case b.inserted:
		return GestureInserted
	case b.pending:
		return GestureArmed
	default:
		return GestureIdle
	}
}

// Location returns the snapped candidate point of the armed gesture.
func (b *TransitionPointInserter) Location() (diagram.Point, bool) {
	return b.location, b.pending
}

func (b *TransitionPointInserter) OnMousePressed(ev MouseEvent) {
	if ev.ClickCount > 1 || ev.Button != ButtonPrimary {
		return
	}

	selected := b.part.SelectedEdges()
	if len(selected) != 1 {
		logger.Debug("transition point: ignoring press", "reason", "selection", "selected", len(selected))
		return
	}
	edge := selected[0]
	if !edge.SupportsWaypoints() {
		logger.Debug("transition point: ignoring press", "reason", "unsupported edge", "edge", edge.ID)
		return
	}
	if tool := b.tools.SelectedTool(); !tool.Matches(edge.Kind) {
		logger.Debug("transition point: ignoring press", "reason", "tool", "tool", tool.Name, "kind", edge.Kind)
		return
	}

	p := ev.Point(b.part.ZoomFactor())
	if diagram.NearAny(p, edge.Waypoints(), diagram.HitTolerance) {
		logger.Debug("transition point: ignoring press", "reason", "on existing point", "x", p.X, "y", p.Y)
		return
	}

	b.location = b.part.Snap(p)
	b.edgeID = edge.ID
	b.pending = true
}

// OnMouseDragged inserts the waypoint on the first drag of an armed gesture.
// A press without a drag never changes the edge.
func (b *TransitionPointInserter) OnMouseDragged(ev MouseEvent) {
	if !b.pending || b.inserted {
		return
	}
	b.inserted = true

	edge := b.selectedEdge()
	if edge == nil {
		logger.Debug("transition point: edge left selection during drag", "edge", b.edgeID)
		return
	}
	b.insert(edge)
}

func (b *TransitionPointInserter) OnMouseReleased(ev MouseEvent) {
	b.location = diagram.Point{}
	b.pending = false
	b.inserted = false
	b.edgeID = uuid.Nil
}

func (b *TransitionPointInserter) insert(edge *diagram.Edge) {
	edit := b.manager.BeginWaypointEdit(edge)
	defer edit.Close()

	if edge.InsertWaypoint(b.location, diagram.HitTolerance) {
		logger.Info("transition point added", "edge", edge.ID, "x", b.location.X, "y", b.location.Y)
	}
}

// selectedEdge resolves the gesture's edge against the live selection.
// It returns nil if the edge is no longer the single selected edge.
func (b *TransitionPointInserter) selectedEdge() *diagram.Edge {
	selected := b.part.SelectedEdges()
	if len(selected) != 1 || selected[0].ID != b.edgeID {
		return nil
	}
	return selected[0]
}
