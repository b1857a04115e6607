// Package history records waypoint edits for undo and redo.
//
// A Recorder listens to the before/after notifications sent around each
// waypoint edit, snapshots the edge's waypoints on both sides, and keeps
// bounded undo and redo stacks of the differences.
package history

import (
	"slices"

	"github.com/google/uuid"
	"github.com/ha1tch/diagram-toolkit/pkg/behavior"
	"github.com/ha1tch/diagram-toolkit/pkg/diagram"
)

// DefaultMaxLevels bounds the undo stack when no limit is given.
const DefaultMaxLevels = 50

// EdgeLookup resolves edge IDs for undo and redo.
type EdgeLookup interface {
	Edge(id uuid.UUID) *diagram.Edge
}

// Change is one recorded waypoint edit.
type Change struct {
	EdgeID uuid.UUID
	Before []diagram.Point
	After  []diagram.Point
}

// Recorder is an undo/redo stack of waypoint changes.
type Recorder struct {
	maxLevels int
	pending   map[uuid.UUID][]diagram.Point
	undoStack []Change
	redoStack []Change
}

var _ behavior.EditListener = (*Recorder)(nil)

// NewRecorder creates a recorder keeping at most maxLevels undo steps.
// A non-positive maxLevels means DefaultMaxLevels.
func NewRecorder(maxLevels int) *Recorder {
	if maxLevels <= 0 {
		maxLevels = DefaultMaxLevels
	}
	return &Recorder{
		maxLevels: maxLevels,
		pending:   make(map[uuid.UUID][]diagram.Point),
	}
}

// BeforeWaypointsChange snapshots the edge's current waypoints.
func (r *Recorder) BeforeWaypointsChange(e *diagram.Edge) {
	r.pending[e.ID] = e.Waypoints()
}

// AfterWaypointsChange records the edit if the waypoints changed.
func (r *Recorder) AfterWaypointsChange(e *diagram.Edge) {
	before, ok := r.pending[e.ID]
	if !ok {
		return
	}
	delete(r.pending, e.ID)

	after := e.Waypoints()
	if slices.Equal(before, after) {
		return
	}

	r.undoStack = append(r.undoStack, Change{EdgeID: e.ID, Before: before, After: after})
	if len(r.undoStack) > r.maxLevels {
		r.undoStack = r.undoStack[1:]
	}

	// Clear redo stack on new action
	r.redoStack = nil
}

// CanUndo reports whether there is a change to undo.
func (r *Recorder) CanUndo() bool { return len(r.undoStack) > 0 }

// CanRedo reports whether there is a change to redo.
func (r *Recorder) CanRedo() bool { return len(r.redoStack) > 0 }

// Len returns the number of undoable changes.
func (r *Recorder) Len() int { return len(r.undoStack) }

// Undo restores the waypoints of the most recent change.
// It returns false if there is nothing to undo or the edge is gone; in the
// latter case the change is discarded.
func (r *Recorder) Undo(edges EdgeLookup) bool {
	if len(r.undoStack) == 0 {
		return false
	}

	c := r.undoStack[len(r.undoStack)-1]
	r.undoStack = r.undoStack[:len(r.undoStack)-1]

	e := edges.Edge(c.EdgeID)
	if e == nil {
		behavior.Logger().Warn("undo: edge no longer exists", "edge", c.EdgeID)
		return false
	}
	e.SetWaypoints(c.Before)
	r.redoStack = append(r.redoStack, c)

	behavior.Logger().Info("undo", "edge", c.EdgeID, "waypoints", len(c.Before))
	return true
}

// Redo re-applies the most recently undone change.
func (r *Recorder) Redo(edges EdgeLookup) bool {
	if len(r.redoStack) == 0 {
		return false
	}

	c := r.redoStack[len(r.redoStack)-1]
	r.redoStack = r.redoStack[:len(r.redoStack)-1]

	e := edges.Edge(c.EdgeID)
	if e == nil {
		behavior.Logger().Warn("redo: edge no longer exists", "edge", c.EdgeID)
		return false
	}
	e.SetWaypoints(c.After)
	r.undoStack = append(r.undoStack, c)

	behavior.Logger().Info("redo", "edge", c.EdgeID, "waypoints", len(c.After))
	return true
}
