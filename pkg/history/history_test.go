package history

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/ha1tch/diagram-toolkit/pkg/behavior"
	"github.com/ha1tch/diagram-toolkit/pkg/diagram"
)

func newDiagram(t *testing.T) (*diagram.Diagram, *diagram.Edge) {
	t.Helper()
	d := diagram.New("history")
	e := diagram.NewEdge(diagram.KindTransition, diagram.Pt(0, 0), diagram.Pt(100, 0), true)
	if err := d.AddEdge(e); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return d, e
}

// edit applies fn to e between before/after notifications.
func edit(m *behavior.Manager, e *diagram.Edge, fn func()) {
	w := m.BeginWaypointEdit(e)
	defer w.Close()
	fn()
}

func TestUndoRedoCycle(t *testing.T) {
	d, e := newDiagram(t)
	r := NewRecorder(0)
	m := behavior.NewManager()
	m.AddEditListener(r)

	edit(m, e, func() { e.InsertWaypoint(diagram.Pt(50, 1), diagram.HitTolerance) })
	edit(m, e, func() { e.InsertWaypoint(diagram.Pt(80, 0), diagram.HitTolerance) })

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}

	if !r.Undo(d) {
		t.Fatal("Undo failed")
	}
	if got := e.Waypoints(); !slices.Equal(got, []diagram.Point{diagram.Pt(50, 1)}) {
		t.Errorf("After undo: %v", got)
	}

	if !r.Undo(d) {
		t.Fatal("Second undo failed")
	}
	if n := len(e.Waypoints()); n != 0 {
		t.Errorf("After second undo: %d waypoints", n)
	}
	if r.Undo(d) {
		t.Error("Undo on empty stack should fail")
	}

	if !r.Redo(d) || !r.Redo(d) {
		t.Fatal("Redo failed")
	}
	want := []diagram.Point{diagram.Pt(50, 1), diagram.Pt(80, 0)}
	if got := e.Waypoints(); !slices.Equal(got, want) {
		t.Errorf("After redo: %v, want %v", got, want)
	}
	if r.CanRedo() {
		t.Error("Redo stack should be empty")
	}
}

func TestUnchangedEditNotRecorded(t *testing.T) {
	_, e := newDiagram(t)
	r := NewRecorder(0)
	m := behavior.NewManager()
	m.AddEditListener(r)

	// Far from the edge, no insertion happens
	edit(m, e, func() { e.InsertWaypoint(diagram.Pt(50, 50), diagram.HitTolerance) })

	if r.CanUndo() {
		t.Error("No-op edit should not be undoable")
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	d, e := newDiagram(t)
	r := NewRecorder(0)
	m := behavior.NewManager()
	m.AddEditListener(r)

	edit(m, e, func() { e.InsertWaypoint(diagram.Pt(50, 0), diagram.HitTolerance) })
	r.Undo(d)
	if !r.CanRedo() {
		t.Fatal("Expected redo after undo")
	}

	edit(m, e, func() { e.InsertWaypoint(diagram.Pt(20, 0), diagram.HitTolerance) })
	if r.CanRedo() {
		t.Error("New edit should clear the redo stack")
	}
}

func TestUndoStackLimit(t *testing.T) {
	d, e := newDiagram(t)
	r := NewRecorder(5)
	m := behavior.NewManager()
	m.AddEditListener(r)

	for i := 1; i <= 8; i++ {
		x := float64(i * 10)
		edit(m, e, func() { e.InsertWaypoint(diagram.Pt(x, 0), diagram.HitTolerance) })
	}

	if r.Len() != 5 {
		t.Fatalf("Len = %d, want 5", r.Len())
	}

	for r.Undo(d) {
	}
	// The three oldest edits fell off the stack
	want := []diagram.Point{diagram.Pt(10, 0), diagram.Pt(20, 0), diagram.Pt(30, 0)}
	if got := e.Waypoints(); !slices.Equal(got, want) {
		t.Errorf("After undoing everything: %v, want %v", got, want)
	}
}

func TestUndoMissingEdge(t *testing.T) {
	d, e := newDiagram(t)
	r := NewRecorder(0)
	m := behavior.NewManager()
	m.AddEditListener(r)

	edit(m, e, func() { e.InsertWaypoint(diagram.Pt(50, 0), diagram.HitTolerance) })
	d.RemoveEdge(e.ID)

	if r.Undo(d) {
		t.Error("Undo should fail for a removed edge")
	}
	if r.CanUndo() || r.CanRedo() {
		t.Error("Change for a removed edge should be discarded")
	}
}

func TestRecorderLogsThroughBehaviorLogger(t *testing.T) {
	var buf bytes.Buffer
	behavior.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { behavior.SetLogger(nil) })

	d, e := newDiagram(t)
	r := NewRecorder(0)
	m := behavior.NewManager()
	m.AddEditListener(r)

	edit(m, e, func() { e.InsertWaypoint(diagram.Pt(50, 0), diagram.HitTolerance) })
	if !r.Undo(d) {
		t.Fatal("Undo failed")
	}
	if !strings.Contains(buf.String(), "msg=undo") {
		t.Errorf("Undo not logged: %q", buf.String())
	}

	d.RemoveEdge(e.ID)
	r.Redo(d)
	if !strings.Contains(buf.String(), "redo: edge no longer exists") {
		t.Errorf("Missing edge not logged: %q", buf.String())
	}
}

func TestAfterWithoutBefore(t *testing.T) {
	_, e := newDiagram(t)
	r := NewRecorder(0)

	e.SetWaypoints([]diagram.Point{diagram.Pt(1, 1)})
	r.AfterWaypointsChange(e)

	if r.CanUndo() {
		t.Error("Unpaired after notification should be ignored")
	}
}
