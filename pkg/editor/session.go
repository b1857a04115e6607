package editor

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/diagram-toolkit/pkg/behavior"
	"github.com/ha1tch/diagram-toolkit/pkg/config"
	"github.com/ha1tch/diagram-toolkit/pkg/diagram"
	"github.com/ha1tch/diagram-toolkit/pkg/history"
)

// Session wires a diagram to its editing behaviors and undo history.
type Session struct {
	Part     *Part
	Tools    *Toolbar
	Manager  *behavior.Manager
	Inserter *behavior.TransitionPointInserter
	History  *history.Recorder
	Mouse    *MouseTracker
}

// NewSession creates a session for d configured by cfg.
// Behaviors run in order: waypoint insertion, then click selection.
func NewSession(d *diagram.Diagram, cfg config.Config) *Session {
	s := &Session{
		Part:    NewPart(d),
		Tools:   DefaultToolbar(),
		Manager: behavior.NewManager(),
		History: history.NewRecorder(cfg.UndoLevels),
		Mouse:   NewMouseTracker(),
	}
	s.Inserter = behavior.NewTransitionPointInserter(s.Part, s.Tools, s.Manager)
	s.Manager.Add(s.Inserter)
	s.Manager.Add(behavior.NewSelectByClick(s.Part))
	s.Manager.AddEditListener(s.History)
	s.Apply(cfg)
	return s
}

// Apply updates zoom, grid and double-click settings from cfg.
// An invalid zoom keeps the current one. Undo depth is fixed when the
// session is created.
func (s *Session) Apply(cfg config.Config) {
	if err := s.Part.SetZoom(cfg.Zoom); err != nil {
		behavior.Logger().Warn("config: keeping zoom", "zoom", s.Part.ZoomFactor(), "err", err)
	}
	s.Part.SetGrid(diagram.Grid{Size: cfg.GridSize})
	s.Mouse.DoubleClick = time.Duration(cfg.DoubleClickMillis) * time.Millisecond
}

// HandleMouse feeds a tcell mouse event through the behaviors.
func (s *Session) HandleMouse(ev *tcell.EventMouse) bool {
	return s.Mouse.Handle(ev, s.Manager)
}

// Undo reverts the last waypoint change.
func (s *Session) Undo() bool {
	return s.History.Undo(s.Part.Diagram())
}

// Redo re-applies the last undone waypoint change.
func (s *Session) Redo() bool {
	return s.History.Redo(s.Part.Diagram())
}
