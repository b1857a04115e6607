package behavior

import "github.com/ha1tch/diagram-toolkit/pkg/diagram"

// Manager dispatches mouse gestures to behaviors in registration order and
// relays waypoint edit notifications to listeners.
type Manager struct {
	behaviors []Behavior
	listeners []EditListener
}

// NewManager creates a Manager with the given behaviors.
func NewManager(behaviors ...Behavior) *Manager {
	return &Manager{behaviors: behaviors}
}

// Add registers a behavior after the existing ones.
func (m *Manager) Add(b Behavior) {
	m.behaviors = append(m.behaviors, b)
}

// AddEditListener registers a listener for waypoint edits.
func (m *Manager) AddEditListener(l EditListener) {
	m.listeners = append(m.listeners, l)
}

func (m *Manager) FireMousePressed(ev MouseEvent) {
	for _, b := range m.behaviors {
		b.OnMousePressed(ev)
	}
}

func (m *Manager) FireMouseDragged(ev MouseEvent) {
	for _, b := range m.behaviors {
		b.OnMouseDragged(ev)
	}
}

func (m *Manager) FireMouseReleased(ev MouseEvent) {
	for _, b := range m.behaviors {
		b.OnMouseReleased(ev)
	}
}

// WaypointEdit brackets a change to an edge's waypoints. Listeners hear
// "before" when the edit begins and "after" when it is closed.
type WaypointEdit struct {
	m      *Manager
	edge   *diagram.Edge
	closed bool
}

// BeginWaypointEdit notifies listeners that e is about to change.
// The returned edit must be closed; Close is safe to defer and to call twice.
func (m *Manager) BeginWaypointEdit(e *diagram.Edge) *WaypointEdit {
	for _, l := range m.listeners {
		l.BeforeWaypointsChange(e)
	}
	return &WaypointEdit{m: m, edge: e}
}

// Close notifies listeners that the edit is complete.
func (w *WaypointEdit) Close() {
	if w.closed {
		return
	}
	w.closed = true
	for _, l := range w.m.listeners {
		l.AfterWaypointsChange(w.edge)
	}
}
