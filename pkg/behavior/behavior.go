// Package behavior implements mouse-driven editing behaviors for a diagram
// editor surface. A Manager fans mouse gestures out to registered behaviors
// and notifies edit listeners around waypoint changes.
package behavior

import "github.com/ha1tch/diagram-toolkit/pkg/diagram"

// Button identifies a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// MouseEvent is a mouse report in surface (pixel) coordinates.
type MouseEvent struct {
	Button     Button
	ClickCount int
	X, Y       int
}

// Point converts the event position to diagram space for the given zoom.
func (ev MouseEvent) Point(zoom float64) diagram.Point {
	if zoom <= 0 {
		zoom = 1
	}
	return diagram.Pt(float64(ev.X), float64(ev.Y)).Div(zoom)
}

// Behavior reacts to one press-drag-release gesture at a time.
type Behavior interface {
	OnMousePressed(ev MouseEvent)
	OnMouseDragged(ev MouseEvent)
	OnMouseReleased(ev MouseEvent)
}

// Dispatcher receives classified mouse gestures.
type Dispatcher interface {
	FireMousePressed(ev MouseEvent)
	FireMouseDragged(ev MouseEvent)
	FireMouseReleased(ev MouseEvent)
}

// EditorPart is the editing surface a behavior works against.
type EditorPart interface {
	// ZoomFactor divides surface coordinates to get diagram coordinates.
	ZoomFactor() float64
	// Snap rounds a diagram point to the grid.
	Snap(p diagram.Point) diagram.Point
	// SelectedEdges returns the selected edges in selection order.
	SelectedEdges() []*diagram.Edge
}

// ToolBar reports the active tool.
type ToolBar interface {
	SelectedTool() Tool
}

// EditListener is notified before and after the waypoints of an edge change.
type EditListener interface {
	BeforeWaypointsChange(e *diagram.Edge)
	AfterWaypointsChange(e *diagram.Edge)
}
