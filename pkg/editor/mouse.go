package editor

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/diagram-toolkit/pkg/behavior"
)

// DefaultDoubleClick is the window within which a second press on the same
// cell counts as a double-click.
const DefaultDoubleClick = 400 * time.Millisecond

// MouseTracker turns tcell mouse reports, which only carry the current
// button mask, into press, drag and release gestures.
type MouseTracker struct {
	// Offset is added to screen positions to get surface positions.
	OffsetX, OffsetY int
	DoubleClick      time.Duration

	now func() time.Time

	down         behavior.Button
	lastX, lastY int

	clickCount    int
	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
	lastClickBtn  behavior.Button
}

// NewMouseTracker creates a tracker with the default double-click window.
func NewMouseTracker() *MouseTracker {
	return &MouseTracker{
		DoubleClick: DefaultDoubleClick,
		now:         time.Now,
	}
}

// Dragging reports whether a button is currently held.
func (t *MouseTracker) Dragging() bool {
	return t.down != behavior.ButtonNone
}

// Handle classifies ev and forwards it to d. It reports whether a gesture
// event was dispatched.
func (t *MouseTracker) Handle(ev *tcell.EventMouse, d behavior.Dispatcher) bool {
	sx, sy := ev.Position()
	x, y := sx+t.OffsetX, sy+t.OffsetY
	btn := buttonFromMask(ev.Buttons())

	if t.down == behavior.ButtonNone {
		if btn == behavior.ButtonNone {
			// Hover or wheel
			return false
		}
		t.down = btn
		t.lastX, t.lastY = x, y
		d.FireMousePressed(behavior.MouseEvent{
			Button:     btn,
			ClickCount: t.countClick(btn, x, y),
			X:          x,
			Y:          y,
		})
		return true
	}

	if btn == behavior.ButtonNone {
		released := t.down
		t.down = behavior.ButtonNone
		d.FireMouseReleased(behavior.MouseEvent{Button: released, X: x, Y: y})
		return true
	}

	if x == t.lastX && y == t.lastY {
		return false
	}
	t.lastX, t.lastY = x, y
	d.FireMouseDragged(behavior.MouseEvent{Button: t.down, X: x, Y: y})
	return true
}

func (t *MouseTracker) countClick(btn behavior.Button, x, y int) int {
	now := t.now()
	if btn == t.lastClickBtn && x == t.lastClickX && y == t.lastClickY &&
		now.Sub(t.lastClickTime) < t.DoubleClick {
		t.clickCount++
	} else {
		t.clickCount = 1
	}
	t.lastClickTime = now
	t.lastClickX, t.lastClickY = x, y
	t.lastClickBtn = btn
	return t.clickCount
}

func buttonFromMask(mask tcell.ButtonMask) behavior.Button {
	switch {
	case mask&tcell.Button1 != 0:
		return behavior.ButtonPrimary
	case mask&tcell.Button2 != 0:
		return behavior.ButtonSecondary
	case mask&tcell.Button3 != 0:
		return behavior.ButtonMiddle
	default:
		return behavior.ButtonNone
	}
}
