package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/diagram-toolkit/pkg/behavior"
	"github.com/ha1tch/diagram-toolkit/pkg/diagram"
)

// Styles
var (
	styleDefault   = tcell.StyleDefault
	styleEdge      = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleEdgeFixed = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEdgeSel   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEndpoint  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWaypoint  = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleCandidate = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 162, 200)) // Lilac
	styleLabel     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo   = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgFlash  = tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(tcell.ColorSilver)
	styleHelp      = tcell.StyleDefault.Foreground(tcell.ColorGray) // Help bar on default background
)

// Flash pattern for error and success messages:
// normal(0-125) -> inverted(125-250) -> normal(250-375) -> inverted(375-500) -> normal(500+)
const (
	flashPhaseMillis = 125
	flashMillis      = 4 * flashPhaseMillis
)

// flashInverted reports whether a flashing message is drawn inverted
// elapsed milliseconds after it was shown.
func flashInverted(elapsed int64) bool {
	if elapsed < 0 || elapsed >= flashMillis {
		return false
	}
	phase := elapsed / flashPhaseMillis
	return phase == 1 || phase == 3
}

// flashes reports whether messages of type t flash.
func flashes(t MessageType) bool {
	return t == MsgError || t == MsgSuccess
}

func (ed *Editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	ed.drawCanvas(w, h-2)
	ed.drawStatusBar(w, h)
}

func (ed *Editor) drawCanvas(w, h int) {
	part := ed.session.Part
	selected := part.Selection()

	for _, e := range part.Edges() {
		style := styleEdge
		if !e.SupportsWaypoints() {
			style = styleEdgeFixed
		}
		if selected.Contains(e.ID) {
			style = styleEdgeSel
		}
		ed.drawEdge(e, style, w, h)
	}

	if p, ok := ed.session.Inserter.Location(); ok {
		x, y := ed.toScreen(p)
		ed.setCell(x, y, '+', styleCandidate, w, h)
	}
}

func (ed *Editor) drawEdge(e *diagram.Edge, style tcell.Style, w, h int) {
	path := e.Path()
	for _, seg := range diagram.Segments(path) {
		x0, y0 := ed.toScreen(seg.A)
		x1, y1 := ed.toScreen(seg.B)
		ch := lineChar(x1-x0, y1-y0)
		for _, c := range bresenham(x0, y0, x1, y1) {
			ed.setCell(c[0], c[1], ch, style, w, h)
		}
	}

	for _, p := range e.Waypoints() {
		x, y := ed.toScreen(p)
		ed.setCell(x, y, '●', styleWaypoint, w, h)
	}

	start, end := e.ConnectionPoints()
	sx, sy := ed.toScreen(start)
	ex, ey := ed.toScreen(end)
	ed.setCell(sx, sy, '■', styleEndpoint, w, h)
	ed.setCell(ex, ey, '►', styleEndpoint, w, h)

	if e.Label != "" {
		// Label above the middle of the first segment
		mx, my := (sx+ed.firstBendX(e, ex))/2, sy-1
		ed.drawClipped(mx-len(e.Label)/2, my, e.Label, styleLabel, w, h)
	}
}

func (ed *Editor) firstBendX(e *diagram.Edge, fallback int) int {
	wp := e.Waypoints()
	if len(wp) == 0 {
		return fallback
	}
	x, _ := ed.toScreen(wp[0])
	return x
}

// toScreen maps a diagram point to a screen cell.
func (ed *Editor) toScreen(p diagram.Point) (int, int) {
	z := ed.session.Part.ZoomFactor()
	m := ed.session.Mouse
	x := int(math.Round(p.X*z)) - m.OffsetX
	y := int(math.Round(p.Y*z)) - m.OffsetY
	return x, y
}

func (ed *Editor) setCell(x, y int, r rune, style tcell.Style, w, h int) {
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	ed.screen.SetContent(x, y, r, nil, style)
}

func (ed *Editor) drawClipped(x, y int, s string, style tcell.Style, w, h int) {
	for i, r := range []rune(s) {
		ed.setCell(x+i, y, r, style, w, h)
	}
}

func (ed *Editor) drawStatusBar(w, h int) {
	y := h - 1

	// Background
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	tools := ed.session.Tools
	info := fmt.Sprintf("[%s] zoom %gx grid %g", tools.SelectedTool().Name,
		ed.session.Part.ZoomFactor(), ed.session.Part.Grid().Size)
	if n := ed.session.History.Len(); n > 0 {
		info += fmt.Sprintf(" undo:%d", n)
	}
	ed.drawString(1, y, info, styleStatus)

	// Gesture state
	state := ed.session.Inserter.State()
	if state != behavior.GestureIdle {
		label := state.String()
		ed.drawString(w/2-len(label)/2, y, label, styleStatus)
	}

	// Message
	if ed.message != "" {
		style := styleMsgInfo
		if ed.messageType == MsgError {
			style = styleMsgError
		}
		if flashes(ed.messageType) && flashInverted(time.Now().UnixMilli()-ed.messageTime) {
			style = styleMsgFlash
		}
		ed.drawString(w-len(ed.message)-2, y, ed.message, style)
	}

	// Help bar
	y = h - 2
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
	ed.drawString(1, y, helpString, styleHelp)
}

const helpString = "Click:Select  Drag:Add bend  U:Undo  R:Redo  0-3:Tool  +/-:Zoom  G:Grid  Y:Copy  Tab:Cycle  Q:Quit"

func (ed *Editor) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		ed.screen.SetContent(x+i, y, r, nil, style)
	}
}

// bresenham returns the cells on the line from (x0,y0) to (x1,y1),
// both endpoints included.
func bresenham(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	cells := make([][2]int, 0, dx+dy+1)
	for i := 0; i < dx+dy+2; i++ {
		cells = append(cells, [2]int{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return cells
}

// lineChar returns the character for a segment with direction (dx, dy).
func lineChar(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case abs(dx) > 2*abs(dy):
		return '─'
	case abs(dy) > 2*abs(dx):
		return '│'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
