// Command diagedit is a TUI demo of waypoint editing on diagram edges.
//
// Select an edge by clicking it, then press on the edge and drag to add a
// bend. Undo and redo revert waypoint changes.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/diagram-toolkit/pkg/behavior"
	"github.com/ha1tch/diagram-toolkit/pkg/config"
	"github.com/ha1tch/diagram-toolkit/pkg/diagram"
	"github.com/ha1tch/diagram-toolkit/pkg/editor"
)

// Editor holds all editor state
type Editor struct {
	screen     tcell.Screen
	session    *editor.Session
	config     config.Config
	configPath string

	message     string
	messageType MessageType
	messageTime int64 // Unix milliseconds when message was shown
}

// MessageType for status messages
type MessageType int

const (
	MsgInfo    MessageType = iota // Informative, no flash
	MsgError                      // Errors, flash
	MsgSuccess                    // State changes, flash
)

// configReload is posted by the config watcher onto the event loop.
type configReload struct {
	cfg config.Config
	err error
}

func main() {
	cfgPath := config.Path()
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	d, err := demoDiagram()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building demo diagram: %v\n", err)
		os.Exit(1)
	}

	ed := &Editor{
		session:    editor.NewSession(d, cfg),
		config:     cfg,
		configPath: cfgPath,
	}

	// Initialize screen
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()
	ed.screen = screen

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		err := config.Watch(ctx, cfgPath, func(cfg config.Config, err error) {
			screen.PostEvent(tcell.NewEventInterrupt(configReload{cfg, err}))
		})
		if err != nil {
			logger.Warn("config watcher stopped", "err", err)
		}
	}()

	ed.showMessage("Click an edge to select it, then drag on it to add a bend", MsgInfo)

	// Main loop
	ed.run()

	cancel()
	screen.Fini()
}

// setupLogging routes logs to cfg.LogFile.
// The terminal belongs to the UI, so nothing is logged without a file.
func setupLogging(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()}))
	behavior.SetLogger(l)
	return l, func() { f.Close() }, nil
}

// demoDiagram returns a few edges of each kind to play with.
func demoDiagram() (*diagram.Diagram, error) {
	d := diagram.New("demo")
	edges := []*diagram.Edge{
		diagram.NewEdge(diagram.KindTransition, diagram.Pt(4, 3), diagram.Pt(50, 3), true),
		diagram.NewEdge(diagram.KindTransition, diagram.Pt(4, 8), diagram.Pt(50, 16), true),
		diagram.NewEdge(diagram.KindAssociation, diagram.Pt(60, 3), diagram.Pt(60, 18), true),
		diagram.NewEdge(diagram.KindDependency, diagram.Pt(4, 20), diagram.Pt(70, 20), false),
	}
	edges[0].Label = "idle -> running"
	edges[1].Label = "running -> done"
	edges[2].Label = "owns"
	edges[3].Label = "uses (fixed)"
	edges[1].SetWaypoints([]diagram.Point{diagram.Pt(30, 8)})

	for _, e := range edges {
		if err := d.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (ed *Editor) run() {
	for {
		ed.draw()
		ed.screen.Show()

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			if ed.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		case *tcell.EventInterrupt:
			if r, ok := ev.Data().(configReload); ok {
				ed.applyConfig(r)
			}
		}
	}
}

func (ed *Editor) handleMouse(ev *tcell.EventMouse) {
	_, h := ed.screen.Size()
	_, y := ev.Position()

	// Ignore presses on the status and help bars, but always let a
	// release through so the gesture ends.
	if y >= h-2 && !ed.session.Mouse.Dragging() {
		return
	}

	before := ed.waypointCount()
	ed.session.HandleMouse(ev)
	if ed.waypointCount() > before {
		ed.showMessage("Bend added", MsgSuccess)
	}
}

func (ed *Editor) waypointCount() int {
	n := 0
	for _, e := range ed.session.Part.Edges() {
		n += len(e.Waypoints())
	}
	return n
}

func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlZ:
		ed.undo()
		return false
	case tcell.KeyCtrlY:
		ed.redo()
		return false
	case tcell.KeyEscape:
		ed.session.Part.Selection().Clear()
		return false
	case tcell.KeyLeft:
		ed.pan(-2, 0)
		return false
	case tcell.KeyRight:
		ed.pan(2, 0)
		return false
	case tcell.KeyUp:
		ed.pan(0, -1)
		return false
	case tcell.KeyDown:
		ed.pan(0, 1)
		return false
	case tcell.KeyTab:
		ed.cycleSelection()
		return false
	}

	switch r := ev.Rune(); r {
	case 'q':
		return true
	case 'u':
		ed.undo()
	case 'r':
		ed.redo()
	case '0', '1', '2', '3':
		ed.selectTool(int(r - '0'))
	case '+', '=':
		ed.zoom(ed.session.Part.ZoomFactor() * 2)
	case '-':
		ed.zoom(ed.session.Part.ZoomFactor() / 2)
	case 'g':
		ed.toggleGrid()
	case 'y':
		ed.copyToClipboard()
	}
	return false
}

func (ed *Editor) undo() {
	if !ed.session.Undo() {
		ed.showMessage("Nothing to undo", MsgInfo)
		return
	}
	ed.showMessage("Undo", MsgInfo)
}

func (ed *Editor) redo() {
	if !ed.session.Redo() {
		ed.showMessage("Nothing to redo", MsgInfo)
		return
	}
	ed.showMessage("Redo", MsgInfo)
}

func (ed *Editor) pan(dx, dy int) {
	m := ed.session.Mouse
	m.OffsetX += dx
	m.OffsetY += dy
	if m.OffsetX < 0 {
		m.OffsetX = 0
	}
	if m.OffsetY < 0 {
		m.OffsetY = 0
	}
}

func (ed *Editor) cycleSelection() {
	edges := ed.session.Part.Edges()
	if len(edges) == 0 {
		return
	}
	next := 0
	if sel := ed.session.Part.SelectedEdges(); len(sel) > 0 {
		for i, e := range edges {
			if e.ID == sel[0].ID {
				next = (i + 1) % len(edges)
				break
			}
		}
	}
	ed.session.Part.SelectEdges(edges[next].ID)
}

func (ed *Editor) selectTool(i int) {
	if !ed.session.Tools.Select(i) {
		return
	}
	ed.showMessage("Tool: "+ed.session.Tools.SelectedTool().Name, MsgInfo)
}

func (ed *Editor) zoom(z float64) {
	if z < 0.25 || z > 8 {
		ed.showMessage("Zoom limit", MsgError)
		return
	}
	if err := ed.session.Part.SetZoom(z); err != nil {
		ed.showMessage(err.Error(), MsgError)
		return
	}
	ed.showMessage(fmt.Sprintf("Zoom %gx", z), MsgInfo)
}

func (ed *Editor) toggleGrid() {
	g := ed.session.Part.Grid()
	if g.Size > 0 {
		g.Size = 0
		ed.showMessage("Grid off", MsgInfo)
	} else {
		g.Size = ed.config.GridSize
		if g.Size <= 0 {
			g.Size = 1
		}
		ed.showMessage(fmt.Sprintf("Grid %g", g.Size), MsgInfo)
	}
	ed.session.Part.SetGrid(g)
}

func (ed *Editor) copyToClipboard() {
	sel := ed.session.Part.SelectedEdges()
	if len(sel) != 1 {
		ed.showMessage("Select one edge to copy", MsgError)
		return
	}
	if err := clipboard.WriteAll(formatPath(sel[0].Path())); err != nil {
		ed.showMessage(fmt.Sprintf("Clipboard error: %v", err), MsgError)
		return
	}
	ed.showMessage("Path copied", MsgSuccess)
}

func (ed *Editor) applyConfig(r configReload) {
	if r.err != nil {
		ed.showMessage(fmt.Sprintf("Config error: %v", r.err), MsgError)
		return
	}
	ed.config = r.cfg
	ed.session.Apply(r.cfg)
	ed.showMessage("Config reloaded", MsgInfo)
}

func (ed *Editor) showMessage(msg string, msgType MessageType) {
	ed.message = msg
	ed.messageType = msgType
	ed.messageTime = time.Now().UnixMilli()

	// Redraw at each flash phase boundary
	if ed.screen != nil && flashes(msgType) {
		screen := ed.screen
		for i := 1; i <= flashMillis/flashPhaseMillis; i++ {
			time.AfterFunc(time.Duration(i*flashPhaseMillis)*time.Millisecond, func() {
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			})
		}
	}
}

// formatPath renders a polyline as space-separated "x,y" pairs.
func formatPath(points []diagram.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
