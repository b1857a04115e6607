// Package editor binds the diagram model to an interactive surface: zoom,
// grid, selection, tool palette, and tcell mouse input.
package editor

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ha1tch/diagram-toolkit/pkg/behavior"
	"github.com/ha1tch/diagram-toolkit/pkg/diagram"
)

// Part is the editing surface for one diagram.
type Part struct {
	diagram   *diagram.Diagram
	selection *diagram.Selection
	grid      diagram.Grid
	zoom      float64
}

var (
	_ behavior.EditorPart        = (*Part)(nil)
	_ behavior.SelectableSurface = (*Part)(nil)
)

// NewPart creates a surface for d at zoom 1 with snapping disabled.
func NewPart(d *diagram.Diagram) *Part {
	return &Part{
		diagram:   d,
		selection: &diagram.Selection{},
		zoom:      1,
	}
}

// Diagram returns the edited diagram.
func (p *Part) Diagram() *diagram.Diagram { return p.diagram }

// Selection returns the live selection.
func (p *Part) Selection() *diagram.Selection { return p.selection }

// ZoomFactor returns the surface-to-diagram divisor.
func (p *Part) ZoomFactor() float64 { return p.zoom }

// SetZoom changes the zoom factor.
func (p *Part) SetZoom(z float64) error {
	if z <= 0 {
		return fmt.Errorf("invalid zoom factor %g", z)
	}
	p.zoom = z
	return nil
}

// Grid returns the snapping grid.
func (p *Part) Grid() diagram.Grid { return p.grid }

// SetGrid changes the snapping grid.
func (p *Part) SetGrid(g diagram.Grid) { p.grid = g }

// Snap rounds a diagram point to the grid.
func (p *Part) Snap(pt diagram.Point) diagram.Point { return p.grid.Snap(pt) }

// Edges returns all edges of the diagram.
func (p *Part) Edges() []*diagram.Edge { return p.diagram.Edges() }

// SelectEdges replaces the selection.
func (p *Part) SelectEdges(ids ...uuid.UUID) { p.selection.Set(ids...) }

// SelectedEdges resolves the selection against the diagram, in selection
// order. IDs of edges no longer in the diagram are skipped.
func (p *Part) SelectedEdges() []*diagram.Edge {
	var edges []*diagram.Edge
	for _, id := range p.selection.IDs() {
		if e := p.diagram.Edge(id); e != nil {
			edges = append(edges, e)
		}
	}
	return edges
}
