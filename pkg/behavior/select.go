package behavior

import (
	"github.com/google/uuid"
	"github.com/ha1tch/diagram-toolkit/pkg/diagram"
)

// SelectableSurface is a surface whose edges can be selected by clicking.
type SelectableSurface interface {
	ZoomFactor() float64
	Edges() []*diagram.Edge
	SelectedEdges() []*diagram.Edge
	SelectEdges(ids ...uuid.UUID)
}

// SelectByClick selects the edge under a primary press, or clears the
// selection when the press hits no edge. A press on an edge that is already
// selected keeps the selection, even if other edges are within reach.
type SelectByClick struct {
	surface SelectableSurface
}

// NewSelectByClick creates the behavior.
func NewSelectByClick(s SelectableSurface) *SelectByClick {
	return &SelectByClick{surface: s}
}

func (b *SelectByClick) OnMousePressed(ev MouseEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	p := ev.Point(b.surface.ZoomFactor())
	if EdgeAt(b.surface.SelectedEdges(), p) != nil {
		return
	}
	if e := EdgeAt(b.surface.Edges(), p); e != nil {
		b.surface.SelectEdges(e.ID)
		return
	}
	b.surface.SelectEdges()
}

func (b *SelectByClick) OnMouseDragged(MouseEvent)  {}
func (b *SelectByClick) OnMouseReleased(MouseEvent) {}

// EdgeAt returns the first edge with a segment within hit tolerance of p.
func EdgeAt(edges []*diagram.Edge, p diagram.Point) *diagram.Edge {
	tol := diagram.HitTolerance
	for _, e := range edges {
		minX, minY, maxX, maxY := diagram.PathBounds(e.Path())
		if p.X < minX-tol || p.X > maxX+tol || p.Y < minY-tol || p.Y > maxY+tol {
			continue
		}
		if e.HitSegment(p, tol) >= 0 {
			return e
		}
	}
	return nil
}
