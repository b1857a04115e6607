// Package diagram provides the edge model used by the editor: edges with
// ordered waypoints, a selection set keyed by edge ID, and grid snapping.
package diagram

import (
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
)

// Diagram holds the edges of a drawing in insertion order.
type Diagram struct {
	Name  string
	edges []*Edge
	index map[uuid.UUID]*Edge
}

// New creates an empty diagram.
func New(name string) *Diagram {
	return &Diagram{
		Name:  name,
		index: make(map[uuid.UUID]*Edge),
	}
}

// AddEdge adds an edge. Adding an edge whose ID is already present is an error.
func (d *Diagram) AddEdge(e *Edge) error {
	if _, exists := d.index[e.ID]; exists {
		return fmt.Errorf("edge %s already in diagram", e.ID)
	}
	d.edges = append(d.edges, e)
	d.index[e.ID] = e
	return nil
}

// RemoveEdge removes an edge by ID. It reports whether the edge existed.
func (d *Diagram) RemoveEdge(id uuid.UUID) bool {
	if _, ok := d.index[id]; !ok {
		return false
	}
	delete(d.index, id)
	d.edges = slices.DeleteFunc(d.edges, func(e *Edge) bool { return e.ID == id })
	return true
}

// Edge returns the edge with the given ID, or nil.
func (d *Diagram) Edge(id uuid.UUID) *Edge {
	return d.index[id]
}

// Edges returns the edges in insertion order.
func (d *Diagram) Edges() []*Edge {
	return slices.Clone(d.edges)
}

// Selection is an ordered set of selected edge IDs.
type Selection struct {
	ids []uuid.UUID
}

// Set replaces the selection with the given IDs.
func (s *Selection) Set(ids ...uuid.UUID) {
	s.ids = make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(s.ids, id) {
			s.ids = append(s.ids, id)
		}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id uuid.UUID) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns the selected IDs in selection order.
func (s *Selection) IDs() []uuid.UUID {
	return slices.Clone(s.ids)
}

// Len returns the number of selected IDs.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Grid snaps points to the intersections of a square grid.
// A Size of zero or less disables snapping.
type Grid struct {
	Size float64
}

// Snap rounds p to the nearest grid intersection.
func (g Grid) Snap(p Point) Point {
	if g.Size <= 0 {
		return p
	}
	return Point{
		X: math.Round(p.X/g.Size) * g.Size,
		Y: math.Round(p.Y/g.Size) * g.Size,
	}
}
