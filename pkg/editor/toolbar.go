package editor

import (
	"slices"

	"github.com/ha1tch/diagram-toolkit/pkg/behavior"
	"github.com/ha1tch/diagram-toolkit/pkg/diagram"
)

// Toolbar is an ordered tool palette with one selected tool.
// The selection tool is always first.
type Toolbar struct {
	tools    []behavior.Tool
	selected int
}

// NewToolbar creates a palette with the selection tool followed by tools.
func NewToolbar(tools ...behavior.Tool) *Toolbar {
	return &Toolbar{tools: append([]behavior.Tool{behavior.SelectionTool}, tools...)}
}

// DefaultToolbar returns a palette with one tool per demo edge kind.
func DefaultToolbar() *Toolbar {
	return NewToolbar(
		behavior.Tool{Name: "transition", Kind: diagram.KindTransition},
		behavior.Tool{Name: "association", Kind: diagram.KindAssociation},
		behavior.Tool{Name: "dependency", Kind: diagram.KindDependency},
	)
}

// Tools returns the palette in order.
func (tb *Toolbar) Tools() []behavior.Tool { return slices.Clone(tb.tools) }

// Select activates the tool at index i. Out-of-range indexes are ignored.
func (tb *Toolbar) Select(i int) bool {
	if i < 0 || i >= len(tb.tools) {
		return false
	}
	tb.selected = i
	return true
}

// Selected returns the index of the active tool.
func (tb *Toolbar) Selected() int { return tb.selected }

// SelectedTool returns the active tool.
func (tb *Toolbar) SelectedTool() behavior.Tool { return tb.tools[tb.selected] }
