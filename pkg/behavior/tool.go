package behavior

import "github.com/ha1tch/diagram-toolkit/pkg/diagram"

// Tool is an entry of the tool palette. Tools that create diagram elements
// carry the Kind of element they create.
type Tool struct {
	Name string
	Kind diagram.Kind
}

// SelectionTool is the generic pointer tool. It has no kind.
var SelectionTool = Tool{Name: "select"}

// IsSelection reports whether t is the selection tool.
func (t Tool) IsSelection() bool {
	return t == SelectionTool
}

// Matches reports whether the tool may edit elements of the given kind.
// The selection tool matches everything.
func (t Tool) Matches(kind diagram.Kind) bool {
	if t.IsSelection() {
		return true
	}
	return t.Kind != "" && t.Kind == kind
}
