package entity

import (
	"encoding/json"
	"time"
)

// LayoutDataVersion is the current schema version for persisted layouts.
// Increment when making breaking changes to the serialization format.
const LayoutDataVersion = 1

// LayoutData is a serializable snapshot of the shell arrangement: which
// widgets live in which area, in what order, and which ones are active.
// Widgets are referenced by ID; a resolver maps them back on restore.
type LayoutData struct {
	Version   int             `json:"version"`
	MainArea  *DockLayoutData `json:"main_area,omitempty"`
	LeftBar   *SideBarData    `json:"left_bar,omitempty"`
	RightBar  *SideBarData    `json:"right_bar,omitempty"`
	StatusBar json.RawMessage `json:"status_bar,omitempty"`
}

// DockLayoutData captures the dock area tree plus the widgets that were
// active in it.
type DockLayoutData struct {
	Main          *DockNode  `json:"main,omitempty"`
	ActiveWidgets []WidgetID `json:"active_widgets,omitempty"`
}

// SideBarData captures the ordered widgets of a side bar and its active one.
type SideBarData struct {
	Widgets       []WidgetID `json:"widgets,omitempty"`
	ActiveWidgets []WidgetID `json:"active_widgets,omitempty"`
}

// DockNodeKind tags the shape of a DockNode.
type DockNodeKind string

const (
	DockNodeTabArea   DockNodeKind = "tab-area"   // Leaf: a tab group
	DockNodeSplitArea DockNodeKind = "split-area" // Branch: nested areas
)

// DockNode is a node in the serialized dock tree. Kind selects which fields
// are meaningful:
//   - tab-area: Widgets and CurrentIndex
//   - split-area: Orientation, Children and Sizes
//
// Nodes of any other kind are ignored by readers.
type DockNode struct {
	Kind         DockNodeKind `json:"kind"`
	Widgets      []WidgetID   `json:"widgets,omitempty"`
	CurrentIndex int          `json:"current_index,omitempty"`
	Orientation  Orientation  `json:"orientation,omitempty"`
	Children     []*DockNode  `json:"children,omitempty"`
	Sizes        []float64    `json:"sizes,omitempty"`
}

// NewTabAreaNode builds a leaf node.
func NewTabAreaNode(currentIndex int, widgets ...WidgetID) *DockNode {
	return &DockNode{Kind: DockNodeTabArea, Widgets: widgets, CurrentIndex: currentIndex}
}

// NewSplitAreaNode builds a branch node with equal sizes.
func NewSplitAreaNode(orientation Orientation, children ...*DockNode) *DockNode {
	sizes := make([]float64, len(children))
	for i := range sizes {
		sizes[i] = 1 / float64(len(children))
	}
	return &DockNode{Kind: DockNodeSplitArea, Orientation: orientation, Children: children, Sizes: sizes}
}

// Walk traverses the tree depth-first calling fn for each node. Returns early
// if fn returns false. Nil children are skipped.
func (n *DockNode) Walk(fn func(*DockNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	if n.Kind != DockNodeSplitArea {
		return true
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// WidgetIDs returns every widget id referenced by tab areas, in tree order.
func (n *DockNode) WidgetIDs() []WidgetID {
	var ids []WidgetID
	n.Walk(func(node *DockNode) bool {
		if node.Kind == DockNodeTabArea {
			ids = append(ids, node.Widgets...)
		}
		return true
	})
	return ids
}

// CountWidgets returns the number of widgets referenced by the layout.
func (d *LayoutData) CountWidgets() int {
	if d == nil {
		return 0
	}
	count := 0
	if d.MainArea != nil {
		count += len(d.MainArea.Main.WidgetIDs())
	}
	if d.LeftBar != nil {
		count += len(d.LeftBar.Widgets)
	}
	if d.RightBar != nil {
		count += len(d.RightBar.Widgets)
	}
	return count
}

// LayoutInfo summarizes a stored layout for listings.
type LayoutInfo struct {
	Name        string
	Version     int
	WidgetCount int
	UpdatedAt   time.Time
}
