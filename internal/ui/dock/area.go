// Package dock implements the central dock area: a tree of split areas whose
// leaves are tab areas, each showing one of its widgets at a time.
package dock

import (
	"context"
	"slices"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/layout"
)

// node is either a tab area (tabs != nil) or a split area (children).
type node struct {
	parent      *node
	tabs        *layout.TabStrip
	orientation entity.Orientation
	children    []*node
	sizes       []float64
	disconnect  func()
}

func (n *node) isTabArea() bool {
	return n.tabs != nil
}

// Area is the in-memory dock area.
type Area struct {
	root    *node
	current *node // tab area that received the last add or activation
}

var _ port.DockArea = (*Area)(nil)

// New creates an empty dock area.
func New() *Area {
	return &Area{}
}

func (a *Area) newTabArea() *node {
	n := &node{
		tabs: layout.NewTabStrip(layout.TabStripOptions{
			RemoveBehavior: layout.SelectAdjacent,
			SelectOnInsert: true,
		}),
	}
	n.disconnect = n.tabs.OnCurrentChanged(func(change layout.CurrentChange) {
		if change.PreviousTitle != nil && change.PreviousTitle.Owner().Parent() == a {
			change.PreviousTitle.Owner().Hide()
		}
		if change.CurrentTitle != nil {
			change.CurrentTitle.Owner().Show()
		}
	})
	return n
}

// IsEmpty reports whether the dock holds no widgets.
func (a *Area) IsEmpty() bool {
	return a.root == nil
}

// Widgets returns every docked widget in tree order.
func (a *Area) Widgets() []layout.Widget {
	var widgets []layout.Widget
	for _, leaf := range a.leaves() {
		for _, title := range leaf.tabs.Titles() {
			widgets = append(widgets, title.Owner())
		}
	}
	return widgets
}

// TabBars returns the tab groups in tree order.
func (a *Area) TabBars() []port.TabGroup {
	leaves := a.leaves()
	groups := make([]port.TabGroup, 0, len(leaves))
	for _, leaf := range leaves {
		groups = append(groups, leaf.tabs)
	}
	return groups
}

// CurrentTabBar returns the tab group that last received a widget or an
// activation, or nil.
func (a *Area) CurrentTabBar() port.TabGroup {
	if a.current == nil || !a.contains(a.current) {
		return nil
	}
	return a.current.tabs
}

// AddWidget docks w according to opts. w is detached from its previous
// container and becomes the current tab of its group.
func (a *Area) AddWidget(w layout.Widget, opts port.DockOptions) {
	layout.Detach(w)

	ref := a.refLeaf(opts.Ref)
	target := ref
	insertAt := -1

	switch opts.Mode {
	case port.DockModeSplitLeft:
		target = a.splitFrom(ref, entity.OrientationHorizontal, false)
	case port.DockModeSplitRight:
		target = a.splitFrom(ref, entity.OrientationHorizontal, true)
	case port.DockModeSplitTop:
		target = a.splitFrom(ref, entity.OrientationVertical, false)
	case port.DockModeSplitBottom:
		target = a.splitFrom(ref, entity.OrientationVertical, true)
	default:
		if target == nil {
			target = a.splitFrom(nil, entity.OrientationHorizontal, true)
		}
		if opts.Ref != nil {
			if i := target.tabs.IndexOf(opts.Ref.Title()); i >= 0 {
				insertAt = i + 1
			}
		}
	}
	if insertAt < 0 {
		insertAt = target.tabs.Len()
	}

	w.SetParent(a)
	w.Hide()
	target.tabs.InsertTab(insertAt, w.Title())
	a.current = target
}

// ActivateWidget selects w's tab and requests focus on it. Widgets not in
// the dock are ignored.
func (a *Area) ActivateWidget(w layout.Widget) {
	leaf := a.findLeaf(w)
	if leaf == nil {
		return
	}
	leaf.tabs.SetCurrentTitle(w.Title())
	a.current = leaf
	w.Activate()
}

// Detach implements layout.Container. Emptied tab areas are pruned and
// single-child splits collapsed into their parent.
func (a *Area) Detach(w layout.Widget) {
	leaf := a.findLeaf(w)
	if leaf == nil {
		return
	}
	leaf.tabs.RemoveTab(w.Title())
	w.SetParent(nil)
	w.Hide()
	if leaf.tabs.Len() == 0 {
		a.removeNode(leaf)
	}
}

// SaveLayout serializes the dock tree. Returns nil for an empty dock.
func (a *Area) SaveLayout() *entity.DockNode {
	return a.save(a.root)
}

func (a *Area) save(n *node) *entity.DockNode {
	if n == nil {
		return nil
	}
	if n.isTabArea() {
		ids := make([]entity.WidgetID, 0, n.tabs.Len())
		for _, title := range n.tabs.Titles() {
			ids = append(ids, title.Owner().ID())
		}
		return entity.NewTabAreaNode(max(n.tabs.CurrentIndex(), 0), ids...)
	}
	out := &entity.DockNode{
		Kind:        entity.DockNodeSplitArea,
		Orientation: n.orientation,
		Sizes:       slices.Clone(n.sizes),
	}
	for _, child := range n.children {
		out.Children = append(out.Children, a.save(child))
	}
	return out
}

// RestoreLayout replaces the dock tree with root. Widgets of the old tree
// that are not part of the new one are detached and hidden. Unknown node
// kinds, unresolvable ids and duplicate ids are skipped.
func (a *Area) RestoreLayout(ctx context.Context, root *entity.DockNode, resolver port.WidgetResolver) {
	log := logging.FromContext(ctx)

	old := a.Widgets()
	for _, leaf := range a.leaves() {
		leaf.disconnect()
	}
	a.root = nil
	a.current = nil
	for _, w := range old {
		w.SetParent(nil)
		w.Hide()
	}

	placed := make(map[layout.Widget]bool)
	a.root = a.build(ctx, root, resolver, placed)
	if a.root != nil {
		a.root.parent = nil
	}
	if leaves := a.leaves(); len(leaves) > 0 {
		a.current = leaves[0]
	}

	log.Debug().
		Int("previous_widgets", len(old)).
		Int("restored_widgets", len(placed)).
		Msg("dock layout restored")
}

func (a *Area) build(
	ctx context.Context, data *entity.DockNode, resolver port.WidgetResolver, placed map[layout.Widget]bool,
) *node {
	log := logging.FromContext(ctx)
	if data == nil {
		return nil
	}

	switch data.Kind {
	case entity.DockNodeTabArea:
		leaf := a.newTabArea()
		for _, id := range data.Widgets {
			w, ok := resolver.ResolveWidget(ctx, id)
			if !ok || placed[w] {
				log.Debug().Str("widget_id", string(id)).Msg("dock restore: widget skipped")
				continue
			}
			placed[w] = true
			layout.Detach(w)
			w.SetParent(a)
			w.Hide()
			leaf.tabs.AddTab(w.Title())
		}
		if leaf.tabs.Len() == 0 {
			leaf.disconnect()
			return nil
		}
		leaf.tabs.SetCurrentIndex(min(max(data.CurrentIndex, 0), leaf.tabs.Len()-1))
		return leaf

	case entity.DockNodeSplitArea:
		split := &node{orientation: data.Orientation}
		pruned := false
		for _, childData := range data.Children {
			child := a.build(ctx, childData, resolver, placed)
			if child == nil {
				pruned = true
				continue
			}
			child.parent = split
			split.children = append(split.children, child)
		}
		switch len(split.children) {
		case 0:
			return nil
		case 1:
			return split.children[0]
		}
		if !pruned && len(data.Sizes) == len(split.children) {
			split.sizes = slices.Clone(data.Sizes)
		} else {
			split.sizes = equalSizes(len(split.children))
		}
		return split

	default:
		log.Debug().Str("kind", string(data.Kind)).Msg("dock restore: unknown node skipped")
		return nil
	}
}

// refLeaf returns the tab area holding ref, else the current tab area, else
// the first one.
func (a *Area) refLeaf(ref layout.Widget) *node {
	if ref != nil {
		if leaf := a.findLeaf(ref); leaf != nil {
			return leaf
		}
	}
	if a.current != nil && a.contains(a.current) {
		return a.current
	}
	if leaves := a.leaves(); len(leaves) > 0 {
		return leaves[0]
	}
	return nil
}

// splitFrom creates a new tab area next to ref along orientation and
// returns it. With no ref the new area becomes the root.
func (a *Area) splitFrom(ref *node, orientation entity.Orientation, after bool) *node {
	leaf := a.newTabArea()
	if ref == nil {
		if a.root == nil {
			a.root = leaf
			return leaf
		}
		ref = a.root
	}

	parent := ref.parent
	if parent != nil && parent.orientation == orientation {
		index := slices.Index(parent.children, ref)
		if after {
			index++
		}
		leaf.parent = parent
		parent.children = slices.Insert(parent.children, index, leaf)
		parent.sizes = equalSizes(len(parent.children))
		return leaf
	}

	split := &node{orientation: orientation, parent: parent}
	if after {
		split.children = []*node{ref, leaf}
	} else {
		split.children = []*node{leaf, ref}
	}
	split.sizes = equalSizes(2)
	a.replace(ref, split)
	ref.parent = split
	leaf.parent = split
	return leaf
}

// removeNode unlinks n and collapses a parent left with a single child.
func (a *Area) removeNode(n *node) {
	if n.disconnect != nil {
		n.disconnect()
	}
	if a.current == n {
		a.current = nil
	}
	parent := n.parent
	if parent == nil {
		a.root = nil
		return
	}
	index := slices.Index(parent.children, n)
	parent.children = slices.Delete(parent.children, index, index+1)
	parent.sizes = equalSizes(len(parent.children))

	if len(parent.children) == 1 {
		only := parent.children[0]
		a.replace(parent, only)
	}
}

// replace puts replacement where old was in the tree.
func (a *Area) replace(old, replacement *node) {
	parent := old.parent
	replacement.parent = parent
	if parent == nil {
		a.root = replacement
		return
	}
	index := slices.Index(parent.children, old)
	parent.children[index] = replacement
}

func (a *Area) leaves() []*node {
	var leaves []*node
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if n.isTabArea() {
			leaves = append(leaves, n)
			return
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(a.root)
	return leaves
}

func (a *Area) findLeaf(w layout.Widget) *node {
	if w == nil {
		return nil
	}
	for _, leaf := range a.leaves() {
		if leaf.tabs.IndexOf(w.Title()) >= 0 {
			return leaf
		}
	}
	return nil
}

func (a *Area) contains(n *node) bool {
	return slices.Contains(a.leaves(), n)
}

func equalSizes(n int) []float64 {
	if n == 0 {
		return nil
	}
	sizes := make([]float64, n)
	for i := range sizes {
		sizes[i] = 1 / float64(n)
	}
	return sizes
}
