// Package sidebar implements the collapsible side bars flanking the dock area.
package sidebar

import (
	"context"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/layout"
)

// Handler owns one side bar: a rank-ordered collection of widgets, the tab
// strip showing their titles and the stack holding the widgets themselves.
// Index i of all three always refers to the same widget.
//
// The side bar is expanded iff the tab strip has a current title.
type Handler struct {
	side  entity.Side
	host  port.HostEnvironment
	items entity.RankedCollection[layout.Widget]
	tabs  *layout.TabStrip
	stack *layout.StackPanel
}

// NewHandler creates a collapsed, empty side bar for side.
func NewHandler(side entity.Side, host port.HostEnvironment) *Handler {
	h := &Handler{
		side:  side,
		host:  host,
		tabs:  layout.NewTabStrip(layout.TabStripOptions{RemoveBehavior: layout.SelectNone}),
		stack: layout.NewStackPanel(),
	}
	h.tabs.OnCurrentChanged(h.onCurrentTabChanged)
	h.stack.OnWidgetRemoved(h.onWidgetRemoved)
	h.refreshVisibility()
	return h
}

// Side returns which side this handler manages.
func (h *Handler) Side() entity.Side {
	return h.side
}

// AddWidget places w in the side bar at the upper bound of rank. A widget
// already held elsewhere (including this side bar) is detached first.
func (h *Handler) AddWidget(ctx context.Context, w layout.Widget, rank int) {
	log := logging.FromContext(ctx)

	layout.Detach(w)
	w.Hide()

	index := h.items.Insert(w, rank)
	h.stack.InsertWidget(index, w)
	h.tabs.InsertTab(index, w.Title())
	h.refreshVisibility()

	log.Debug().
		Str("side", string(h.side)).
		Str("widget_id", string(w.ID())).
		Int("rank", rank).
		Int("index", index).
		Msg("side bar widget added")
}

// RemoveWidget detaches the widget with id. Returns false if it is not here.
func (h *Handler) RemoveWidget(ctx context.Context, id entity.WidgetID) bool {
	w := h.find(id)
	if w == nil {
		return false
	}
	h.stack.Detach(w)
	logging.FromContext(ctx).Debug().
		Str("side", string(h.side)).
		Str("widget_id", string(id)).
		Msg("side bar widget removed")
	return true
}

// Activate makes the widget with id current and requests focus on it.
// Unknown ids are ignored.
func (h *Handler) Activate(ctx context.Context, id entity.WidgetID) (layout.Widget, bool) {
	w := h.find(id)
	if w == nil {
		logging.FromContext(ctx).Debug().
			Str("side", string(h.side)).
			Str("widget_id", string(id)).
			Msg("activate: widget not in side bar")
		return nil, false
	}
	h.tabs.SetCurrentTitle(w.Title())
	w.Activate()
	return w, true
}

// Collapse clears the current tab.
func (h *Handler) Collapse(ctx context.Context) {
	if h.tabs.CurrentTitle() == nil {
		return
	}
	h.tabs.SetCurrentIndex(-1)
	logging.FromContext(ctx).Debug().Str("side", string(h.side)).Msg("side bar collapsed")
}

// SelectTab handles a click on the tab at index: clicking the current tab
// collapses the side bar, any other tab expands to it.
func (h *Handler) SelectTab(ctx context.Context, index int) {
	if index < 0 || index >= h.tabs.Len() {
		return
	}
	if index == h.tabs.CurrentIndex() {
		h.Collapse(ctx)
		return
	}
	h.tabs.SetCurrentIndex(index)
	if title := h.tabs.CurrentTitle(); title != nil {
		title.Owner().Activate()
	}
}

// IsExpanded reports whether a widget is currently shown.
func (h *Handler) IsExpanded() bool {
	return h.tabs.CurrentTitle() != nil
}

// CurrentWidget returns the expanded widget, or nil when collapsed.
func (h *Handler) CurrentWidget() layout.Widget {
	if title := h.tabs.CurrentTitle(); title != nil {
		return title.Owner()
	}
	return nil
}

// Widgets returns the side bar widgets in rank order.
func (h *Handler) Widgets() []layout.Widget {
	return h.items.Values()
}

// Ranks returns the ranks of the side bar widgets in order.
func (h *Handler) Ranks() []int {
	return h.items.Ranks()
}

// Len returns the number of widgets.
func (h *Handler) Len() int {
	return h.items.Len()
}

// Titles returns the tab titles in display order.
func (h *Handler) Titles() []*layout.Title {
	return h.tabs.Titles()
}

// TabStripVisible reports whether the tab strip is shown.
func (h *Handler) TabStripVisible() bool {
	return h.tabs.IsVisible()
}

// StackVisible reports whether the widget stack is shown.
func (h *Handler) StackVisible() bool {
	return h.stack.IsVisible()
}

// VisibleWidgetCount returns how many stacked widgets are visible.
func (h *Handler) VisibleWidgetCount() int {
	return h.stack.VisibleCount()
}

// Contains reports whether w is held by this side bar.
func (h *Handler) Contains(w layout.Widget) bool {
	return h.stack.IndexOf(w) >= 0
}

// LayoutData snapshots the widget order and the active widget.
func (h *Handler) LayoutData() *entity.SideBarData {
	data := &entity.SideBarData{
		Widgets: make([]entity.WidgetID, 0, h.items.Len()),
	}
	for _, w := range h.items.Values() {
		data.Widgets = append(data.Widgets, w.ID())
	}
	if current := h.CurrentWidget(); current != nil {
		data.ActiveWidgets = []entity.WidgetID{current.ID()}
	}
	return data
}

// SetLayoutData restores a snapshot. Widgets are re-added in listed order
// with increasing synthetic ranks, then the listed active widgets are
// activated. A nil snapshot is ignored.
func (h *Handler) SetLayoutData(ctx context.Context, data *entity.SideBarData, resolver port.WidgetResolver) {
	if data == nil {
		return
	}
	log := logging.FromContext(ctx)

	h.Collapse(ctx)

	for rank, id := range data.Widgets {
		w, ok := resolver.ResolveWidget(ctx, id)
		if !ok {
			log.Warn().
				Str("side", string(h.side)).
				Str("widget_id", string(id)).
				Msg("skipping unknown side bar widget on restore")
			continue
		}
		h.AddWidget(ctx, w, rank)
	}
	for _, id := range data.ActiveWidgets {
		h.Activate(ctx, id)
	}
}

func (h *Handler) find(id entity.WidgetID) layout.Widget {
	index := h.items.IndexFunc(func(w layout.Widget) bool { return w.ID() == id })
	if index < 0 {
		return nil
	}
	return h.items.At(index).Value
}

// onWidgetRemoved drops the rank item and tab of a widget that left the
// stack, whether it was closed, removed or moved elsewhere.
func (h *Handler) onWidgetRemoved(w layout.Widget) {
	index := h.items.IndexFunc(func(candidate layout.Widget) bool { return candidate == w })
	if index >= 0 {
		h.items.RemoveAt(index)
	}
	h.tabs.RemoveTab(w.Title())
	h.refreshVisibility()
}

func (h *Handler) onCurrentTabChanged(change layout.CurrentChange) {
	var current layout.Widget
	if change.CurrentTitle != nil {
		current = change.CurrentTitle.Owner()
	}
	h.stack.ShowOnly(current)
	h.refreshVisibility()
}

// refreshVisibility applies the Collapsed/Expanded state to the strip, the
// stack and the host marker.
func (h *Handler) refreshVisibility() {
	if h.tabs.Len() == 0 {
		h.tabs.Hide()
	} else {
		h.tabs.Show()
	}

	current := h.CurrentWidget()
	if current == nil {
		h.stack.Hide()
		if h.host != nil {
			h.host.ClearMarker(h.side)
		}
		return
	}
	h.stack.Show()
	if h.host != nil {
		h.host.SetMarker(h.side, current.ID())
	}
}
