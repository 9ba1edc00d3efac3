package layout

import (
	"errors"
	"slices"

	"github.com/bnema/workbench/internal/ui/signal"
)

// ErrIndexOutOfBounds is returned when an index is out of range.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// StackPanel manages an ordered stack of widget slots where at most one
// widget is expected to be visible at a time. The owner decides which one.
type StackPanel struct {
	widgets []Widget
	visible bool

	widgetRemoved signal.Signal[Widget]
}

// NewStackPanel creates an empty, visible stack.
func NewStackPanel() *StackPanel {
	return &StackPanel{visible: true}
}

// InsertWidget places w at index (clamped), detaching it from its previous
// container first. Returns the final index.
func (sp *StackPanel) InsertWidget(index int, w Widget) int {
	Detach(w)
	index = max(0, min(index, len(sp.widgets)))
	sp.widgets = slices.Insert(sp.widgets, index, w)
	w.SetParent(sp)
	return index
}

// Detach implements Container.
func (sp *StackPanel) Detach(w Widget) {
	index := sp.IndexOf(w)
	if index < 0 {
		return
	}
	sp.widgets = slices.Delete(sp.widgets, index, index+1)
	w.SetParent(nil)
	sp.widgetRemoved.Emit(w)
}

// IndexOf returns the slot index of w, or -1.
func (sp *StackPanel) IndexOf(w Widget) int {
	return slices.IndexFunc(sp.widgets, func(candidate Widget) bool {
		return candidate == w
	})
}

// WidgetAt returns the widget at index.
func (sp *StackPanel) WidgetAt(index int) (Widget, error) {
	if index < 0 || index >= len(sp.widgets) {
		return nil, ErrIndexOutOfBounds
	}
	return sp.widgets[index], nil
}

// Widgets returns a snapshot of the stacked widgets in slot order.
func (sp *StackPanel) Widgets() []Widget {
	return slices.Clone(sp.widgets)
}

// Len returns the number of slots.
func (sp *StackPanel) Len() int {
	return len(sp.widgets)
}

// ShowOnly shows w and hides every other widget. A nil w hides all.
func (sp *StackPanel) ShowOnly(w Widget) {
	for _, candidate := range sp.widgets {
		if candidate == w {
			candidate.Show()
		} else {
			candidate.Hide()
		}
	}
}

// VisibleCount returns how many stacked widgets are visible.
func (sp *StackPanel) VisibleCount() int {
	count := 0
	for _, w := range sp.widgets {
		if w.IsVisible() {
			count++
		}
	}
	return count
}

// OnWidgetRemoved registers a callback fired after a widget leaves the stack.
func (sp *StackPanel) OnWidgetRemoved(callback func(Widget)) func() {
	return sp.widgetRemoved.Connect(callback)
}

func (sp *StackPanel) Show() { sp.visible = true }

func (sp *StackPanel) Hide() { sp.visible = false }

func (sp *StackPanel) IsVisible() bool { return sp.visible }
