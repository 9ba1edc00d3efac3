// Package focus tracks which widget holds focus, re-registers restored
// layouts with the tracker and mirrors focus onto title markers.
package focus

import (
	"slices"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/ui/layout"
	"github.com/bnema/workbench/internal/ui/signal"
)

type tracked struct {
	widget      layout.Widget
	focusNumber int
	disconnect  []func()
}

// Tracker follows focus across a set of tracked widgets.
//
// The current widget is the most recently focused one and survives Blur.
// The active widget is the one holding focus right now.
type Tracker struct {
	entries []*tracked
	counter int
	current layout.Widget
	active  layout.Widget

	currentChanged signal.Signal[port.FocusChange]
	activeChanged  signal.Signal[port.FocusChange]
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Add starts tracking w. Activate requests on w focus it; closing w stops
// tracking it. Adding a tracked widget is a no-op.
func (t *Tracker) Add(w layout.Widget) {
	if w == nil || t.Has(w) {
		return
	}
	entry := &tracked{widget: w, focusNumber: -1}
	entry.disconnect = []func(){
		w.OnActivateRequest(func(layout.Widget) { t.Focus(w) }),
		w.OnClose(func(layout.Widget) { t.Remove(w) }),
	}
	t.entries = append(t.entries, entry)
}

// Remove stops tracking w. If w was current, the most recently focused
// remaining widget becomes current; if it was active, nothing is active.
func (t *Tracker) Remove(w layout.Widget) {
	index := t.indexOf(w)
	if index < 0 {
		return
	}
	entry := t.entries[index]
	for _, disconnect := range entry.disconnect {
		disconnect()
	}
	t.entries = slices.Delete(t.entries, index, index+1)

	current := t.current
	if current == w {
		current = t.mostRecent()
	}
	active := t.active
	if active == w {
		active = nil
	}
	t.setWidgets(current, active)
}

// Focus makes w both current and active. Untracked widgets are ignored.
func (t *Tracker) Focus(w layout.Widget) {
	index := t.indexOf(w)
	if index < 0 {
		return
	}
	t.counter++
	t.entries[index].focusNumber = t.counter
	t.setWidgets(w, w)
}

// Blur drops keyboard focus; the current widget is kept.
func (t *Tracker) Blur() {
	t.setWidgets(t.current, nil)
}

// Has reports whether w is tracked.
func (t *Tracker) Has(w layout.Widget) bool {
	return t.indexOf(w) >= 0
}

// Widgets returns the tracked widgets in tracking order.
func (t *Tracker) Widgets() []layout.Widget {
	widgets := make([]layout.Widget, 0, len(t.entries))
	for _, entry := range t.entries {
		widgets = append(widgets, entry.widget)
	}
	return widgets
}

// CurrentWidget returns the most recently focused widget, or nil.
func (t *Tracker) CurrentWidget() layout.Widget {
	return t.current
}

// ActiveWidget returns the widget holding focus, or nil.
func (t *Tracker) ActiveWidget() layout.Widget {
	return t.active
}

// FocusNumber returns the focus order of w, or -1 if it was never focused.
func (t *Tracker) FocusNumber(w layout.Widget) int {
	index := t.indexOf(w)
	if index < 0 {
		return -1
	}
	return t.entries[index].focusNumber
}

// OnCurrentChanged registers a callback for current widget changes.
func (t *Tracker) OnCurrentChanged(callback func(port.FocusChange)) func() {
	return t.currentChanged.Connect(callback)
}

// OnActiveChanged registers a callback for active widget changes.
func (t *Tracker) OnActiveChanged(callback func(port.FocusChange)) func() {
	return t.activeChanged.Connect(callback)
}

func (t *Tracker) setWidgets(current, active layout.Widget) {
	oldCurrent := t.current
	oldActive := t.active
	t.current = current
	t.active = active

	if oldCurrent != current {
		t.currentChanged.Emit(port.FocusChange{Previous: oldCurrent, Current: current})
	}
	if oldActive != active {
		t.activeChanged.Emit(port.FocusChange{Previous: oldActive, Current: active})
	}
}

func (t *Tracker) mostRecent() layout.Widget {
	var best *tracked
	for _, entry := range t.entries {
		if entry.focusNumber < 0 {
			continue
		}
		if best == nil || entry.focusNumber > best.focusNumber {
			best = entry
		}
	}
	if best == nil {
		return nil
	}
	return best.widget
}

func (t *Tracker) indexOf(w layout.Widget) int {
	if w == nil {
		return -1
	}
	return slices.IndexFunc(t.entries, func(entry *tracked) bool { return entry.widget == w })
}
