package port

import "github.com/bnema/workbench/internal/ui/layout"

// FocusChange carries the previous and new widget of a focus transition.
// Either side may be nil.
type FocusChange struct {
	Previous layout.Widget
	Current  layout.Widget
}

// FocusTracker follows which tracked widget is current (most recently
// focused) and which is active (focused now).
type FocusTracker interface {
	Add(w layout.Widget)
	Has(w layout.Widget) bool
	Widgets() []layout.Widget
	CurrentWidget() layout.Widget
	ActiveWidget() layout.Widget
	OnCurrentChanged(callback func(FocusChange)) func()
	OnActiveChanged(callback func(FocusChange)) func()
}
