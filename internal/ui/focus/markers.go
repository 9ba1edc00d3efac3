package focus

import (
	"context"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/layout"
)

// MarkerManager moves a title class from the previously focused widget to
// the newly focused one.
type MarkerManager struct {
	class string
}

// NewMarkerManager creates a manager for class.
func NewMarkerManager(class string) *MarkerManager {
	return &MarkerManager{class: class}
}

// Class returns the managed title class.
func (mm *MarkerManager) Class() string {
	return mm.class
}

// OnFocusChange removes the class from the previous widget's title and adds
// it to the current one. Both operations are idempotent.
func (mm *MarkerManager) OnFocusChange(ctx context.Context, change port.FocusChange) {
	log := logging.FromContext(ctx)

	if change.Previous != nil {
		change.Previous.Title().RemoveClass(mm.class)
	}
	if change.Current != nil {
		change.Current.Title().AddClass(mm.class)
	}

	if e := log.Trace(); e.Enabled() {
		e.Str("class", mm.class).
			Str("from", widgetID(change.Previous)).
			Str("to", widgetID(change.Current)).
			Msg("focus marker moved")
	}
}

func widgetID(w layout.Widget) string {
	if w == nil {
		return ""
	}
	return string(w.ID())
}
