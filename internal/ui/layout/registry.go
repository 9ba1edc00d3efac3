package layout

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// Registry remembers widgets by id so persisted layouts can be resolved back
// to live widgets.
type Registry struct {
	widgets map[entity.WidgetID]Widget
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[entity.WidgetID]Widget)}
}

// Register stores w under its id, replacing any previous entry.
func (r *Registry) Register(w Widget) {
	if w == nil || w.ID() == "" {
		return
	}
	r.widgets[w.ID()] = w
}

// Unregister forgets the widget with id.
func (r *Registry) Unregister(id entity.WidgetID) {
	delete(r.widgets, id)
}

// Lookup returns the widget registered under id.
func (r *Registry) Lookup(id entity.WidgetID) (Widget, bool) {
	w, ok := r.widgets[id]
	return w, ok
}

// ResolveWidget implements port.WidgetResolver.
func (r *Registry) ResolveWidget(_ context.Context, id entity.WidgetID) (Widget, bool) {
	return r.Lookup(id)
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	return len(r.widgets)
}
