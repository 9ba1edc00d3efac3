package component

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/layout"
)

// Kind names a widget kind. Generated ids are "<kind>:<uuid>".
type Kind string

const (
	KindEditor Kind = "editor"
	KindView   Kind = "view"
)

const idSeparator = ":"

// Factory creates widgets with generated ids and recreates them from
// persisted ids. Every widget it returns is kept in its registry until it
// is closed.
type Factory struct {
	registry *layout.Registry
	saveFunc SaveFunc
}

var _ port.WidgetResolver = (*Factory)(nil)

// NewFactory creates a factory. saveFunc is handed to every editor it creates.
func NewFactory(saveFunc SaveFunc) *Factory {
	return &Factory{registry: layout.NewRegistry(), saveFunc: saveFunc}
}

// NewEditor creates an editor with a generated id.
func (f *Factory) NewEditor(label, content string) *Editor {
	e := NewEditor(NewID(KindEditor), label, content, f.saveFunc)
	f.register(e)
	return e
}

// NewView creates a view with a generated id.
func (f *Factory) NewView(label string) *View {
	v := NewView(NewID(KindView), label)
	f.register(v)
	return v
}

// ResolveWidget implements port.WidgetResolver. Known ids return the live
// widget; unknown ids with a recognized kind prefix are recreated.
func (f *Factory) ResolveWidget(ctx context.Context, id entity.WidgetID) (layout.Widget, bool) {
	if w, ok := f.registry.Lookup(id); ok {
		return w, true
	}

	kind, ok := KindOf(id)
	if !ok {
		logging.FromContext(ctx).Debug().Str("widget_id", string(id)).Msg("no widget kind for id")
		return nil, false
	}

	var w layout.Widget
	switch kind {
	case KindEditor:
		w = NewEditor(id, defaultLabel(kind), "", f.saveFunc)
	case KindView:
		w = NewView(id, defaultLabel(kind))
	default:
		return nil, false
	}
	f.register(w)
	return w, true
}

// register keeps w resolvable until it is closed, so a later restore naming
// a closed id gets a fresh widget.
func (f *Factory) register(w layout.Widget) {
	f.registry.Register(w)
	var disconnect func()
	disconnect = w.OnClose(func(closed layout.Widget) {
		if known, ok := f.registry.Lookup(closed.ID()); ok && known == closed {
			f.registry.Unregister(closed.ID())
		}
		disconnect()
	})
}

// Registry returns the factory's widget registry.
func (f *Factory) Registry() *layout.Registry {
	return f.registry
}

// NewID returns a fresh widget id for kind.
func NewID(kind Kind) entity.WidgetID {
	return entity.WidgetID(string(kind) + idSeparator + uuid.NewString())
}

// KindOf extracts the kind prefix of id.
func KindOf(id entity.WidgetID) (Kind, bool) {
	prefix, rest, found := strings.Cut(string(id), idSeparator)
	if !found || rest == "" {
		return "", false
	}
	switch Kind(prefix) {
	case KindEditor, KindView:
		return Kind(prefix), true
	}
	return "", false
}

func defaultLabel(kind Kind) string {
	return fmt.Sprintf("%s%s", strings.ToUpper(string(kind[:1])), kind[1:])
}
