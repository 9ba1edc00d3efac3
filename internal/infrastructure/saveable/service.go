// Package saveable tracks dirty state of document widgets and saves them.
package saveable

import (
	"context"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/layout"
)

// Document is implemented by widgets with savable content.
type Document interface {
	IsDirty() bool
	Save(ctx context.Context) error
	// OnDirtyChanged registers a callback for dirty state changes.
	OnDirtyChanged(callback func(dirty bool)) func()
}

var _ port.Saveable = (*Service)(nil)

// Service implements port.Saveable. Widgets that are not documents are never
// dirty and save as a no-op. Save may be called from several goroutines at
// once, for different widgets.
type Service struct {
	mu      sync.Mutex
	applied map[layout.Widget]func()
}

// NewService creates a new Service.
func NewService() *Service {
	return &Service{applied: make(map[layout.Widget]func())}
}

// IsDirty implements port.Saveable.
func (s *Service) IsDirty(w layout.Widget) bool {
	doc, ok := w.(Document)
	return ok && doc.IsDirty()
}

// Save implements port.Saveable.
func (s *Service) Save(ctx context.Context, w layout.Widget) error {
	doc, ok := w.(Document)
	if !ok || !doc.IsDirty() {
		return nil
	}
	logging.FromContext(ctx).Debug().Str("widget_id", string(w.ID())).Msg("saving document")
	return doc.Save(ctx)
}

// Apply implements port.Saveable: the widget's title carries the dirty
// class while the document is dirty. Applying twice is a no-op.
func (s *Service) Apply(w layout.Widget) {
	doc, ok := w.(Document)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, done := s.applied[w]; done {
		return
	}

	title := w.Title()
	title.ToggleClass(layout.ClassDirty, doc.IsDirty())
	disconnectDirty := doc.OnDirtyChanged(func(dirty bool) {
		title.ToggleClass(layout.ClassDirty, dirty)
	})
	var disconnectClose func()
	disconnectClose = w.OnClose(func(layout.Widget) {
		s.mu.Lock()
		delete(s.applied, w)
		s.mu.Unlock()
		disconnectDirty()
		disconnectClose()
	})
	s.applied[w] = disconnectDirty
}

// Applied reports whether Apply hooked w.
func (s *Service) Applied(w layout.Widget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.applied[w]
	return ok
}
