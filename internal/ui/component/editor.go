// Package component provides the concrete widget kinds placed in the shell.
package component

import (
	"context"
	"sync"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/saveable"
	"github.com/bnema/workbench/internal/ui/layout"
	"github.com/bnema/workbench/internal/ui/signal"
)

// SaveFunc persists an editor's content.
type SaveFunc func(ctx context.Context, id entity.WidgetID, content string) error

// Editor is a document widget holding text content. It becomes dirty when
// its content diverges from the last saved content.
type Editor struct {
	*layout.BaseWidget

	mu       sync.Mutex
	content  string
	saved    string
	saveFunc SaveFunc

	dirtyChanged signal.Signal[bool]
}

var (
	_ layout.Widget     = (*Editor)(nil)
	_ saveable.Document = (*Editor)(nil)
)

// NewEditor creates a clean editor. saveFunc may be nil, in which case Save
// only marks the content as saved.
func NewEditor(id entity.WidgetID, label, content string, saveFunc SaveFunc) *Editor {
	e := &Editor{
		BaseWidget: layout.NewBaseWidget(id, label),
		content:    content,
		saved:      content,
		saveFunc:   saveFunc,
	}
	e.Bind(e)
	return e
}

// Content returns the current text.
func (e *Editor) Content() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content
}

// SetContent replaces the text and emits a dirty change when the dirty state flips.
func (e *Editor) SetContent(content string) {
	e.mu.Lock()
	wasDirty := e.content != e.saved
	e.content = content
	dirty := e.content != e.saved
	e.mu.Unlock()

	if dirty != wasDirty {
		e.dirtyChanged.Emit(dirty)
	}
}

// IsDirty implements saveable.Document.
func (e *Editor) IsDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content != e.saved
}

// Save implements saveable.Document.
func (e *Editor) Save(ctx context.Context) error {
	content := e.Content()
	if e.saveFunc != nil {
		if err := e.saveFunc(ctx, e.ID(), content); err != nil {
			return err
		}
	}

	e.mu.Lock()
	wasDirty := e.content != e.saved
	e.saved = content
	dirty := e.content != e.saved
	e.mu.Unlock()

	if dirty != wasDirty {
		e.dirtyChanged.Emit(dirty)
	}
	return nil
}

// OnDirtyChanged implements saveable.Document.
func (e *Editor) OnDirtyChanged(callback func(dirty bool)) func() {
	return e.dirtyChanged.Connect(callback)
}
