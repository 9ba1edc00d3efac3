// Package layout provides the widget capability interface and the container
// primitives (tab strip, widget stack, box panel) the shell is assembled from.
// Nothing here renders; containers only track placement, order and visibility.
package layout

import (
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/signal"
)

// Title classes toggled by the shell and its collaborators.
const (
	ClassCurrent = "mod-current"
	ClassActive  = "mod-active"
	ClassDirty   = "mod-dirty"
)

// Container is anything that can hold widgets. Detach removes w and must
// clear its parent.
type Container interface {
	Detach(w Widget)
}

// Widget is the capability set every placeable widget exposes.
// Concrete widget kinds usually embed *BaseWidget.
type Widget interface {
	ID() entity.WidgetID
	Title() *Title

	// Visibility
	Show()
	Hide()
	IsVisible() bool

	// Activate requests keyboard focus for the widget.
	Activate()
	// Close removes the widget from its container and notifies OnClose subscribers.
	Close()

	// Parent management
	Parent() Container
	SetParent(parent Container)

	// Signals
	OnActivateRequest(callback func(Widget)) func()
	OnClose(callback func(Widget)) func()
}

// Detach removes w from its current container, if any.
func Detach(w Widget) {
	if w == nil {
		return
	}
	if parent := w.Parent(); parent != nil {
		parent.Detach(w)
	}
}

// BaseWidget implements Widget. Embedders call Bind with their own value so
// containers and titles see the outer type.
type BaseWidget struct {
	id      entity.WidgetID
	title   *Title
	visible bool
	parent  Container
	self    Widget

	activateRequested signal.Signal[Widget]
	closed            signal.Signal[Widget]
}

// NewBaseWidget creates a visible widget with the given id and title label.
func NewBaseWidget(id entity.WidgetID, label string) *BaseWidget {
	b := &BaseWidget{id: id, visible: true}
	b.self = b
	b.title = NewTitle(b, label)
	return b
}

// Bind makes self the identity reported to containers and title owners.
func (b *BaseWidget) Bind(self Widget) {
	b.self = self
	b.title.owner = self
}

func (b *BaseWidget) ID() entity.WidgetID { return b.id }

func (b *BaseWidget) Title() *Title { return b.title }

func (b *BaseWidget) Show() { b.visible = true }

func (b *BaseWidget) Hide() { b.visible = false }

func (b *BaseWidget) IsVisible() bool { return b.visible }

func (b *BaseWidget) Parent() Container { return b.parent }

func (b *BaseWidget) SetParent(parent Container) { b.parent = parent }

// Activate emits an activate request; the focus tracker turns it into focus.
func (b *BaseWidget) Activate() {
	b.activateRequested.Emit(b.self)
}

// Close detaches the widget then notifies close subscribers.
func (b *BaseWidget) Close() {
	Detach(b.self)
	b.closed.Emit(b.self)
}

func (b *BaseWidget) OnActivateRequest(callback func(Widget)) func() {
	return b.activateRequested.Connect(callback)
}

func (b *BaseWidget) OnClose(callback func(Widget)) func() {
	return b.closed.Connect(callback)
}
