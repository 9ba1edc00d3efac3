// Package port defines the collaborator contracts the shell core consumes.
// Implementations live in the ui and infrastructure layers.
package port

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/layout"
)

// TabGroup is one tab strip of the dock area.
type TabGroup interface {
	Titles() []*layout.Title
	CurrentIndex() int
	SetCurrentIndex(index int)
	CurrentTitle() *layout.Title
}

// DockMode selects where AddWidget places a widget.
type DockMode string

const (
	DockModeTabAfter    DockMode = "tab-after"
	DockModeSplitLeft   DockMode = "split-left"
	DockModeSplitRight  DockMode = "split-right"
	DockModeSplitTop    DockMode = "split-top"
	DockModeSplitBottom DockMode = "split-bottom"
)

// DockOptions controls dock placement. Ref is the widget the mode is relative
// to; nil means the current tab group.
type DockOptions struct {
	Mode DockMode
	Ref  layout.Widget
}

// DockArea is the central, user-rearrangeable region. The shell only queries
// its ordering, it never reorders it.
type DockArea interface {
	layout.Container

	Widgets() []layout.Widget
	TabBars() []TabGroup
	ActivateWidget(w layout.Widget)
	AddWidget(w layout.Widget, opts DockOptions)
	IsEmpty() bool
	SaveLayout() *entity.DockNode
	RestoreLayout(ctx context.Context, root *entity.DockNode, resolver WidgetResolver)
}
