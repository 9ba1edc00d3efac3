package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/dock"
	"github.com/bnema/workbench/internal/ui/focus"
	"github.com/bnema/workbench/internal/ui/layout"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// dockFixture is a dock area with tracked widgets laid out in tab groups.
type dockFixture struct {
	dock    *dock.Area
	tracker *focus.Tracker
	widgets map[string]*layout.BaseWidget
}

// newDockFixture builds one tab group per entry of groups, left to right.
func newDockFixture(t *testing.T, groups ...[]string) *dockFixture {
	t.Helper()
	f := &dockFixture{
		dock:    dock.New(),
		tracker: focus.NewTracker(),
		widgets: make(map[string]*layout.BaseWidget),
	}
	for gi, ids := range groups {
		for i, id := range ids {
			w := layout.NewBaseWidget(entity.WidgetID(id), id)
			mode := port.DockModeTabAfter
			if gi > 0 && i == 0 {
				mode = port.DockModeSplitRight
			}
			f.dock.AddWidget(w, port.DockOptions{Mode: mode})
			f.tracker.Add(w)
			f.widgets[id] = w
		}
	}
	require.Len(t, f.dock.TabBars(), len(groups))
	return f
}

func (f *dockFixture) activate(id string) {
	f.dock.ActivateWidget(f.widgets[id])
}

// position returns the group and tab index of the current widget.
func (f *dockFixture) position() (int, int) {
	current := f.tracker.CurrentWidget()
	if current == nil {
		return -1, -1
	}
	for gi, group := range f.dock.TabBars() {
		for ti, title := range group.Titles() {
			if title == current.Title() {
				return gi, ti
			}
		}
	}
	return -1, -1
}

func (f *dockFixture) ids() []entity.WidgetID {
	var ids []entity.WidgetID
	for _, w := range f.dock.Widgets() {
		ids = append(ids, w.ID())
	}
	return ids
}
