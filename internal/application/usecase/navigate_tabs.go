package usecase

import (
	"context"
	"slices"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/layout"
)

// NavigateTabsUseCase cycles through the dock area's tabs. It keeps no
// state: the current tab group is derived from the focus tracker on every
// call and the group order is whatever the dock enumerates at that moment.
type NavigateTabsUseCase struct {
	dock    port.DockArea
	tracker port.FocusTracker
}

// NewNavigateTabsUseCase creates a new NavigateTabsUseCase.
func NewNavigateTabsUseCase(dock port.DockArea, tracker port.FocusTracker) *NavigateTabsUseCase {
	return &NavigateTabsUseCase{dock: dock, tracker: tracker}
}

// CurrentTabGroup returns the tab group holding the current widget's title,
// or nil when there is no current widget or it is not docked.
func (uc *NavigateTabsUseCase) CurrentTabGroup(_ context.Context) port.TabGroup {
	group, _ := uc.currentGroup()
	return group
}

// HasSelectedTab reports whether a current tab group with a valid current
// index exists.
func (uc *NavigateTabsUseCase) HasSelectedTab(_ context.Context) bool {
	group, _ := uc.currentGroup()
	return group != nil && validIndex(group, group.CurrentIndex())
}

// ActivateNext moves to the next tab, wrapping to the first tab of the next
// group (and from the last group to the first). Returns false when nothing
// is selected.
func (uc *NavigateTabsUseCase) ActivateNext(ctx context.Context) bool {
	group, groups := uc.currentGroup()
	if group == nil {
		return false
	}
	ci := group.CurrentIndex()
	if !validIndex(group, ci) {
		return false
	}

	if ci < len(group.Titles())-1 {
		return uc.selectAndActivate(ctx, group, ci+1)
	}

	next := groups[(indexOfGroup(groups, group)+1)%len(groups)]
	return uc.selectAndActivate(ctx, next, 0)
}

// ActivatePrevious moves to the previous tab, wrapping to the last tab of
// the previous group (and from the first group to the last). Returns false
// when nothing is selected.
func (uc *NavigateTabsUseCase) ActivatePrevious(ctx context.Context) bool {
	group, groups := uc.currentGroup()
	if group == nil {
		return false
	}
	ci := group.CurrentIndex()
	if !validIndex(group, ci) {
		return false
	}

	if ci > 0 {
		return uc.selectAndActivate(ctx, group, ci-1)
	}

	gi := indexOfGroup(groups, group)
	prev := groups[(gi-1+len(groups))%len(groups)]
	return uc.selectAndActivate(ctx, prev, len(prev.Titles())-1)
}

func (uc *NavigateTabsUseCase) selectAndActivate(ctx context.Context, group port.TabGroup, index int) bool {
	if !validIndex(group, index) {
		return false
	}
	group.SetCurrentIndex(index)
	title := group.CurrentTitle()
	if title == nil {
		return false
	}
	logging.FromContext(ctx).Debug().
		Str("widget_id", string(title.Owner().ID())).
		Int("index", index).
		Msg("tab navigation")
	uc.dock.ActivateWidget(title.Owner())
	return true
}

// currentGroup returns the current tab group and the group enumeration it
// was found in.
func (uc *NavigateTabsUseCase) currentGroup() (port.TabGroup, []port.TabGroup) {
	current := uc.tracker.CurrentWidget()
	if current == nil {
		return nil, nil
	}
	groups := uc.dock.TabBars()
	for _, group := range groups {
		if slices.Contains(group.Titles(), current.Title()) {
			return group, groups
		}
	}
	return nil, nil
}

func validIndex(group port.TabGroup, index int) bool {
	return index >= 0 && index < len(group.Titles())
}

func indexOfGroup(groups []port.TabGroup, group port.TabGroup) int {
	return slices.IndexFunc(groups, func(candidate port.TabGroup) bool { return candidate == group })
}

// owners returns the widgets behind titles.
func owners(titles []*layout.Title) []layout.Widget {
	widgets := make([]layout.Widget, 0, len(titles))
	for _, title := range titles {
		widgets = append(widgets, title.Owner())
	}
	return widgets
}
