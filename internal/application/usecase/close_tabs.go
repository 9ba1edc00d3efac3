package usecase

import (
	"context"

	"github.com/bnema/workbench/internal/logging"
)

// CloseTabsUseCase closes tabs of the current tab group.
type CloseTabsUseCase struct {
	navigator *NavigateTabsUseCase
}

// NewCloseTabsUseCase creates a new CloseTabsUseCase.
func NewCloseTabsUseCase(navigator *NavigateTabsUseCase) *CloseTabsUseCase {
	return &CloseTabsUseCase{navigator: navigator}
}

// CloseTab closes the current tab. Returns the number of widgets closed.
func (uc *CloseTabsUseCase) CloseTab(ctx context.Context) int {
	group := uc.navigator.CurrentTabGroup(ctx)
	if group == nil {
		return 0
	}
	title := group.CurrentTitle()
	if title == nil {
		return 0
	}
	title.Owner().Close()
	return 1
}

// CloseOtherTabs closes every tab of the current group except the current one.
func (uc *CloseTabsUseCase) CloseOtherTabs(ctx context.Context) int {
	group := uc.navigator.CurrentTabGroup(ctx)
	if group == nil {
		return 0
	}
	current := group.CurrentTitle()
	if current == nil {
		return 0
	}

	// Closing mutates the group, iterate a snapshot.
	closed := 0
	for _, w := range owners(group.Titles()) {
		if w.Title() == current {
			continue
		}
		w.Close()
		closed++
	}
	logging.FromContext(ctx).Debug().Int("closed", closed).Msg("closed other tabs")
	return closed
}

// CloseAllTabs closes the first tab of the current group until it is empty.
// It stops early if a close leaves the group size unchanged.
func (uc *CloseTabsUseCase) CloseAllTabs(ctx context.Context) int {
	group := uc.navigator.CurrentTabGroup(ctx)
	if group == nil {
		return 0
	}

	closed := 0
	for {
		titles := group.Titles()
		if len(titles) == 0 {
			break
		}
		titles[0].Owner().Close()
		closed++
		if len(group.Titles()) >= len(titles) {
			logging.FromContext(ctx).Warn().
				Str("widget_id", string(titles[0].Owner().ID())).
				Msg("tab did not close, stopping close-all")
			break
		}
	}
	return closed
}

// CloseRightTabs closes every tab to the right of the current one.
func (uc *CloseTabsUseCase) CloseRightTabs(ctx context.Context) int {
	group := uc.navigator.CurrentTabGroup(ctx)
	if group == nil {
		return 0
	}
	ci := group.CurrentIndex()
	titles := group.Titles()
	if ci < 0 || ci >= len(titles) {
		return 0
	}

	closed := 0
	for _, w := range owners(titles[ci+1:]) {
		w.Close()
		closed++
	}
	logging.FromContext(ctx).Debug().Int("closed", closed).Msg("closed tabs to the right")
	return closed
}
