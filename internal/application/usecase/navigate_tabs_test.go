package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/workbench/internal/application/usecase"
)

type tabPos struct{ group, tab int }

func TestNavigateTabsUseCase_ActivateNextWrapsAcrossGroups(t *testing.T) {
	ctx := testContext()
	f := newDockFixture(t, []string{"a", "b", "c"}, []string{"d", "e"})
	uc := usecase.NewNavigateTabsUseCase(f.dock, f.tracker)
	f.activate("b")

	var visited []tabPos
	for range 4 {
		assert.True(t, uc.ActivateNext(ctx))
		g, i := f.position()
		visited = append(visited, tabPos{g, i})
	}

	assert.Equal(t, []tabPos{{0, 2}, {1, 0}, {1, 1}, {0, 0}}, visited)
	assert.Same(t, f.widgets["a"], f.tracker.ActiveWidget())
}

func TestNavigateTabsUseCase_FullCycleFromFirstTab(t *testing.T) {
	ctx := testContext()
	f := newDockFixture(t, []string{"a", "b", "c"}, []string{"d", "e"})
	uc := usecase.NewNavigateTabsUseCase(f.dock, f.tracker)
	f.activate("a")

	g, i := f.position()
	assert.Equal(t, tabPos{0, 0}, tabPos{g, i})

	var visited []tabPos
	for range 5 {
		assert.True(t, uc.ActivateNext(ctx))
		g, i := f.position()
		visited = append(visited, tabPos{g, i})
	}

	assert.Equal(t, []tabPos{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {0, 0}}, visited)
	assert.Same(t, f.widgets["a"], f.tracker.CurrentWidget())
}

func TestNavigateTabsUseCase_ActivatePreviousWrapsAcrossGroups(t *testing.T) {
	ctx := testContext()
	f := newDockFixture(t, []string{"a", "b", "c"}, []string{"d", "e"})
	uc := usecase.NewNavigateTabsUseCase(f.dock, f.tracker)
	f.activate("a")

	var visited []tabPos
	for range 3 {
		assert.True(t, uc.ActivatePrevious(ctx))
		g, i := f.position()
		visited = append(visited, tabPos{g, i})
	}

	assert.Equal(t, []tabPos{{1, 1}, {1, 0}, {0, 2}}, visited)
}

func TestNavigateTabsUseCase_SingleGroupWraps(t *testing.T) {
	ctx := testContext()
	f := newDockFixture(t, []string{"a", "b"})
	uc := usecase.NewNavigateTabsUseCase(f.dock, f.tracker)
	f.activate("b")

	assert.True(t, uc.ActivateNext(ctx))
	g, i := f.position()
	assert.Equal(t, tabPos{0, 0}, tabPos{g, i})

	assert.True(t, uc.ActivatePrevious(ctx))
	g, i = f.position()
	assert.Equal(t, tabPos{0, 1}, tabPos{g, i})
}

func TestNavigateTabsUseCase_NoSelection(t *testing.T) {
	ctx := testContext()
	f := newDockFixture(t, []string{"a", "b"})
	uc := usecase.NewNavigateTabsUseCase(f.dock, f.tracker)

	assert.Nil(t, uc.CurrentTabGroup(ctx))
	assert.False(t, uc.HasSelectedTab(ctx))
	assert.False(t, uc.ActivateNext(ctx))
	assert.False(t, uc.ActivatePrevious(ctx))
}

func TestNavigateTabsUseCase_CurrentWidgetOutsideDock(t *testing.T) {
	ctx := testContext()
	f := newDockFixture(t, []string{"a"})
	uc := usecase.NewNavigateTabsUseCase(f.dock, f.tracker)
	f.activate("a")
	assert.True(t, uc.HasSelectedTab(ctx))

	// Detached but still tracked: the current widget has no tab group.
	f.dock.Detach(f.widgets["a"])

	assert.Same(t, f.widgets["a"], f.tracker.CurrentWidget())
	assert.Nil(t, uc.CurrentTabGroup(ctx))
	assert.False(t, uc.ActivateNext(ctx))
}
