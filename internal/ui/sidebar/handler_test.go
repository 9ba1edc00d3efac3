package sidebar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/port"
	portmocks "github.com/bnema/workbench/internal/application/port/mocks"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/host"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/layout"
	"github.com/bnema/workbench/internal/ui/sidebar"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newWidget(id string) *layout.BaseWidget {
	return layout.NewBaseWidget(entity.WidgetID(id), id)
}

func ids(widgets []layout.Widget) []entity.WidgetID {
	out := make([]entity.WidgetID, 0, len(widgets))
	for _, w := range widgets {
		out = append(out, w.ID())
	}
	return out
}

func TestHandler_StartsCollapsed(t *testing.T) {
	attrs := host.NewAttributes()
	h := sidebar.NewHandler(entity.SideLeft, attrs)

	assert.False(t, h.IsExpanded())
	assert.False(t, h.TabStripVisible())
	assert.False(t, h.StackVisible())
	_, marked := attrs.Marker(entity.SideLeft)
	assert.False(t, marked)
}

func TestHandler_AddWidgetOrdersByRank(t *testing.T) {
	ctx := testCtx()
	h := sidebar.NewHandler(entity.SideLeft, host.NewAttributes())

	h.AddWidget(ctx, newWidget("fifty"), 50)
	h.AddWidget(ctx, newWidget("ten"), 10)
	h.AddWidget(ctx, newWidget("thirty"), 30)

	assert.Equal(t, []entity.WidgetID{"ten", "thirty", "fifty"}, ids(h.Widgets()))
	assert.Equal(t, []int{10, 30, 50}, h.Ranks())

	// Tabs and stack slots follow the same order.
	titles := h.Titles()
	require.Len(t, titles, 3)
	for i, w := range h.Widgets() {
		assert.Same(t, w.Title(), titles[i])
	}
	assert.True(t, h.TabStripVisible())
	assert.False(t, h.IsExpanded(), "adding does not expand")
}

func TestHandler_EqualRankIsStable(t *testing.T) {
	ctx := testCtx()
	h := sidebar.NewHandler(entity.SideRight, host.NewAttributes())

	h.AddWidget(ctx, newWidget("a"), entity.DefaultRank)
	h.AddWidget(ctx, newWidget("b"), entity.DefaultRank)
	h.AddWidget(ctx, newWidget("c"), entity.DefaultRank)

	assert.Equal(t, []entity.WidgetID{"a", "b", "c"}, ids(h.Widgets()))
}

func TestHandler_ReAddRelocates(t *testing.T) {
	ctx := testCtx()
	h := sidebar.NewHandler(entity.SideLeft, host.NewAttributes())
	a := newWidget("a")

	h.AddWidget(ctx, a, 10)
	h.AddWidget(ctx, newWidget("b"), 20)
	h.AddWidget(ctx, a, 30)

	assert.Equal(t, []entity.WidgetID{"b", "a"}, ids(h.Widgets()))
	assert.Equal(t, []int{20, 30}, h.Ranks())
	assert.Len(t, h.Titles(), 2)
}

func TestHandler_ActivateExpandsAndMarks(t *testing.T) {
	ctx := testCtx()
	attrs := host.NewAttributes()
	h := sidebar.NewHandler(entity.SideLeft, attrs)
	a, b := newWidget("a"), newWidget("b")
	h.AddWidget(ctx, a, 1)
	h.AddWidget(ctx, b, 2)

	var activated layout.Widget
	b.OnActivateRequest(func(w layout.Widget) { activated = w })

	got, ok := h.Activate(ctx, "b")

	require.True(t, ok)
	assert.Same(t, b, got)
	assert.Same(t, b, activated)
	assert.True(t, h.IsExpanded())
	assert.True(t, h.StackVisible())
	assert.Equal(t, 1, h.VisibleWidgetCount())
	assert.True(t, b.IsVisible())
	assert.False(t, a.IsVisible())

	marker, ok := attrs.Marker(entity.SideLeft)
	require.True(t, ok)
	assert.Equal(t, entity.WidgetID("b"), marker)
}

func TestHandler_ActivateAlwaysShowsOneSlot(t *testing.T) {
	ctx := testCtx()
	h := sidebar.NewHandler(entity.SideLeft, host.NewAttributes())
	for _, id := range []string{"a", "b", "c"} {
		h.AddWidget(ctx, newWidget(id), entity.DefaultRank)
	}

	for _, id := range []entity.WidgetID{"a", "c", "b", "b"} {
		_, ok := h.Activate(ctx, id)
		require.True(t, ok)
		assert.Equal(t, 1, h.VisibleWidgetCount(), "after activating %s", id)
		assert.Equal(t, id, h.CurrentWidget().ID())
	}
}

func TestHandler_ActivateUnknownIsNoop(t *testing.T) {
	ctx := testCtx()
	h := sidebar.NewHandler(entity.SideLeft, host.NewAttributes())
	h.AddWidget(ctx, newWidget("a"), 1)

	got, ok := h.Activate(ctx, "missing")

	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, h.IsExpanded())
}

func TestHandler_CollapseAfterActivate(t *testing.T) {
	ctx := testCtx()
	hostEnv := portmocks.NewMockHostEnvironment(t)
	hostEnv.EXPECT().ClearMarker(entity.SideLeft).Return()
	hostEnv.EXPECT().SetMarker(entity.SideLeft, entity.WidgetID("a")).Return().Once()

	h := sidebar.NewHandler(entity.SideLeft, hostEnv)
	h.AddWidget(ctx, newWidget("a"), 1)
	h.Activate(ctx, "a")

	h.Collapse(ctx)

	assert.False(t, h.IsExpanded())
	assert.False(t, h.StackVisible())
	assert.Zero(t, h.VisibleWidgetCount())
	assert.True(t, h.TabStripVisible(), "tabs stay visible while widgets remain")
	hostEnv.AssertCalled(t, "ClearMarker", entity.SideLeft)
}

func TestHandler_SelectTabTogglesCurrent(t *testing.T) {
	ctx := testCtx()
	h := sidebar.NewHandler(entity.SideLeft, host.NewAttributes())
	h.AddWidget(ctx, newWidget("a"), 1)
	h.AddWidget(ctx, newWidget("b"), 2)

	h.SelectTab(ctx, 1)
	assert.Equal(t, entity.WidgetID("b"), h.CurrentWidget().ID())

	h.SelectTab(ctx, 1)
	assert.False(t, h.IsExpanded())

	h.SelectTab(ctx, 9)
	assert.False(t, h.IsExpanded())
}

func TestHandler_ClosingCurrentWidgetCollapses(t *testing.T) {
	ctx := testCtx()
	attrs := host.NewAttributes()
	h := sidebar.NewHandler(entity.SideLeft, attrs)
	a := newWidget("a")
	h.AddWidget(ctx, a, 1)
	h.AddWidget(ctx, newWidget("b"), 2)
	h.Activate(ctx, "a")

	a.Close()

	assert.Equal(t, []entity.WidgetID{"b"}, ids(h.Widgets()))
	assert.Len(t, h.Titles(), 1)
	assert.False(t, h.IsExpanded())
	_, marked := attrs.Marker(entity.SideLeft)
	assert.False(t, marked)
}

func TestHandler_LastWidgetGoneHidesTabStrip(t *testing.T) {
	ctx := testCtx()
	h := sidebar.NewHandler(entity.SideRight, host.NewAttributes())
	h.AddWidget(ctx, newWidget("a"), 1)

	require.True(t, h.RemoveWidget(ctx, "a"))

	assert.Zero(t, h.Len())
	assert.False(t, h.TabStripVisible())
	assert.False(t, h.RemoveWidget(ctx, "a"))
}

func TestHandler_MovingWidgetAwayUpdatesBookkeeping(t *testing.T) {
	ctx := testCtx()
	left := sidebar.NewHandler(entity.SideLeft, host.NewAttributes())
	right := sidebar.NewHandler(entity.SideRight, host.NewAttributes())
	a := newWidget("a")
	left.AddWidget(ctx, a, 1)

	right.AddWidget(ctx, a, 1)

	assert.Zero(t, left.Len())
	assert.Empty(t, left.Titles())
	assert.True(t, right.Contains(a))
}

func TestHandler_LayoutDataRoundTrip(t *testing.T) {
	ctx := testCtx()
	registry := layout.NewRegistry()
	h := sidebar.NewHandler(entity.SideLeft, host.NewAttributes())
	for id, rank := range map[string]int{"explorer": 10, "search": 20, "git": 30} {
		w := newWidget(id)
		registry.Register(w)
		h.AddWidget(ctx, w, rank)
	}
	h.Activate(ctx, "search")

	data := h.LayoutData()
	assert.Equal(t, []entity.WidgetID{"explorer", "search", "git"}, data.Widgets)
	assert.Equal(t, []entity.WidgetID{"search"}, data.ActiveWidgets)

	restored := sidebar.NewHandler(entity.SideLeft, host.NewAttributes())
	restored.SetLayoutData(ctx, data, registry)

	assert.Equal(t, data.Widgets, ids(restored.Widgets()))
	assert.Equal(t, []int{0, 1, 2}, restored.Ranks())
	assert.Equal(t, entity.WidgetID("search"), restored.CurrentWidget().ID())
	assert.Zero(t, h.Len(), "widgets moved to the restored handler")
}

func TestHandler_SetLayoutDataSkipsUnknownAndNil(t *testing.T) {
	ctx := testCtx()
	registry := layout.NewRegistry()
	registry.Register(newWidget("known"))
	h := sidebar.NewHandler(entity.SideLeft, host.NewAttributes())

	h.SetLayoutData(ctx, nil, registry)
	assert.Zero(t, h.Len())

	h.SetLayoutData(ctx, &entity.SideBarData{
		Widgets:       []entity.WidgetID{"ghost", "known"},
		ActiveWidgets: []entity.WidgetID{"ghost"},
	}, port.WidgetResolver(registry))

	assert.Equal(t, []entity.WidgetID{"known"}, ids(h.Widgets()))
	assert.False(t, h.IsExpanded())
}

func TestHandler_CollapsedLayoutDataHasNoActive(t *testing.T) {
	ctx := testCtx()
	h := sidebar.NewHandler(entity.SideLeft, nil)
	h.AddWidget(ctx, newWidget("a"), 1)

	assert.Empty(t, h.LayoutData().ActiveWidgets)
}
