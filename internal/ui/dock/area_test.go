package dock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/dock"
	"github.com/bnema/workbench/internal/ui/layout"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func widgets(ids ...string) []*layout.BaseWidget {
	out := make([]*layout.BaseWidget, 0, len(ids))
	for _, id := range ids {
		out = append(out, layout.NewBaseWidget(entity.WidgetID(id), id))
	}
	return out
}

func ids(ws []layout.Widget) []entity.WidgetID {
	out := make([]entity.WidgetID, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID())
	}
	return out
}

func resolverOf(ws ...*layout.BaseWidget) port.WidgetResolver {
	registry := layout.NewRegistry()
	for _, w := range ws {
		registry.Register(w)
	}
	return registry
}

func TestArea_TabAfterAppendsToCurrentGroup(t *testing.T) {
	area := dock.New()
	ws := widgets("a", "b", "c")
	assert.True(t, area.IsEmpty())

	for _, w := range ws {
		area.AddWidget(w, port.DockOptions{Mode: port.DockModeTabAfter})
	}

	require.Len(t, area.TabBars(), 1)
	assert.Equal(t, []entity.WidgetID{"a", "b", "c"}, ids(area.Widgets()))
	assert.Equal(t, 2, area.TabBars()[0].CurrentIndex())
	assert.True(t, ws[2].IsVisible())
	assert.False(t, ws[0].IsVisible())
	assert.False(t, ws[1].IsVisible())
	assert.Equal(t, area, ws[0].Parent())
}

func TestArea_TabAfterRefInsertsNextToRef(t *testing.T) {
	area := dock.New()
	ws := widgets("a", "b", "c")
	area.AddWidget(ws[0], port.DockOptions{})
	area.AddWidget(ws[1], port.DockOptions{})
	area.AddWidget(ws[2], port.DockOptions{Mode: port.DockModeTabAfter, Ref: ws[0]})

	assert.Equal(t, []entity.WidgetID{"a", "c", "b"}, ids(area.Widgets()))
}

func TestArea_SplitCreatesGroups(t *testing.T) {
	area := dock.New()
	ws := widgets("a", "b", "c")
	area.AddWidget(ws[0], port.DockOptions{})
	area.AddWidget(ws[1], port.DockOptions{Mode: port.DockModeSplitRight})
	area.AddWidget(ws[2], port.DockOptions{Mode: port.DockModeSplitLeft, Ref: ws[0]})

	assert.Len(t, area.TabBars(), 3)
	assert.Equal(t, []entity.WidgetID{"c", "a", "b"}, ids(area.Widgets()))

	saved := area.SaveLayout()
	require.NotNil(t, saved)
	assert.Equal(t, entity.DockNodeSplitArea, saved.Kind)
	assert.Equal(t, entity.OrientationHorizontal, saved.Orientation)
	assert.Len(t, saved.Children, 3, "same-orientation splits are flattened")
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, saved.Sizes, 1e-9)
}

func TestArea_SplitBottomNestsOrientation(t *testing.T) {
	area := dock.New()
	ws := widgets("a", "b", "c")
	area.AddWidget(ws[0], port.DockOptions{})
	area.AddWidget(ws[1], port.DockOptions{Mode: port.DockModeSplitRight})
	area.AddWidget(ws[2], port.DockOptions{Mode: port.DockModeSplitBottom, Ref: ws[1]})

	saved := area.SaveLayout()
	require.Len(t, saved.Children, 2)
	right := saved.Children[1]
	assert.Equal(t, entity.DockNodeSplitArea, right.Kind)
	assert.Equal(t, entity.OrientationVertical, right.Orientation)
	assert.Equal(t, []entity.WidgetID{"b", "c"}, right.WidgetIDs())
}

func TestArea_DetachPrunesEmptyGroups(t *testing.T) {
	area := dock.New()
	ws := widgets("a", "b")
	area.AddWidget(ws[0], port.DockOptions{})
	area.AddWidget(ws[1], port.DockOptions{Mode: port.DockModeSplitRight})

	ws[1].Close()

	assert.Nil(t, ws[1].Parent())
	require.Len(t, area.TabBars(), 1)
	saved := area.SaveLayout()
	assert.Equal(t, entity.DockNodeTabArea, saved.Kind, "single-child split collapses")

	ws[0].Close()
	assert.True(t, area.IsEmpty())
	assert.Nil(t, area.SaveLayout())
}

func TestArea_DetachSelectsAdjacentTab(t *testing.T) {
	area := dock.New()
	ws := widgets("a", "b", "c")
	for _, w := range ws {
		area.AddWidget(w, port.DockOptions{})
	}
	area.ActivateWidget(ws[1])

	area.Detach(ws[1])

	group := area.TabBars()[0]
	assert.Equal(t, 1, group.CurrentIndex())
	assert.Same(t, ws[2].Title(), group.CurrentTitle())
	assert.True(t, ws[2].IsVisible())
	assert.False(t, ws[1].IsVisible())
}

func TestArea_ActivateWidgetSelectsAndRequestsFocus(t *testing.T) {
	area := dock.New()
	ws := widgets("a", "b")
	area.AddWidget(ws[0], port.DockOptions{})
	area.AddWidget(ws[1], port.DockOptions{})

	requested := 0
	ws[0].OnActivateRequest(func(layout.Widget) { requested++ })
	area.ActivateWidget(ws[0])

	assert.Equal(t, 0, area.TabBars()[0].CurrentIndex())
	assert.Equal(t, 1, requested)

	stranger := widgets("x")[0]
	stranger.OnActivateRequest(func(layout.Widget) { requested++ })
	area.ActivateWidget(stranger)
	assert.Equal(t, 1, requested)
}

func TestArea_AddExistingWidgetMoves(t *testing.T) {
	area := dock.New()
	ws := widgets("a", "b")
	area.AddWidget(ws[0], port.DockOptions{})
	area.AddWidget(ws[1], port.DockOptions{})
	area.AddWidget(ws[0], port.DockOptions{Mode: port.DockModeSplitRight})

	assert.Len(t, area.Widgets(), 2)
	assert.Len(t, area.TabBars(), 2)
}

func TestArea_SaveRestoreRoundTrip(t *testing.T) {
	ctx := testCtx()
	area := dock.New()
	ws := widgets("a", "b", "c")
	area.AddWidget(ws[0], port.DockOptions{})
	area.AddWidget(ws[1], port.DockOptions{})
	area.AddWidget(ws[2], port.DockOptions{Mode: port.DockModeSplitBottom})
	area.ActivateWidget(ws[0])
	saved := area.SaveLayout()

	restored := dock.New()
	restored.RestoreLayout(ctx, saved, resolverOf(ws...))

	assert.Equal(t, saved, restored.SaveLayout())
	assert.Equal(t, 0, restored.TabBars()[0].CurrentIndex())
	assert.True(t, ws[0].IsVisible())
	assert.False(t, ws[1].IsVisible())
	assert.Equal(t, restored, ws[0].Parent())
}

func TestArea_RestoreSkipsBadEntries(t *testing.T) {
	ctx := testCtx()
	area := dock.New()
	ws := widgets("a", "b")

	root := &entity.DockNode{
		Kind:        entity.DockNodeSplitArea,
		Orientation: entity.OrientationHorizontal,
		Sizes:       []float64{0.2, 0.3, 0.5},
		Children: []*entity.DockNode{
			entity.NewTabAreaNode(5, "a", "ghost", "a"),
			{Kind: "floating-area", Widgets: []entity.WidgetID{"b"}},
			entity.NewTabAreaNode(0, "missing"),
			entity.NewTabAreaNode(0, "b"),
		},
	}
	area.RestoreLayout(ctx, root, resolverOf(ws...))

	saved := area.SaveLayout()
	require.Len(t, saved.Children, 2)
	assert.Equal(t, []entity.WidgetID{"a"}, saved.Children[0].Widgets)
	assert.Equal(t, 0, saved.Children[0].CurrentIndex, "current index is clamped")
	assert.Equal(t, []entity.WidgetID{"b"}, saved.Children[1].Widgets)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, saved.Sizes, 1e-9)
}

func TestArea_RestoreDetachesPreviousWidgets(t *testing.T) {
	ctx := testCtx()
	area := dock.New()
	ws := widgets("a", "b")
	area.AddWidget(ws[0], port.DockOptions{})
	area.AddWidget(ws[1], port.DockOptions{})

	area.RestoreLayout(ctx, entity.NewTabAreaNode(0, "b"), resolverOf(ws...))

	assert.Nil(t, ws[0].Parent())
	assert.False(t, ws[0].IsVisible())
	assert.Equal(t, []entity.WidgetID{"b"}, ids(area.Widgets()))

	area.RestoreLayout(ctx, nil, resolverOf(ws...))
	assert.True(t, area.IsEmpty())
}
