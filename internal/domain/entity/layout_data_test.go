package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
)

func TestDockNode_WidgetIDsInTreeOrder(t *testing.T) {
	root := entity.NewSplitAreaNode(entity.OrientationHorizontal,
		entity.NewTabAreaNode(0, "a", "b"),
		entity.NewSplitAreaNode(entity.OrientationVertical,
			entity.NewTabAreaNode(0, "c"),
			entity.NewTabAreaNode(0, "d", "e"),
		),
	)

	assert.Equal(t, []entity.WidgetID{"a", "b", "c", "d", "e"}, root.WidgetIDs())
}

func TestDockNode_WalkSkipsNilAndUnknown(t *testing.T) {
	root := &entity.DockNode{
		Kind: entity.DockNodeSplitArea,
		Children: []*entity.DockNode{
			nil,
			{Kind: "floating-area", Widgets: []entity.WidgetID{"ghost"}},
			entity.NewTabAreaNode(0, "real"),
		},
	}

	assert.Equal(t, []entity.WidgetID{"real"}, root.WidgetIDs())

	var nilNode *entity.DockNode
	assert.Empty(t, nilNode.WidgetIDs())
}

func TestDockNode_WalkStopsEarly(t *testing.T) {
	root := entity.NewSplitAreaNode(entity.OrientationHorizontal,
		entity.NewTabAreaNode(0, "a"),
		entity.NewTabAreaNode(0, "b"),
	)

	visited := 0
	completed := root.Walk(func(n *entity.DockNode) bool {
		visited++
		return n.Kind != entity.DockNodeTabArea
	})

	assert.False(t, completed)
	assert.Equal(t, 2, visited)
}

func TestNewSplitAreaNode_EqualSizes(t *testing.T) {
	node := entity.NewSplitAreaNode(entity.OrientationVertical,
		entity.NewTabAreaNode(0, "a"),
		entity.NewTabAreaNode(0, "b"),
		entity.NewTabAreaNode(0, "c"),
		entity.NewTabAreaNode(0, "d"),
	)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, node.Sizes)
}

func TestLayoutData_CountWidgets(t *testing.T) {
	data := &entity.LayoutData{
		MainArea: &entity.DockLayoutData{Main: entity.NewTabAreaNode(0, "a", "b")},
		LeftBar:  &entity.SideBarData{Widgets: []entity.WidgetID{"l"}},
	}
	assert.Equal(t, 3, data.CountWidgets())

	var empty *entity.LayoutData
	assert.Zero(t, empty.CountWidgets())
}

func TestLayoutData_JSONShape(t *testing.T) {
	data := &entity.LayoutData{
		Version: entity.LayoutDataVersion,
		MainArea: &entity.DockLayoutData{
			Main:          entity.NewTabAreaNode(1, "a", "b"),
			ActiveWidgets: []entity.WidgetID{"b"},
		},
		StatusBar: json.RawMessage(`{"hidden":true}`),
	}

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.EqualValues(t, 1, generic["version"])
	assert.Contains(t, generic, "main_area")
	assert.NotContains(t, generic, "left_bar")

	main := generic["main_area"].(map[string]any)["main"].(map[string]any)
	assert.Equal(t, "tab-area", main["kind"])
	assert.Equal(t, map[string]any{"hidden": true}, generic["status_bar"])
}
