package styles

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/workbench/internal/domain/entity"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"zero", time.Time{}, "never"},
		{"seconds", now.Add(-10 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
		{"old", now.Add(-30 * 24 * time.Hour), "2026-02-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relativeTime(tt.at, now))
		})
	}
}

func TestLayoutRenderer_RenderList(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())
	now := time.Now()

	assert.Contains(t, r.RenderList(nil, now), "No saved layouts")

	out := r.RenderList([]entity.LayoutInfo{
		{Name: "default", Version: entity.LayoutDataVersion, WidgetCount: 4, UpdatedAt: now},
		{Name: "future", Version: entity.LayoutDataVersion + 1, WidgetCount: 1, UpdatedAt: now},
	}, now)

	assert.Contains(t, out, "Layouts (2)")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "4 widgets")
	assert.Contains(t, out, "v2")
}

func TestLayoutRenderer_RenderLayout(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())
	data := &entity.LayoutData{
		Version: entity.LayoutDataVersion,
		MainArea: &entity.DockLayoutData{
			Main: entity.NewSplitAreaNode(entity.OrientationHorizontal,
				entity.NewTabAreaNode(0, "editor:a", "editor:b"),
				entity.NewTabAreaNode(0, "view:c"),
			),
			ActiveWidgets: []entity.WidgetID{"editor:b"},
		},
		LeftBar:   &entity.SideBarData{Widgets: []entity.WidgetID{"view:explorer"}},
		StatusBar: []byte(`{"hidden":true}`),
	}

	out := r.RenderLayout("default", data)

	assert.Contains(t, out, "default")
	assert.Contains(t, out, "left")
	assert.Contains(t, out, "view:explorer")
	assert.Contains(t, out, "split horizontal")
	assert.Contains(t, out, "50% 50%")
	assert.Contains(t, out, "editor:a")
	assert.Contains(t, out, "view:c")
	assert.Contains(t, out, "status bar")
	assert.NotContains(t, out, "right")
}

func TestLayoutRenderer_EmptyMainAndUnknownNode(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())

	out := r.RenderLayout("empty", &entity.LayoutData{Version: 1})
	assert.Contains(t, out, "(empty)")

	out = r.RenderLayout("odd", &entity.LayoutData{
		Version:  1,
		MainArea: &entity.DockLayoutData{Main: &entity.DockNode{Kind: "floating-area"}},
	})
	assert.Contains(t, out, "unknown node")
}

func TestLayoutRenderer_Messages(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())

	assert.Contains(t, r.RenderDeleted("old"), `"old"`)
	assert.Contains(t, r.RenderImported("new", 3), "3 widgets")
	assert.Contains(t, r.RenderSaved("x"), `"x"`)
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}
