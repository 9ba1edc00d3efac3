package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/workbench/internal/ui/layout"
)

func TestTitle_ClassesAreIdempotent(t *testing.T) {
	title := layout.NewBaseWidget("w", "W").Title()

	assert.True(t, title.AddClass(layout.ClassCurrent))
	assert.False(t, title.AddClass(layout.ClassCurrent))
	assert.False(t, title.AddClass(""))
	assert.Equal(t, []string{layout.ClassCurrent}, title.Classes())

	assert.True(t, title.RemoveClass(layout.ClassCurrent))
	assert.False(t, title.RemoveClass(layout.ClassCurrent))
	assert.Empty(t, title.Classes())
}

func TestTitle_ToggleClassAndClassName(t *testing.T) {
	title := layout.NewBaseWidget("w", "W").Title()

	title.ToggleClass(layout.ClassActive, true)
	title.ToggleClass(layout.ClassDirty, true)
	title.ToggleClass(layout.ClassDirty, true)
	assert.Equal(t, "mod-active mod-dirty", title.ClassName())

	title.ToggleClass(layout.ClassActive, false)
	assert.Equal(t, "mod-dirty", title.ClassName())
	assert.False(t, title.HasClass(layout.ClassActive))
}

func TestBaseWidget_BindSetsTitleOwner(t *testing.T) {
	base := layout.NewBaseWidget("w", "W")
	assert.Same(t, base, base.Title().Owner())

	type outer struct{ *layout.BaseWidget }
	o := &outer{BaseWidget: layout.NewBaseWidget("o", "O")}
	o.Bind(o)

	assert.Same(t, o, o.Title().Owner())
}

func TestBaseWidget_Signals(t *testing.T) {
	w := layout.NewBaseWidget("w", "W")
	var activated, closed layout.Widget

	w.OnActivateRequest(func(got layout.Widget) { activated = got })
	w.OnClose(func(got layout.Widget) { closed = got })

	w.Activate()
	w.Close()

	assert.Same(t, w, activated)
	assert.Same(t, w, closed)
}
