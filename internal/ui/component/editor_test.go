package component_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/component"
)

func TestEditor_DirtyTracking(t *testing.T) {
	e := component.NewEditor("editor:1", "main.go", "package main", nil)

	var events []bool
	e.OnDirtyChanged(func(dirty bool) { events = append(events, dirty) })

	assert.False(t, e.IsDirty())

	e.SetContent("package main\n")
	assert.True(t, e.IsDirty())

	// Still dirty, no new event.
	e.SetContent("package main\n\n")

	e.SetContent("package main")
	assert.False(t, e.IsDirty())

	assert.Equal(t, []bool{true, false}, events)
}

func TestEditor_SaveCallsSaveFunc(t *testing.T) {
	var saved string
	e := component.NewEditor("editor:1", "a", "", func(_ context.Context, id entity.WidgetID, content string) error {
		assert.Equal(t, entity.WidgetID("editor:1"), id)
		saved = content
		return nil
	})
	e.SetContent("hello")

	require.NoError(t, e.Save(context.Background()))

	assert.Equal(t, "hello", saved)
	assert.False(t, e.IsDirty())
}

func TestEditor_SaveErrorKeepsDirty(t *testing.T) {
	boom := errors.New("disk full")
	e := component.NewEditor("editor:1", "a", "", func(context.Context, entity.WidgetID, string) error {
		return boom
	})
	e.SetContent("hello")

	err := e.Save(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.True(t, e.IsDirty())
}

func TestEditor_TitleOwnerIsEditor(t *testing.T) {
	e := component.NewEditor("editor:1", "a", "", nil)
	assert.Same(t, e, e.Title().Owner())
}
