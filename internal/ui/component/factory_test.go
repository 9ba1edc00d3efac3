package component_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/component"
)

func TestFactory_GeneratesKindPrefixedIDs(t *testing.T) {
	f := component.NewFactory(nil)

	e := f.NewEditor("notes", "")
	v := f.NewView("Explorer")

	kind, ok := component.KindOf(e.ID())
	require.True(t, ok)
	assert.Equal(t, component.KindEditor, kind)

	kind, ok = component.KindOf(v.ID())
	require.True(t, ok)
	assert.Equal(t, component.KindView, kind)

	assert.NotEqual(t, e.ID(), f.NewEditor("notes", "").ID())
	assert.Equal(t, 3, f.Registry().Len())
}

func TestFactory_ResolveKnownWidget(t *testing.T) {
	ctx := context.Background()
	f := component.NewFactory(nil)
	e := f.NewEditor("notes", "")

	got, ok := f.ResolveWidget(ctx, e.ID())

	require.True(t, ok)
	assert.Same(t, e, got)
}

func TestFactory_ResolveRecreatesByKind(t *testing.T) {
	ctx := context.Background()
	f := component.NewFactory(nil)

	got, ok := f.ResolveWidget(ctx, "view:abc")
	require.True(t, ok)
	assert.IsType(t, &component.View{}, got)
	assert.Equal(t, entity.WidgetID("view:abc"), got.ID())
	assert.Equal(t, "View", got.Title().Label())

	again, ok := f.ResolveWidget(ctx, "view:abc")
	require.True(t, ok)
	assert.Same(t, got, again)
}

func TestFactory_ResolveUnknown(t *testing.T) {
	ctx := context.Background()
	f := component.NewFactory(nil)

	for _, id := range []entity.WidgetID{"", "plain", "terminal:1", "editor:"} {
		_, ok := f.ResolveWidget(ctx, id)
		assert.False(t, ok, "id %q", id)
	}
}

func TestFactory_ClosedWidgetIsRecreatedFresh(t *testing.T) {
	ctx := context.Background()
	f := component.NewFactory(nil)
	e := f.NewEditor("notes", "draft")
	e.SetContent("unsaved")
	require.True(t, e.IsDirty())

	e.Close()
	assert.Equal(t, 0, f.Registry().Len())

	got, ok := f.ResolveWidget(ctx, e.ID())
	require.True(t, ok)
	assert.NotSame(t, e, got)

	fresh, ok := got.(*component.Editor)
	require.True(t, ok)
	assert.False(t, fresh.IsDirty())
	assert.Empty(t, fresh.Content())
	assert.Equal(t, "Editor", fresh.Title().Label())

	// Closing the stale instance again must not evict the fresh one.
	e.Close()
	again, ok := f.ResolveWidget(ctx, e.ID())
	require.True(t, ok)
	assert.Same(t, got, again)
}
