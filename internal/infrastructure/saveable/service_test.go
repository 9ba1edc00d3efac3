package saveable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/saveable"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/layout"
	"github.com/bnema/workbench/internal/ui/signal"
)

type fakeDocument struct {
	*layout.BaseWidget
	dirty   bool
	saveErr error
	saves   int
	changed signal.Signal[bool]
}

func newFakeDocument(id string) *fakeDocument {
	d := &fakeDocument{BaseWidget: layout.NewBaseWidget(entity.WidgetID("editor:"+id), id)}
	d.Bind(d)
	return d
}

func (d *fakeDocument) IsDirty() bool { return d.dirty }

func (d *fakeDocument) Save(context.Context) error {
	d.saves++
	if d.saveErr != nil {
		return d.saveErr
	}
	d.setDirty(false)
	return nil
}

func (d *fakeDocument) OnDirtyChanged(callback func(bool)) func() {
	return d.changed.Connect(callback)
}

func (d *fakeDocument) setDirty(dirty bool) {
	if d.dirty == dirty {
		return
	}
	d.dirty = dirty
	d.changed.Emit(dirty)
}

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func TestService_PlainWidgetsAreNeverDirty(t *testing.T) {
	svc := saveable.NewService()
	w := layout.NewBaseWidget("view:1", "view")

	svc.Apply(w)

	assert.False(t, svc.IsDirty(w))
	assert.False(t, svc.Applied(w))
	assert.NoError(t, svc.Save(testCtx(), w))
}

func TestService_ApplyMirrorsDirtyClass(t *testing.T) {
	svc := saveable.NewService()
	doc := newFakeDocument("a")
	doc.dirty = true

	svc.Apply(doc)
	svc.Apply(doc)
	assert.True(t, svc.Applied(doc))
	assert.True(t, doc.Title().HasClass(layout.ClassDirty))
	assert.Equal(t, 1, doc.changed.Len())

	doc.setDirty(false)
	assert.False(t, doc.Title().HasClass(layout.ClassDirty))

	doc.setDirty(true)
	assert.True(t, doc.Title().HasClass(layout.ClassDirty))
}

func TestService_SaveOnlyDirtyDocuments(t *testing.T) {
	ctx := testCtx()
	svc := saveable.NewService()
	doc := newFakeDocument("a")
	svc.Apply(doc)

	require.NoError(t, svc.Save(ctx, doc))
	assert.Zero(t, doc.saves)

	doc.setDirty(true)
	require.NoError(t, svc.Save(ctx, doc))
	assert.Equal(t, 1, doc.saves)
	assert.False(t, svc.IsDirty(doc))
	assert.False(t, doc.Title().HasClass(layout.ClassDirty))
}

func TestService_SaveError(t *testing.T) {
	doc := newFakeDocument("a")
	doc.dirty = true
	doc.saveErr = errors.New("disk full")

	err := saveable.NewService().Save(testCtx(), doc)

	require.ErrorIs(t, err, doc.saveErr)
	assert.True(t, doc.IsDirty())
}

func TestService_CloseUnhooks(t *testing.T) {
	svc := saveable.NewService()
	doc := newFakeDocument("a")
	svc.Apply(doc)

	doc.Close()

	assert.False(t, svc.Applied(doc))
	assert.Zero(t, doc.changed.Len())
}
