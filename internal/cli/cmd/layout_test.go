package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	repomocks "github.com/bnema/workbench/internal/domain/repository/mocks"
)

func TestImportLayout_StoresDecodedLayout(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Save(mock.Anything, "imported", mock.AnythingOfType("*entity.LayoutData")).
		Run(func(_ context.Context, _ string, data *entity.LayoutData) {
			assert.Equal(t, entity.LayoutDataVersion, data.Version)
			assert.Equal(t, []entity.WidgetID{"editor:a", "editor:b"}, data.MainArea.Main.WidgetIDs())
		}).
		Return(nil)

	input := `{"main_area":{"main":{"kind":"tab-area","widgets":["editor:a","editor:b"]}},
		"left_bar":{"widgets":["view:files"]}}`

	data, err := importLayout(context.Background(), usecase.NewSnapshotLayoutUseCase(repo), "imported", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, data.CountWidgets())
}

func TestImportLayout_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "malformed", input: `{"main_area":`},
		{name: "newer version", input: `{"version":99}`, wantErr: usecase.ErrLayoutVersionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomocks.NewMockLayoutRepository(t)
			_, err := importLayout(context.Background(), usecase.NewSnapshotLayoutUseCase(repo), "x", strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOutputLayoutsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputLayoutsTable(&buf, nil))
	assert.Equal(t, "No saved layouts.\n", buf.String())

	buf.Reset()
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, outputLayoutsTable(&buf, []entity.LayoutInfo{
		{Name: "default", Version: 1, WidgetCount: 7, UpdatedAt: updated},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"NAME", "VERSION", "WIDGETS", "UPDATED"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"default", "1", "7", "2026-01-02", "03:04:05"}, strings.Fields(lines[1]))
}

func TestOutputLayoutsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputLayoutsJSON(&buf, []entity.LayoutInfo{{Name: "default", Version: 1, WidgetCount: 2}}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "default", decoded[0]["name"])
	assert.EqualValues(t, 2, decoded[0]["widget_count"])
}

func TestLayoutSchemaJSON(t *testing.T) {
	data, err := layoutSchemaJSON()
	require.NoError(t, err)

	raw := string(data)
	assert.Contains(t, raw, "Workbench Layout")
	assert.Contains(t, raw, "main_area")
	assert.Contains(t, raw, "DockNode")
}

func TestLayoutError(t *testing.T) {
	err := layoutError("gone", usecase.ErrLayoutNotFound)
	assert.EqualError(t, err, `no layout named "gone"`)

	other := usecase.ErrLayoutVersionMismatch
	assert.ErrorIs(t, layoutError("x", other), other)
}
