package port

import (
	"context"

	"github.com/bnema/workbench/internal/ui/layout"
)

// Saveable owns per-document dirty state and persistence.
type Saveable interface {
	IsDirty(w layout.Widget) bool
	Save(ctx context.Context, w layout.Widget) error
	// Apply hooks dirty tracking onto w.
	Apply(w layout.Widget)
}
