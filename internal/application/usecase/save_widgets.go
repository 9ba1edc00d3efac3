package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/logging"
)

// SaveWidgetsUseCase delegates dirty checks and saves to the saveable
// collaborator for the current widget or every tracked widget.
type SaveWidgetsUseCase struct {
	saveable port.Saveable
	tracker  port.FocusTracker
}

// NewSaveWidgetsUseCase creates a new SaveWidgetsUseCase.
func NewSaveWidgetsUseCase(saveable port.Saveable, tracker port.FocusTracker) *SaveWidgetsUseCase {
	return &SaveWidgetsUseCase{saveable: saveable, tracker: tracker}
}

// CanSave reports whether the current widget is dirty.
func (uc *SaveWidgetsUseCase) CanSave(_ context.Context) bool {
	current := uc.tracker.CurrentWidget()
	return current != nil && uc.saveable.IsDirty(current)
}

// Save saves the current widget. No current widget is a no-op.
func (uc *SaveWidgetsUseCase) Save(ctx context.Context) error {
	current := uc.tracker.CurrentWidget()
	if current == nil {
		return nil
	}
	if err := uc.saveable.Save(ctx, current); err != nil {
		return fmt.Errorf("save %s: %w", current.ID(), err)
	}
	return nil
}

// CanSaveAll reports whether any tracked widget is dirty.
func (uc *SaveWidgetsUseCase) CanSaveAll(_ context.Context) bool {
	for _, w := range uc.tracker.Widgets() {
		if uc.saveable.IsDirty(w) {
			return true
		}
	}
	return false
}

// SaveAll saves every tracked widget concurrently. It returns once all saves
// have finished; the first failure is returned.
func (uc *SaveWidgetsUseCase) SaveAll(ctx context.Context) error {
	log := logging.FromContext(ctx)
	widgets := uc.tracker.Widgets()

	var g errgroup.Group
	for _, w := range widgets {
		g.Go(func() error {
			if err := uc.saveable.Save(ctx, w); err != nil {
				log.Warn().Err(err).Str("widget_id", string(w.ID())).Msg("save failed")
				return fmt.Errorf("save %s: %w", w.ID(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Debug().Int("count", len(widgets)).Msg("saved all widgets")
	return nil
}
