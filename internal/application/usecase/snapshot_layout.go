package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/logging"
)

// ErrLayoutNameRequired is returned when a layout operation has no name.
var ErrLayoutNameRequired = errors.New("layout name required")

// SnapshotLayoutUseCase handles saving layout snapshots.
type SnapshotLayoutUseCase struct {
	layoutRepo repository.LayoutRepository
}

// NewSnapshotLayoutUseCase creates a new SnapshotLayoutUseCase.
func NewSnapshotLayoutUseCase(layoutRepo repository.LayoutRepository) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{layoutRepo: layoutRepo}
}

// SnapshotLayoutInput contains the parameters for saving a layout.
type SnapshotLayoutInput struct {
	Name string
	Data *entity.LayoutData
}

// Execute stores the layout under the given name.
func (uc *SnapshotLayoutUseCase) Execute(ctx context.Context, input SnapshotLayoutInput) error {
	log := logging.FromContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrLayoutNameRequired
	}
	if input.Data == nil {
		return fmt.Errorf("layout data required")
	}
	if input.Data.Version == 0 {
		input.Data.Version = entity.LayoutDataVersion
	}

	log.Debug().
		Str("layout", name).
		Int("widget_count", input.Data.CountWidgets()).
		Msg("saving layout snapshot")

	if err := uc.layoutRepo.Save(ctx, name, input.Data); err != nil {
		return fmt.Errorf("save layout snapshot: %w", err)
	}
	return nil
}
