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

// ErrLayoutNotFound is returned when no layout is stored under a name.
var ErrLayoutNotFound = errors.New("layout not found")

// ErrLayoutVersionMismatch is returned when a stored layout is newer than
// this build understands.
var ErrLayoutVersionMismatch = errors.New("layout version mismatch")

// RestoreLayoutUseCase loads and validates a stored layout.
type RestoreLayoutUseCase struct {
	layoutRepo repository.LayoutRepository
}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase(layoutRepo repository.LayoutRepository) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{layoutRepo: layoutRepo}
}

// RestoreLayoutInput contains the parameters for loading a layout.
type RestoreLayoutInput struct {
	Name string
}

// RestoreLayoutOutput contains the loaded layout.
type RestoreLayoutOutput struct {
	Data *entity.LayoutData
}

// Execute loads the named layout.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context, input RestoreLayoutInput) (*RestoreLayoutOutput, error) {
	log := logging.FromContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrLayoutNameRequired
	}

	data, err := uc.layoutRepo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get layout: %w", err)
	}
	if data == nil {
		return nil, ErrLayoutNotFound
	}

	if data.Version > entity.LayoutDataVersion {
		log.Warn().
			Int("layout_version", data.Version).
			Int("current_version", entity.LayoutDataVersion).
			Msg("layout version is newer than current version")
		return nil, ErrLayoutVersionMismatch
	}

	log.Info().
		Str("layout", name).
		Int("widget_count", data.CountWidgets()).
		Msg("layout loaded for restoration")

	return &RestoreLayoutOutput{Data: data}, nil
}
