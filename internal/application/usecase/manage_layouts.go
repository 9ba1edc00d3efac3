package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/logging"
)

// ManageLayoutsUseCase lists and deletes stored layouts.
type ManageLayoutsUseCase struct {
	layoutRepo repository.LayoutRepository
}

// NewManageLayoutsUseCase creates a new ManageLayoutsUseCase.
func NewManageLayoutsUseCase(layoutRepo repository.LayoutRepository) *ManageLayoutsUseCase {
	return &ManageLayoutsUseCase{layoutRepo: layoutRepo}
}

// List returns every stored layout.
func (uc *ManageLayoutsUseCase) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	infos, err := uc.layoutRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	return infos, nil
}

// Delete removes the named layout.
func (uc *ManageLayoutsUseCase) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrLayoutNameRequired
	}
	logging.FromContext(ctx).Info().Str("layout", name).Msg("deleting layout")
	if err := uc.layoutRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	return nil
}
