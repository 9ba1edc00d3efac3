// Package repository defines persistence ports for domain entities.
package repository

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// LayoutRepository persists named layout snapshots.
type LayoutRepository interface {
	// Save stores or replaces the layout under name.
	Save(ctx context.Context, name string, data *entity.LayoutData) error

	// Get returns the layout stored under name, or nil if there is none.
	Get(ctx context.Context, name string) (*entity.LayoutData, error)

	// List returns a summary of every stored layout, most recent first.
	List(ctx context.Context) ([]entity.LayoutInfo, error)

	// Delete removes the layout stored under name.
	Delete(ctx context.Context, name string) error
}
