// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"

	"github.com/bnema/dockpane/internal/domain/entity"
)

//go:generate mockery --name=LayoutStateRepository --output=mocks --outpkg=mocks --with-expecter --filename=mock_layout_state_repository.go

// LayoutStateRepository persists named layout states.
type LayoutStateRepository interface {
	// Save inserts or replaces the state stored under name.
	Save(ctx context.Context, name string, state *entity.LayoutState) error

	// Get returns the layout stored under name, or nil, nil when absent.
	Get(ctx context.Context, name string) (*entity.SavedLayout, error)

	// List returns all stored layouts, most recently updated first.
	List(ctx context.Context) ([]*entity.SavedLayout, error)

	// Delete removes the layout stored under name. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}
