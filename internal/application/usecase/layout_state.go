// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockpane/internal/application/port"
	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/domain/repository"
	"github.com/bnema/dockpane/internal/logging"
)

// ErrLayoutNotFound is returned when no layout is stored under a name.
var ErrLayoutNotFound = errors.New("layout not found")

// LayoutStateUseCase saves and restores named layout states.
type LayoutStateUseCase struct {
	repo repository.LayoutStateRepository
}

// NewLayoutStateUseCase creates a new layout state use case.
func NewLayoutStateUseCase(repo repository.LayoutStateRepository) *LayoutStateUseCase {
	return &LayoutStateUseCase{repo: repo}
}

// Snapshot stores the engine's current state under name.
func (uc *LayoutStateUseCase) Snapshot(ctx context.Context, name string, engine port.LayoutEngine) (*entity.LayoutState, error) {
	log := logging.FromContext(ctx)

	if name == "" {
		return nil, errors.New("layout name cannot be empty")
	}

	blob, err := engine.SaveState()
	if err != nil {
		return nil, fmt.Errorf("save engine state: %w", err)
	}

	state, err := entity.ParseLayoutState(blob)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, name, state); err != nil {
		return nil, fmt.Errorf("store layout %q: %w", name, err)
	}

	log.Info().
		Str("layout", name).
		Int("detached", state.DetachedCount()).
		Msg("layout snapshot stored")
	return state, nil
}

// Apply restores the layout stored under name into engine.
func (uc *LayoutStateUseCase) Apply(ctx context.Context, name string, engine port.LayoutEngine) (*entity.LayoutState, error) {
	saved, err := uc.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	blob, err := saved.State.Marshal()
	if err != nil {
		return nil, err
	}
	// The engine applies what it can; the stored state is returned with any error.
	if err := engine.RestoreState(ctx, blob); err != nil {
		return saved.State, fmt.Errorf("restore layout %q: %w", name, err)
	}

	logging.FromContext(ctx).Info().Str("layout", name).Msg("layout restored")
	return saved.State, nil
}

// Get returns the layout stored under name.
func (uc *LayoutStateUseCase) Get(ctx context.Context, name string) (*entity.SavedLayout, error) {
	saved, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}
	if saved == nil || saved.State == nil {
		return nil, fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}
	return saved, nil
}

// List returns every stored layout.
func (uc *LayoutStateUseCase) List(ctx context.Context) ([]*entity.SavedLayout, error) {
	return uc.repo.List(ctx)
}

// Delete removes the layout stored under name.
func (uc *LayoutStateUseCase) Delete(ctx context.Context, name string) error {
	saved, err := uc.repo.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("load layout %q: %w", name, err)
	}
	if saved == nil {
		return fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}
	return uc.repo.Delete(ctx, name)
}
