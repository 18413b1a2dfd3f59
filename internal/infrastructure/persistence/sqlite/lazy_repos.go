package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/dockpane/internal/application/port"
	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/domain/repository"
)

// LazyLayoutStateRepository opens the database on the first repository call.
type LazyLayoutStateRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutStateRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutStateRepository creates a lazy-loading layout state repository.
func NewLazyLayoutStateRepository(provider port.DatabaseProvider) repository.LayoutStateRepository {
	return &LazyLayoutStateRepository{provider: provider}
}

func (r *LazyLayoutStateRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutStateRepository(db)
	})
	return r.initErr
}

func (r *LazyLayoutStateRepository) Save(ctx context.Context, name string, state *entity.LayoutState) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, name, state)
}

func (r *LazyLayoutStateRepository) Get(ctx context.Context, name string) (*entity.SavedLayout, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, name)
}

func (r *LazyLayoutStateRepository) List(ctx context.Context) ([]*entity.SavedLayout, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyLayoutStateRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}
