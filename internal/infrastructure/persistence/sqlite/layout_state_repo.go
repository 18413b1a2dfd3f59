package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/domain/repository"
	"github.com/bnema/dockpane/internal/logging"
)

const (
	upsertLayoutState = `INSERT INTO layout_states (name, state_json, version, pane_count, detached_count, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    state_json = excluded.state_json,
    version = excluded.version,
    pane_count = excluded.pane_count,
    detached_count = excluded.detached_count,
    updated_at = excluded.updated_at`

	getLayoutState = `SELECT name, state_json, updated_at FROM layout_states WHERE name = ?`

	listLayoutStates = `SELECT name, state_json, updated_at FROM layout_states ORDER BY updated_at DESC, name`

	deleteLayoutState = `DELETE FROM layout_states WHERE name = ?`
)

type layoutStateRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutStateRepository creates a new layout state repository.
func NewLayoutStateRepository(db *sql.DB) repository.LayoutStateRepository {
	return &layoutStateRepo{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Save inserts or replaces a named layout state.
func (r *layoutStateRepo) Save(ctx context.Context, name string, state *entity.LayoutState) error {
	log := logging.FromContext(ctx)
	if name == "" {
		return errors.New("layout name cannot be empty")
	}
	if state == nil {
		return errors.New("layout state cannot be nil")
	}

	stateJSON, err := state.Marshal()
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout state")
		return err
	}

	log.Debug().
		Str("layout", name).
		Int("pane_count", state.PaneCount()).
		Int("detached_count", state.DetachedCount()).
		Msg("saving layout state")

	if _, err := r.db.ExecContext(ctx, upsertLayoutState,
		name,
		string(stateJSON),
		int64(state.Version),
		int64(state.PaneCount()),
		int64(state.DetachedCount()),
		r.now(),
	); err != nil {
		return fmt.Errorf("save layout state %q: %w", name, err)
	}
	return nil
}

// Get returns the layout stored under name, or nil when there is none.
func (r *layoutStateRepo) Get(ctx context.Context, name string) (*entity.SavedLayout, error) {
	row := r.db.QueryRowContext(ctx, getLayoutState, name)

	saved, err := scanSavedLayout(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logging.FromContext(ctx).Error().Err(err).
			Str("layout", name).
			Msg("failed to read layout state")
		return nil, err
	}
	return saved, nil
}

// List returns every stored layout, newest first. Corrupted rows are skipped.
func (r *layoutStateRepo) List(ctx context.Context) ([]*entity.SavedLayout, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutStates)
	if err != nil {
		return nil, fmt.Errorf("list layout states: %w", err)
	}
	defer func() { _ = rows.Close() }()

	layouts := make([]*entity.SavedLayout, 0)
	for rows.Next() {
		saved, err := scanSavedLayout(rows)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("skipping corrupted layout state")
			continue
		}
		layouts = append(layouts, saved)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list layout states: %w", err)
	}
	return layouts, nil
}

// Delete removes a named layout state.
func (r *layoutStateRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("layout", name).Msg("deleting layout state")
	if _, err := r.db.ExecContext(ctx, deleteLayoutState, name); err != nil {
		return fmt.Errorf("delete layout state %q: %w", name, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedLayout(row rowScanner) (*entity.SavedLayout, error) {
	var (
		name      string
		stateJSON string
		updatedAt time.Time
	)
	if err := row.Scan(&name, &stateJSON, &updatedAt); err != nil {
		return nil, err
	}

	state, err := entity.ParseLayoutState([]byte(stateJSON))
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", name, err)
	}
	return &entity.SavedLayout{Name: name, State: state, UpdatedAt: updatedAt}, nil
}
