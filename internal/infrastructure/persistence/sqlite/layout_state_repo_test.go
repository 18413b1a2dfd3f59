package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*layoutStateRepo, context.Context) {
	t.Helper()

	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel("debug")
	ctx := logging.WithContext(context.Background(), logging.New(cfg))

	db, err := NewConnection(ctx, filepath.Join(t.TempDir(), "layouts.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, ok := NewLayoutStateRepository(db).(*layoutStateRepo)
	require.True(t, ok)
	return repo, ctx
}

func sampleState() *entity.LayoutState {
	state := entity.NewLayoutState()
	state.Theme = "dark"
	state.PaneWeights["files"] = 0.2
	state.PaneWeights["editor"] = 0.6
	state.ContainerWeights["root"] = 1
	state.Detached = []string{"files"}
	return state
}

func TestLayoutStateRepo_SaveAndGet(t *testing.T) {
	repo, ctx := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, "work", sampleState()))

	saved, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "work", saved.Name)
	assert.Equal(t, "dark", saved.State.Theme)
	assert.Equal(t, []string{"files"}, saved.State.Detached)
	assert.InDelta(t, 0.6, saved.State.PaneWeights["editor"], 1e-9)
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestLayoutStateRepo_GetMissingReturnsNil(t *testing.T) {
	repo, ctx := newTestRepo(t)

	saved, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestLayoutStateRepo_SaveReplaces(t *testing.T) {
	repo, ctx := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, "work", sampleState()))
	replacement := sampleState()
	replacement.Detached = []string{}
	require.NoError(t, repo.Save(ctx, "work", replacement))

	saved, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Empty(t, saved.State.Detached)

	var detachedCount int
	require.NoError(t, repo.db.QueryRowContext(ctx,
		"SELECT detached_count FROM layout_states WHERE name = ?", "work").Scan(&detachedCount))
	assert.Equal(t, 0, detachedCount)
}

func TestLayoutStateRepo_ListNewestFirst(t *testing.T) {
	repo, ctx := newTestRepo(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "mid", "new"} {
		at := base.Add(time.Duration(i) * time.Hour)
		repo.now = func() time.Time { return at }
		require.NoError(t, repo.Save(ctx, name, sampleState()))
	}

	layouts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, layouts, 3)
	assert.Equal(t, "new", layouts[0].Name)
	assert.Equal(t, "old", layouts[2].Name)
}

func TestLayoutStateRepo_ListSkipsCorruptedRows(t *testing.T) {
	repo, ctx := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, "good", sampleState()))
	_, err := repo.db.ExecContext(ctx,
		"INSERT INTO layout_states (name, state_json, version, updated_at) VALUES (?, ?, ?, ?)",
		"bad", `{"version":99}`, 99, time.Now().UTC())
	require.NoError(t, err)

	layouts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, layouts, 1)
	assert.Equal(t, "good", layouts[0].Name)
}

func TestLayoutStateRepo_Delete(t *testing.T) {
	repo, ctx := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, "work", sampleState()))
	require.NoError(t, repo.Delete(ctx, "work"))
	require.NoError(t, repo.Delete(ctx, "work"))

	saved, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestLayoutStateRepo_SaveValidatesInput(t *testing.T) {
	repo, ctx := newTestRepo(t)

	assert.Error(t, repo.Save(ctx, "", sampleState()))
	assert.Error(t, repo.Save(ctx, "work", nil))
}

func TestSchemaVersion(t *testing.T) {
	repo, ctx := newTestRepo(t)

	version, err := SchemaVersion(ctx, repo.db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
