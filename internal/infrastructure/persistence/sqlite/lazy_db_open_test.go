package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bnema/dockpane/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietCtx() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel("disabled")
	return logging.WithContext(context.Background(), logging.New(cfg))
}

func TestLazyDB_RemembersOpenFailure(t *testing.T) {
	boom := errors.New("read-only file system")
	attempts := 0
	lazy := NewLazyDB("/nowhere/layouts.sqlite")
	lazy.open = func(context.Context, string) (*sql.DB, error) {
		attempts++
		return nil, boom
	}

	for range 3 {
		_, err := lazy.DB(quietCtx())
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "/nowhere/layouts.sqlite")
	}
	assert.Equal(t, 1, attempts)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_UnusableAfterClose(t *testing.T) {
	ctx := quietCtx()
	lazy := NewLazyDB(filepath.Join(t.TempDir(), "layouts.sqlite"))

	_, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())

	_, err = lazy.DB(ctx)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.NoError(t, lazy.Close(), "second close is a no-op")
}

func TestDataSourceName(t *testing.T) {
	dsn := dataSourceName("/tmp/state/layouts.sqlite")
	assert.Contains(t, dsn, "file:/tmp/state/layouts.sqlite?")
	assert.Contains(t, dsn, "_pragma=busy_timeout%285000%29")
	assert.Contains(t, dsn, "_pragma=journal_mode%28wal%29")
	assert.Contains(t, dsn, "_txlock=immediate")
}
