package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dockpane/internal/application/port"
	"github.com/bnema/dockpane/internal/logging"
)

// ErrStoreClosed is returned by LazyDB.DB after Close.
var ErrStoreClosed = errors.New("layout store closed")

// LazyDB opens the layout store on first use, so commands that never read
// or write layout states never create the database file.
type LazyDB struct {
	path string
	open func(ctx context.Context, path string) (*sql.DB, error)

	mu     sync.Mutex
	db     *sql.DB
	err    error
	opened bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the store at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path, open: NewConnection}
}

// DB returns the connection, opening it on the first call. A failed open is
// remembered and reported on every later call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.opened {
		l.opened = true
		l.db, l.err = l.open(ctx, l.path)
		if l.err != nil {
			logging.FromContext(ctx).Error().Err(l.err).Str("path", l.path).Msg("layout store unavailable")
		}
	}
	if l.err != nil {
		return nil, fmt.Errorf("layout store %s: %w", l.path, l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened. Later DB calls fail with
// ErrStoreClosed.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.opened = true
	l.err = ErrStoreClosed
	if l.db == nil {
		return nil
	}
	db := l.db
	l.db = nil
	return db.Close()
}

// IsInitialized reports whether a connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.path
}
