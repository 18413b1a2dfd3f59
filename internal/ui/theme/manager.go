package theme

import (
	"context"
	"sync"

	"github.com/bnema/dockpane/internal/logging"
)

// Manager is the theme context held by one layout engine: it tracks the
// active record and applies it through its dispatcher.
type Manager struct {
	provider   Provider
	dispatcher *Dispatcher

	mu      sync.RWMutex
	current *Record
}

// NewManager creates a manager. A nil provider falls back to DefaultRegistry,
// a nil dispatcher to NewDispatcher.
func NewManager(provider Provider, dispatcher *Dispatcher) *Manager {
	if provider == nil {
		provider = DefaultRegistry()
	}
	if dispatcher == nil {
		dispatcher = NewDispatcher()
	}
	return &Manager{
		provider:   provider,
		dispatcher: dispatcher,
	}
}

// SetTheme resolves name and makes it the active record. On failure the
// previous record stays active.
func (m *Manager) SetTheme(ctx context.Context, name string) (*Record, error) {
	log := logging.FromContext(logging.WithTheme(ctx, name))

	rec, err := m.provider.Resolve(name)
	if err != nil {
		log.Warn().Err(err).Msg("theme resolution failed")
		return nil, err
	}

	m.mu.Lock()
	m.current = rec
	m.mu.Unlock()

	log.Debug().Bool("dark", rec.Dark).Msg("active theme changed")
	return rec, nil
}

// Current returns the active record, or nil before the first SetTheme.
func (m *Manager) Current() *Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current
}

// Dispatcher exposes the dispatch table so hosts can register custom categories.
func (m *Manager) Dispatcher() *Dispatcher {
	return m.dispatcher
}

// Apply styles root and its subtree with the active record.
func (m *Manager) Apply(ctx context.Context, root Element) int {
	rec := m.Current()
	styled := m.dispatcher.Apply(root, rec)
	if rec != nil {
		logging.FromContext(ctx).Trace().
			Str("theme", rec.Name).
			Int("styled", styled).
			Msg("theme applied to subtree")
	}
	return styled
}

// ApplyElement styles a single element with the active record.
func (m *Manager) ApplyElement(_ context.Context, el Element) int {
	return m.dispatcher.ApplyElement(el, m.Current())
}
