package config

import (
	"errors"
	"reflect"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dockpane/internal/logging"
)

// ErrNotInitialized is returned by the package-level helpers before Init.
var ErrNotInitialized = errors.New("configuration not initialized")

// reloadOps are the fsnotify operations that can change the file contents.
// Editors that save by rename surface as Create.
const reloadOps = fsnotify.Write | fsnotify.Create

// Watch reloads the config file whenever it changes on disk and notifies
// OnConfigChange callbacks with the new value. A file that fails to parse
// or validate keeps the previous configuration.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) handleEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	if e.Op&reloadOps == 0 {
		log.Trace().Str("op", e.Op.String()).Msg("config event ignored")
		return
	}

	m.mu.Lock()
	previous := m.config
	next, err := m.reload()
	if err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Str("file", e.Name).Msg("config reload rejected")
		return
	}
	if previous != nil && reflect.DeepEqual(previous, next) {
		m.mu.Unlock()
		return
	}
	m.config = next
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	log.Debug().Str("file", e.Name).Int("callbacks", len(callbacks)).Msg("config reloaded")
	for _, callback := range callbacks {
		callback(next)
	}
}

// OnConfigChange registers callback for every accepted reload. Callbacks run
// on the watcher goroutine.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload rereads the file. Must be called with m.mu held.
func (m *Manager) reload() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return nil, err
	}
	return m.unmarshalConfig()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return ErrNotInitialized
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
