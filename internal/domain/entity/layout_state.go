// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
)

// LayoutStateVersion is the current schema version for layout state.
// Increment when making breaking changes to the serialization format.
const LayoutStateVersion = 1

// ErrStateVersion is returned when a state blob has an unsupported version.
var ErrStateVersion = errors.New("unsupported layout state version")

// LayoutState is the persisted part of a layout: weights, the detached set
// and the active theme. Pane content is never serialized.
type LayoutState struct {
	Version int    `json:"version"`
	Theme   string `json:"theme,omitempty"`
	// PaneWeights is keyed by pane name.
	PaneWeights map[string]float64 `json:"pane_weights"`
	// ContainerWeights is keyed by container ID, else by index path (root/1/0).
	ContainerWeights map[string]float64 `json:"container_weights"`
	Detached         []string           `json:"detached"`
}

// NewLayoutState returns an empty state at the current version.
func NewLayoutState() *LayoutState {
	return &LayoutState{
		Version:          LayoutStateVersion,
		PaneWeights:      make(map[string]float64),
		ContainerWeights: make(map[string]float64),
		Detached:         []string{},
	}
}

// IsDetached reports whether name is listed as detached.
func (s *LayoutState) IsDetached(name string) bool {
	return slices.Contains(s.Detached, name)
}

// PaneCount returns the number of panes with a recorded weight.
func (s *LayoutState) PaneCount() int {
	return len(s.PaneWeights)
}

// DetachedCount returns the number of detached panes.
func (s *LayoutState) DetachedCount() int {
	return len(s.Detached)
}

// Marshal encodes the state as JSON.
func (s *LayoutState) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal layout state: %w", err)
	}
	return data, nil
}

// ParseLayoutState decodes a state blob. Missing maps are initialized.
func ParseLayoutState(data []byte) (*LayoutState, error) {
	var state LayoutState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse layout state: %w", err)
	}
	if state.Version != LayoutStateVersion {
		return nil, fmt.Errorf("%w: %d", ErrStateVersion, state.Version)
	}
	if state.PaneWeights == nil {
		state.PaneWeights = make(map[string]float64)
	}
	if state.ContainerWeights == nil {
		state.ContainerWeights = make(map[string]float64)
	}
	if state.Detached == nil {
		state.Detached = []string{}
	}
	return &state, nil
}

// SavedLayout is a named layout state as stored by a repository.
type SavedLayout struct {
	Name      string
	State     *LayoutState
	UpdatedAt time.Time
}
