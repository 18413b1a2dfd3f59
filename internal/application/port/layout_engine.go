package port

import "context"

//go:generate mockgen -destination=mocks/mock_layout_engine.go -package=mock_port . LayoutEngine

// LayoutEngine is the part of a layout engine that use cases persist.
type LayoutEngine interface {
	// SaveState returns the engine's weights, detached set and theme as an opaque blob.
	SaveState() ([]byte, error)

	// RestoreState reapplies a blob produced by SaveState.
	RestoreState(ctx context.Context, blob []byte) error
}
