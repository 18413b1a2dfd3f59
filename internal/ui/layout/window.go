package layout

import "github.com/bnema/dockpane/internal/ui/theme"

// WindowSpec describes a top-level window to create.
type WindowSpec struct {
	Title          string
	Width          int
	Height         int
	MinWidth       int
	MinHeight      int
	CustomTitlebar bool
}

// Window is an independent top-level window.
type Window interface {
	theme.Element

	SetTitle(title string)
	GetTitle() string
	SetChild(child Widget)
	GetChild() Widget
	Move(x, y int)
	GetPosition() (x, y int)
	SetMinimumSize(width, height int)

	// ConnectCloseRequest registers a handler for the native close affordance.
	ConnectCloseRequest(callback func()) uint32
	Present()
}

// WindowFactory is the platform window-creation facility.
type WindowFactory interface {
	CreateWindow(spec WindowSpec) (Window, error)
	DestroyWindow(win Window)
}
