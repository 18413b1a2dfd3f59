// Package layout holds the pane tree model, the proportional sizing
// algorithm and the builder that turns the embedded part of the tree into
// widgets. Widgets are reached only through the interfaces in this file so
// the package can be driven by any toolkit, including the headless one used
// in tests.
package layout

import (
	"context"

	"github.com/bnema/dockpane/internal/ui/theme"
)

// Orientation represents the orientation for layout widgets.
type Orientation int

// Orientation constants.
const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// Widget is the base interface that all toolkit widgets implement.
// Every widget is a theme.Element so theme dispatch can walk built trees.
type Widget interface {
	theme.Element

	// Visibility
	Show()
	Hide()
	SetVisible(visible bool)
	IsVisible() bool

	// Layout
	SetHexpand(expand bool)
	SetVexpand(expand bool)
	SetSizeRequest(width, height int)
	GetSizeRequest() (width, height int)
	GetAllocatedWidth() int
	GetAllocatedHeight() int

	// CSS styling
	AddCssClass(cssClass string)
	RemoveCssClass(cssClass string)
	HasCssClass(cssClass string) bool

	// Parent management
	Unparent()
	GetParent() Widget
}

// BoxWidget arranges children in a single row or column.
type BoxWidget interface {
	Widget

	Append(child Widget)
	Remove(child Widget)
	GetOrientation() Orientation
	SetSpacing(spacing int)
}

// LabelWidget displays text.
type LabelWidget interface {
	Widget

	SetText(text string)
	GetText() string
}

// ButtonWidget is a clickable element.
type ButtonWidget interface {
	Widget

	SetLabel(label string)
	GetLabel() string
	SetIconName(iconName string)
	SetTooltipText(text string)

	// Connect click handler, returns signal ID for disconnection
	ConnectClicked(callback func()) uint32
}

// ImageWidget displays a named icon.
type ImageWidget interface {
	Widget

	SetFromIconName(iconName string)
	SetPixelSize(pixelSize int)
}

// ScrolledWidget wraps a single child in a scrollable viewport.
// Implementations are expected to style their scrollbars themselves
// (theme.SelfStyler).
type ScrolledWidget interface {
	Widget

	SetChild(child Widget)
	GetChild() Widget
}

// WidgetFactory creates widget instances.
// This abstraction allows tests to inject mock factories.
type WidgetFactory interface {
	NewBox(orientation Orientation, spacing int) BoxWidget
	// NewHeader creates the horizontal strip shown above pane content.
	NewHeader() BoxWidget
	NewSeparator(orientation Orientation) Widget
	NewLabel(text string) LabelWidget
	NewButton() ButtonWidget
	NewImage() ImageWidget
	NewScrolled() ScrolledWidget
}

// Styler applies the active theme to built elements.
// theme.Manager satisfies it.
type Styler interface {
	Apply(ctx context.Context, root theme.Element) int
	ApplyElement(ctx context.Context, el theme.Element) int
}
