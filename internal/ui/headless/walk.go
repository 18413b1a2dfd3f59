package headless

import (
	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/theme"
)

// Walk visits el and its descendants depth-first. Returning false from fn
// skips the element's children.
func Walk(el theme.Element, fn func(theme.Element) bool) {
	if el == nil || !fn(el) {
		return
	}
	for _, child := range el.Children() {
		Walk(child, fn)
	}
}

// FindByClass returns the widgets under root carrying cssClass.
func FindByClass(root theme.Element, cssClass string) []layout.Widget {
	var out []layout.Widget
	Walk(root, func(el theme.Element) bool {
		if w, ok := el.(layout.Widget); ok && w.HasCssClass(cssClass) {
			out = append(out, w)
		}
		return true
	})
	return out
}

// Labels returns the text of every label under root in tree order.
func Labels(root theme.Element) []string {
	var out []string
	Walk(root, func(el theme.Element) bool {
		if l, ok := el.(*Label); ok {
			out = append(out, l.GetText())
		}
		return true
	})
	return out
}
