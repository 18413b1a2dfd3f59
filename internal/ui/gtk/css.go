// Package gtk implements the layout widget and window factories on GTK4
// through puregotk. Everything except the CSS rendering in this file is
// built only with the gtk build tag, because puregotk loads libgtk-4 when
// the package initialises.
package gtk

import (
	"fmt"
	"strings"

	"github.com/bnema/dockpane/internal/ui/theme"
)

// classPrefix prefixes the per-widget CSS class that scopes its style rules.
const classPrefix = "dockpane-w"

// WidgetClass returns the CSS class assigned to the widget with the given serial.
func WidgetClass(serial uint64) string {
	return fmt.Sprintf("%s%d", classPrefix, serial)
}

type declaration struct {
	property string
	value    string
}

// RenderCSS renders style as GTK4 CSS scoped to the widget carrying cssClass.
// Empty style fields produce no declaration and an empty style renders "".
// Scrollbars carry their foreground, hover and pressed colours on the slider
// node; other categories use the :hover and :active states.
func RenderCSS(cssClass string, category theme.Category, style theme.Style) string {
	selector := "." + cssClass

	base := []declaration{
		{"background-color", style.Background},
		{"font-family", style.Font},
	}
	if style.FontSize > 0 {
		base = append(base, declaration{"font-size", fmt.Sprintf("%dpx", style.FontSize)})
	}
	switch {
	case style.Border != "" && style.BorderWidth > 0:
		base = append(base, declaration{"border", fmt.Sprintf("%dpx solid %s", style.BorderWidth, style.Border)})
	case style.Border != "":
		base = append(base, declaration{"border-color", style.Border})
	}

	var sb strings.Builder
	if category == theme.CategoryScrollbar {
		writeBlock(&sb, selector, base)
		writeBlock(&sb, selector+" slider", []declaration{{"background-color", style.Foreground}})
		writeBlock(&sb, selector+" slider:hover", []declaration{{"background-color", style.Hover}})
		writeBlock(&sb, selector+" slider:active", []declaration{{"background-color", style.Pressed}})
		return sb.String()
	}

	base = append(base, declaration{"color", style.Foreground})
	writeBlock(&sb, selector, base)
	writeBlock(&sb, selector+":hover", []declaration{{"background-color", style.Hover}})
	writeBlock(&sb, selector+":active", []declaration{{"background-color", style.Pressed}})
	writeBlock(&sb, selector+" selection", []declaration{{"background-color", style.Selection}})
	return sb.String()
}

func writeBlock(sb *strings.Builder, selector string, decls []declaration) {
	var body strings.Builder
	for _, d := range decls {
		if d.value == "" {
			continue
		}
		fmt.Fprintf(&body, "\t%s: %s;\n", d.property, d.value)
	}
	if body.Len() == 0 {
		return
	}
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	sb.WriteString(body.String())
	sb.WriteString("}\n")
}
