package theme

var builtinStylers = map[Category]Styler{
	CategoryContainer: styleContainer,
	CategoryWindow:    styleWindow,
	CategoryHeader:    styleHeader,
	CategorySeparator: styleSeparator,
	CategoryLabel:     styleLabel,
	CategoryButton:    styleButton,
	CategoryTextInput: styleTextInput,
	CategoryList:      styleList,
	CategoryMenu:      styleMenu,
	CategoryScrollbar: StyleScrollbar,
	CategoryImage:     styleImage,
}

func styleContainer(el Element, rec *Record) {
	el.SetStyle(Style{
		Background: rec.Palette.Background,
		Foreground: rec.Palette.Text,
	})
}

func styleWindow(el Element, rec *Record) {
	el.SetStyle(Style{
		Background:  rec.Palette.Background,
		Foreground:  rec.Palette.Text,
		Border:      rec.Palette.Border,
		BorderWidth: 1,
		Font:        rec.Fonts.SansFont,
		FontSize:    rec.Fonts.Size,
	})
}

func styleHeader(el Element, rec *Record) {
	el.SetStyle(Style{
		Background: rec.Palette.Surface,
		Foreground: rec.Palette.Text,
		Font:       rec.Fonts.SansFont,
		FontSize:   rec.Fonts.Size,
	})
}

func styleSeparator(el Element, rec *Record) {
	el.SetStyle(Style{Background: rec.Palette.Border})
}

func styleLabel(el Element, rec *Record) {
	el.SetStyle(Style{
		Foreground: rec.Palette.Text,
		Font:       rec.Fonts.SansFont,
		FontSize:   rec.Fonts.Size,
	})
}

func styleButton(el Element, rec *Record) {
	el.SetStyle(Style{
		Background:  rec.Palette.SurfaceVariant,
		Foreground:  rec.Palette.Text,
		Border:      rec.Palette.Border,
		BorderWidth: 1,
		Hover:       rec.Derived.Hover,
		Pressed:     rec.Derived.Pressed,
		Font:        rec.Fonts.SansFont,
		FontSize:    rec.Fonts.Size,
	})
}

func styleTextInput(el Element, rec *Record) {
	el.SetStyle(Style{
		Background:  rec.Palette.Surface,
		Foreground:  rec.Palette.Text,
		Border:      rec.Palette.Border,
		BorderWidth: 1,
		Selection:   rec.Derived.Selection,
		Font:        rec.Fonts.MonospaceFont,
		FontSize:    rec.Fonts.Size,
	})
}

func styleList(el Element, rec *Record) {
	el.SetStyle(Style{
		Background: rec.Palette.Surface,
		Foreground: rec.Palette.Text,
		Hover:      rec.Derived.Hover,
		Selection:  rec.Derived.Selection,
		Font:       rec.Fonts.SansFont,
		FontSize:   rec.Fonts.Size,
	})
}

func styleMenu(el Element, rec *Record) {
	el.SetStyle(Style{
		Background:  rec.Palette.Surface,
		Foreground:  rec.Palette.Text,
		Border:      rec.Palette.Border,
		BorderWidth: 1,
		Hover:       rec.Derived.Hover,
		Font:        rec.Fonts.SansFont,
		FontSize:    rec.Fonts.Size,
	})
}

// StyleScrollbar is exported so self-styling composites can reuse it for
// their trough and thumb parts.
func StyleScrollbar(el Element, rec *Record) {
	el.SetStyle(Style{
		Background: rec.Palette.Surface,
		Foreground: rec.Palette.Muted,
		Hover:      rec.Derived.Hover,
		Pressed:    rec.Palette.Accent,
	})
}

func styleImage(el Element, rec *Record) {
	el.SetStyle(Style{Foreground: rec.Palette.Text})
}
