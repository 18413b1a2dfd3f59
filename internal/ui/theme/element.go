package theme

// Category tags an element with the abstract UI role used to pick its styler.
type Category string

// Built-in element categories.
const (
	CategoryContainer Category = "container"
	CategoryWindow    Category = "window"
	CategoryHeader    Category = "header"
	CategorySeparator Category = "separator"
	CategoryLabel     Category = "label"
	CategoryButton    Category = "button"
	CategoryTextInput Category = "text-input"
	CategoryList      Category = "list"
	CategoryMenu      Category = "menu"
	CategoryScrollbar Category = "scrollbar"
	CategoryImage     Category = "image"
)

// Style is the resolved set of visual properties for one element.
// Applying a Style replaces the previous one entirely.
type Style struct {
	Background  string
	Foreground  string
	Border      string
	BorderWidth int
	Hover       string
	Pressed     string
	Selection   string
	Font        string
	FontSize    int
}

// Element is anything the dispatcher can walk and style.
type Element interface {
	Category() Category
	Children() []Element
	SetStyle(style Style)
}

// SelfStyler is implemented by composite elements that style their own
// internal parts. The dispatcher calls ApplyOwnTheme in place of the
// category styler and then continues with Children, which for a composite
// holds only the content it hosts.
type SelfStyler interface {
	ApplyOwnTheme(rec *Record)
}
