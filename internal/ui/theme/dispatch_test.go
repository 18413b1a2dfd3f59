package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	category Category
	children []Element
	style    Style
	applied  int
}

func (f *fakeElement) Category() Category  { return f.category }
func (f *fakeElement) Children() []Element { return f.children }

func (f *fakeElement) SetStyle(s Style) {
	f.style = s
	f.applied++
}

type selfStyled struct {
	fakeElement
	part  *fakeElement
	names []string
}

func (s *selfStyled) ApplyOwnTheme(rec *Record) {
	s.names = append(s.names, rec.Name)
	StyleScrollbar(s.part, rec)
}

func el(cat Category, children ...Element) *fakeElement {
	return &fakeElement{category: cat, children: children}
}

func TestDispatcher_AppliesByCategory(t *testing.T) {
	rec := mustRecord(NameDark, DefaultDarkPalette())
	label := el(CategoryLabel)
	button := el(CategoryButton)
	sep := el(CategorySeparator)
	root := el(CategoryContainer, el(CategoryHeader, label, button), sep)

	styled := NewDispatcher().Apply(root, rec)

	assert.Equal(t, 5, styled)
	assert.Equal(t, rec.Palette.Background, root.style.Background)
	assert.Equal(t, rec.Palette.Text, label.style.Foreground)
	assert.Equal(t, rec.Derived.Hover, button.style.Hover)
	assert.Equal(t, Style{Background: rec.Palette.Border}, sep.style)
}

func TestDispatcher_UnknownCategoryIsSkipped(t *testing.T) {
	rec := mustRecord(NameDark, DefaultDarkPalette())
	custom := el("sparkline")
	inner := el(CategoryLabel)
	root := el(CategoryContainer, el("sparkline", inner), custom)

	styled := NewDispatcher().Apply(root, rec)

	assert.Equal(t, 2, styled, "children of unknown categories are still visited")
	assert.Zero(t, custom.applied)
	assert.Equal(t, 1, inner.applied)
}

func TestDispatcher_SelfStylerReplacesCategoryStyler(t *testing.T) {
	rec := mustRecord(NameLight, DefaultLightPalette())
	content := el(CategoryLabel)
	composite := &selfStyled{
		fakeElement: fakeElement{category: CategoryContainer, children: []Element{content}},
		part:        el(CategoryScrollbar),
	}

	styled := NewDispatcher().Apply(composite, rec)

	assert.Equal(t, 2, styled)
	assert.Equal(t, []string{NameLight}, composite.names)
	assert.Zero(t, composite.applied, "category styler not used")
	assert.Equal(t, 1, composite.part.applied, "internal part styled exactly once")
	assert.Equal(t, rec.Palette.Muted, composite.part.style.Foreground)
	assert.Equal(t, 1, content.applied, "hosted content still visited")
}

func TestDispatcher_Register(t *testing.T) {
	rec := mustRecord(NameDark, DefaultDarkPalette())
	d := NewDispatcher()
	custom := el("sparkline")

	d.Register("sparkline", func(e Element, r *Record) {
		e.SetStyle(Style{Foreground: r.Palette.Accent})
	})
	_, ok := d.Styler("sparkline")
	require.True(t, ok)
	assert.Equal(t, 1, d.ApplyElement(custom, rec))
	assert.Equal(t, rec.Palette.Accent, custom.style.Foreground)

	d.Register(CategoryLabel, nil)
	_, ok = d.Styler(CategoryLabel)
	assert.False(t, ok)
	assert.Zero(t, d.ApplyElement(el(CategoryLabel), rec))
}

func TestDispatcher_TablesAreIndependent(t *testing.T) {
	d := NewDispatcher()
	d.Register(CategoryButton, nil)

	_, ok := NewDispatcher().Styler(CategoryButton)
	assert.True(t, ok)
}

func TestDispatcher_NilInputs(t *testing.T) {
	d := NewDispatcher()
	rec := mustRecord(NameDark, DefaultDarkPalette())

	assert.Zero(t, d.Apply(nil, rec))
	assert.Zero(t, d.Apply(el(CategoryLabel), nil))
	assert.Zero(t, d.ApplyElement(nil, rec))
}

func TestDispatcher_Idempotent(t *testing.T) {
	rec := mustRecord(NameDark, DefaultDarkPalette())
	label := el(CategoryLabel)
	root := el(CategoryWindow, el(CategoryContainer, label))
	d := NewDispatcher()

	d.Apply(root, rec)
	first := label.style
	d.Apply(root, rec)

	assert.Equal(t, first, label.style)
	assert.Equal(t, 2, label.applied)
}

func TestBuiltinStylers_CoverEveryCategory(t *testing.T) {
	d := NewDispatcher()
	for _, cat := range []Category{
		CategoryContainer, CategoryWindow, CategoryHeader, CategorySeparator,
		CategoryLabel, CategoryButton, CategoryTextInput, CategoryList,
		CategoryMenu, CategoryScrollbar, CategoryImage,
	} {
		_, ok := d.Styler(cat)
		assert.True(t, ok, cat)
	}
}
