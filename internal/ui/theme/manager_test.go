package theme

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockpane/internal/logging"
)

func TestManager_SetTheme(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewBuiltinRegistry(), nil)
	assert.Nil(t, m.Current())

	rec, err := m.SetTheme(ctx, NameLight)
	require.NoError(t, err)
	assert.Same(t, rec, m.Current())

	_, err = m.SetTheme(ctx, "neon")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Equal(t, NameLight, m.Current().Name, "failed switch keeps the active record")
}

func TestManager_SetThemeLogsThemeField(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	ctx := logging.WithContext(context.Background(), logger)
	m := NewManager(NewBuiltinRegistry(), nil)

	_, err := m.SetTheme(ctx, NameLight)
	require.NoError(t, err)
	_, err = m.SetTheme(ctx, "neon")
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"theme":"light"`)
	assert.Contains(t, lines[0], `"message":"active theme changed"`)
	assert.Contains(t, lines[1], `"theme":"neon"`)
	assert.Equal(t, 1, strings.Count(lines[1], `"theme"`))
}

func TestManager_ApplyBeforeThemeIsNoop(t *testing.T) {
	m := NewManager(NewBuiltinRegistry(), nil)
	label := el(CategoryLabel)

	assert.Zero(t, m.Apply(context.Background(), label))
	assert.Zero(t, m.ApplyElement(context.Background(), label))
	assert.Zero(t, label.applied)
}

func TestManager_Apply(t *testing.T) {
	ctx := context.Background()
	m := NewManager(nil, nil)
	_, err := m.SetTheme(ctx, NameDark)
	require.NoError(t, err)

	label := el(CategoryLabel)
	root := el(CategoryContainer, label)

	assert.Equal(t, 2, m.Apply(ctx, root))
	assert.Equal(t, DefaultDarkPalette().Text, label.style.Foreground)
	assert.Equal(t, 1, m.ApplyElement(ctx, root))
	assert.Equal(t, 2, root.applied)
}

func TestManager_CustomDispatcher(t *testing.T) {
	ctx := context.Background()
	d := NewDispatcher()
	d.Register("gauge", func(e Element, r *Record) { e.SetStyle(Style{Foreground: r.Palette.Warning}) })
	m := NewManager(NewBuiltinRegistry(), d)
	_, err := m.SetTheme(ctx, NameDark)
	require.NoError(t, err)

	gauge := el("gauge")
	m.Apply(ctx, gauge)

	assert.Same(t, d, m.Dispatcher())
	assert.Equal(t, DefaultDarkPalette().Warning, gauge.style.Foreground)
}
