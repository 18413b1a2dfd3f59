package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockpane/internal/infrastructure/config"
	"github.com/bnema/dockpane/internal/ui/layoutfile"
	"github.com/bnema/dockpane/internal/ui/theme"
)

func TestOpenToolkit_DefaultsToHeadless(t *testing.T) {
	for _, name := range []string{"", ToolkitHeadless} {
		tk, err := OpenToolkit(name)
		require.NoError(t, err)
		assert.Equal(t, ToolkitHeadless, tk.Name())
		assert.False(t, tk.Display())
		tk.Close()
	}
}

func TestOpenToolkit_UnknownName(t *testing.T) {
	_, err := OpenToolkit("qt")
	require.ErrorIs(t, err, ErrUnknownToolkit)
	assert.Contains(t, err.Error(), `"qt"`)
	assert.Contains(t, err.Error(), ToolkitHeadless)
}

func TestOpenToolkit_OpenFailure(t *testing.T) {
	boom := errors.New("no display")
	RegisterToolkit("broken", func() (Toolkit, error) { return nil, boom })
	t.Cleanup(func() {
		toolkitsMu.Lock()
		delete(toolkits, "broken")
		toolkitsMu.Unlock()
	})

	assert.Contains(t, ToolkitNames(), "broken")
	_, err := OpenToolkit("broken")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "open broken toolkit")
}

func TestHeadlessToolkit_RunUntilQuit(t *testing.T) {
	tk := NewHeadlessToolkit()

	ran := false
	tk.Invoke(func() { ran = true })
	assert.True(t, ran, "invoke runs inline")

	done := make(chan error, 1)
	go func() { done <- tk.Run(context.Background()) }()
	tk.Quit()
	tk.Quit()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestHeadlessToolkit_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, NewHeadlessToolkit().Run(ctx))
}

func TestNewSession_UsesToolkitHost(t *testing.T) {
	ctx := testCtx()
	tk := NewHeadlessToolkit()
	session, err := NewSession(ctx, config.DefaultConfig(), theme.NewBuiltinRegistry(), layoutfile.Default(), WithToolkit(tk))
	require.NoError(t, err)
	t.Cleanup(func() { session.Close(ctx) })

	assert.Equal(t, 1200, session.Host.GetAllocatedWidth())
	assert.Equal(t, 720, session.Host.GetAllocatedHeight())
	assert.NotEmpty(t, session.Host.Children())
}
