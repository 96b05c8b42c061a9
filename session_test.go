package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPrompt drives p on a scripted session and returns its result.
func runPrompt[T any](t *testing.T, p Prompt[T], keys ...Key) (T, error) {
	t.Helper()
	drv := newMockDriver(keys...)
	s := NewSession(drv, NewMinimalTheme())
	require.NoError(t, s.Begin("test"))
	return Run(s, p)
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("begin enters raw mode and hides the cursor", func(t *testing.T) {
		t.Parallel()
		drv := newMockDriver()
		s := NewSession(drv, NewMinimalTheme())
		require.NoError(t, s.Begin("Setup"))
		assert.True(t, drv.rawMode)
		assert.Contains(t, drv.written(), "\x1b[?25l")
		assert.Contains(t, drv.written(), "Setup")
	})

	t.Run("begin twice is a config error", func(t *testing.T) {
		t.Parallel()
		s := NewSession(newMockDriver(), NewMinimalTheme())
		require.NoError(t, s.Begin(""))
		var cfgErr *ConfigError
		assert.ErrorAs(t, s.Begin(""), &cfgErr)
	})

	t.Run("finish restores the terminal and is idempotent", func(t *testing.T) {
		t.Parallel()
		drv := newMockDriver()
		s := NewSession(drv, NewMinimalTheme())
		require.NoError(t, s.Begin(""))
		require.NoError(t, s.Finish("Done"))
		assert.False(t, drv.rawMode)
		assert.Contains(t, drv.written(), "\x1b[?25h")

		before := len(drv.written())
		require.NoError(t, s.Finish("Done"))
		assert.Equal(t, before, len(drv.written()), "second finish writes nothing")
	})

	t.Run("begin releases raw mode when writing fails", func(t *testing.T) {
		t.Parallel()
		drv := newMockDriver()
		drv.writeErr = errors.New("stdout gone")
		s := NewSession(drv, NewMinimalTheme())
		assert.Error(t, s.Begin("Setup"))
		assert.False(t, drv.rawMode)
	})

	t.Run("finish releases raw mode when the outro write fails", func(t *testing.T) {
		t.Parallel()
		drv := newMockDriver()
		s := NewSession(drv, NewMinimalTheme())
		require.NoError(t, s.Begin("Setup"))
		drv.writeErr = errors.New("stdout gone")
		assert.Error(t, s.Finish("Done"))
		assert.False(t, drv.rawMode)
	})

	t.Run("nil theme defaults to minimal", func(t *testing.T) {
		t.Parallel()
		s := NewSession(newMockDriver(), nil)
		assert.NotNil(t, s.theme)
	})
}

func TestSessionRun(t *testing.T) {
	t.Parallel()

	t.Run("submit returns the value and keeps the session open", func(t *testing.T) {
		t.Parallel()
		drv := newMockDriver(append(typed("ok"), enter())...)
		s := NewSession(drv, NewMinimalTheme())
		require.NoError(t, s.Begin(""))

		value, err := Run(s, NewInput("First"))
		require.NoError(t, err)
		assert.Equal(t, "ok", value)
		assert.True(t, drv.rawMode, "session stays raw between prompts")
	})

	t.Run("run without begin starts the session", func(t *testing.T) {
		t.Parallel()
		drv := newMockDriver(Char('y'))
		s := NewSession(drv, NewMinimalTheme())
		value, err := Run(s, NewConfirm("Proceed?"))
		require.NoError(t, err)
		assert.True(t, value)
		assert.True(t, s.started)
	})

	t.Run("cancel tears the session down and returns ErrCancel", func(t *testing.T) {
		t.Parallel()
		drv := newMockDriver(Key{Code: KeyEsc})
		s := NewSession(drv, NewMinimalTheme())
		require.NoError(t, s.Begin(""))

		_, err := Run(s, NewInput("Name"))
		assert.ErrorIs(t, err, ErrCancel)
		assert.False(t, drv.rawMode)
		assert.Contains(t, drv.written(), "canceled")
	})

	t.Run("read failure restores the terminal", func(t *testing.T) {
		t.Parallel()
		readErr := errors.New("tty gone")
		drv := newMockDriver()
		drv.readErr = readErr
		s := NewSession(drv, NewMinimalTheme())
		require.NoError(t, s.Begin(""))

		_, err := Run(s, NewInput("Name"))
		assert.ErrorIs(t, err, readErr)
		assert.False(t, drv.rawMode)
	})

	t.Run("setup failure surfaces before any key is read", func(t *testing.T) {
		t.Parallel()
		drv := newMockDriver()
		s := NewSession(drv, NewMinimalTheme())
		require.NoError(t, s.Begin(""))

		_, err := Run(s, NewSelect[string]("Pick", nil))
		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, 0, drv.pos)
	})

	t.Run("run after finish is a config error", func(t *testing.T) {
		t.Parallel()
		s := NewSession(newMockDriver(), NewMinimalTheme())
		require.NoError(t, s.Begin(""))
		require.NoError(t, s.Finish(""))

		_, err := Run(s, NewInput("Name"))
		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("final frame ends with a newline", func(t *testing.T) {
		t.Parallel()
		drv := newMockDriver(enter())
		s := NewSession(drv, NewMinimalTheme())
		require.NoError(t, s.Begin(""))

		_, err := Run(s, NewInput("Name"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(drv.written(), "\r\n"))
	})
}

func TestSessionMessages(t *testing.T) {
	t.Parallel()

	drv := newMockDriver()
	s := NewSession(drv, NewMinimalTheme())
	require.NoError(t, s.Begin(""))

	require.NoError(t, s.Log("plain"))
	require.NoError(t, s.Info("info"))
	require.NoError(t, s.Warn("warn"))
	require.NoError(t, s.Error("error"))
	require.NoError(t, s.Success("success"))
	require.NoError(t, s.Step("step"))

	out := drv.written()
	for _, want := range []string{"plain", "info", "warn", "error", "success", "step"} {
		assert.Contains(t, out, want)
	}
}
