package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("rejects empty name", func(t *testing.T) {
		_, err := New("", "", &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("tags lines with the component name", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SESSION-MANAGER", "", &buf)
		require.NoError(t, err)

		l.Info("started game 1")
		l.Warning("slow generation")
		l.Error("boom")

		out := buf.String()
		assert.Contains(t, out, "[SESSION-MANAGER] started game 1")
		assert.Contains(t, out, "level=info")
		assert.Contains(t, out, "level=warning")
		assert.Contains(t, out, "level=error")
	})

	t.Run("debug is filtered until enabled", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "\033[32m", &buf)
		require.NoError(t, err)

		l.Debug("hidden")
		assert.Empty(t, buf.String())

		require.NoError(t, l.SetLevel("debug"))
		l.Debug("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		l, err := New("APP", "", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Error(t, l.SetLevel("loud"))
	})
}
