package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autokeys/internal/keystroke"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AUTOKEYS_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ctrl", c.Keys.Baseline)
	assert.Equal(t, "auto", c.Keys.Style)
	assert.Equal(t, "classic", c.UI.Theme)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, filepath.Join(home, ".local", "share", "autokeys", "history.db"), c.Store.Path)

	mod, err := c.Baseline()
	require.NoError(t, err)
	assert.Equal(t, tcell.ModCtrl, mod)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "autokeys.yaml")
	data := "keys:\n  baseline: meta\n  style: glyph\nui:\n  theme: plain\nstore:\n  path: /tmp/h.db\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	mod, err := c.Baseline()
	require.NoError(t, err)
	assert.Equal(t, tcell.ModMeta, mod)

	style, err := c.Style()
	require.NoError(t, err)
	assert.Equal(t, keystroke.StyleGlyph, style)
	assert.Equal(t, "plain", c.UI.Theme)
	assert.Equal(t, "/tmp/h.db", c.Store.Path)
}

func TestLoadHomeConfig(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "autokeys")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n"), 0o644))

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("AUTOKEYS_KEYS_STYLE", "text")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "text", c.Keys.Style)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("AUTOKEYS_KEYS_BASELINE", "hyper")
	_, err = Load("")
	assert.ErrorContains(t, err, "keys.baseline")
}
