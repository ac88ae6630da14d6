package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8087", cfg.Server.Addr())
	require.Equal(t, "resetapad.db", cfg.Database.Path)
	require.Equal(t, "/assets", cfg.Assets.Prefix)
	require.Equal(t, "classic", cfg.Theme.Default)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  host: 0.0.0.0\n  port: 9000\ndatabase:\n  path: /tmp/test.db\ntheme:\n  default: warm\n  variant: soft\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	require.Equal(t, "/tmp/test.db", cfg.Database.Path)
	require.Equal(t, "warm", cfg.Theme.Default)
	require.Equal(t, "soft", cfg.Theme.Variant)
	// Untouched keys keep their defaults.
	require.Equal(t, "/assets", cfg.Assets.Prefix)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RESETAPAD_SERVER_PORT", "9191")
	t.Setenv("RESETAPAD_THEME_DEFAULT", "modern")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Server.Port)
	require.Equal(t, "modern", cfg.Theme.Default)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("RESETAPAD_SERVER_PORT", "70000")

	_, err := Load("")
	require.Error(t, err)
}
