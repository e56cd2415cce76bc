package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "cia-app-store", cfg.Storage.AppKey)
	assert.Equal(t, "finance-storage", cfg.Storage.FinanceKey)
	assert.Equal(t, "theme-storage", cfg.Storage.ThemeKey)
	assert.False(t, cfg.AuthEnabled())
	assert.Same(t, cfg, Get())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 9100\nbackup:\n  dir: /tmp/hhl-backups\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("HHL_SERVER_ADDRESS", "0.0.0.0")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, "/tmp/hhl-backups", cfg.Backup.Dir)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
