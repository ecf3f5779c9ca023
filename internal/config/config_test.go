package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.MonitorInterval)
	assert.Equal(t, 60*time.Second, cfg.TemplateListTTL)
	assert.NotEmpty(t, cfg.StateDir)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MAILVET_API_URL", "https://review.example/api")
	t.Setenv("MAILVET_STATE_DIR", "/tmp/mailvet-test")
	t.Setenv("MAILVET_REQUEST_TIMEOUT", "3s")
	t.Setenv("MAILVET_MONITOR_INTERVAL", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://review.example/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/mailvet-test", cfg.StateDir)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.MonitorInterval)
}

func TestDerivedPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MAILVET_STATE_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cache.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "token"), cfg.TokenPath)
	assert.Equal(t, filepath.Join(dir, "debug.log"), cfg.LogPath)
}
