package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 25, settings.MaxSteps)
	assert.Equal(t, 4*time.Second, settings.Detection.BatchTimeout())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `max_steps: 10
use_vision: true
detection:
  max_depth: 12
  workers: 2
  window_timeout_ms: 500
cache:
  tree_ttl_ms: 1500
no_refresh_actions:
  - Wait Tool
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, settings.MaxSteps)
	assert.True(t, settings.UseVision)
	assert.Equal(t, 12, settings.Detection.MaxDepth)
	assert.Equal(t, 2, settings.Detection.Workers)
	assert.Equal(t, 500*time.Millisecond, settings.Detection.WindowTimeout())
	assert.Equal(t, 1500*time.Millisecond, settings.Cache.TreeTTL())
	assert.Equal(t, []string{"Wait Tool"}, settings.NoRefreshActions)

	// Untouched sections keep their defaults.
	assert.Equal(t, 4*time.Second, settings.Detection.BatchTimeout())
	assert.Equal(t, 2*time.Second, settings.Cache.AppsTTL())
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps: [nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
