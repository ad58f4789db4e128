package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/slotkit/internal/errors"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "slotkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, PolicyPermissive, cfg.Layout.Policy)
	assert.Empty(t, cfg.Layout.Required)
	assert.Equal(t, "en", cfg.Render.Lang)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "slotkit", cfg.Metrics.Namespace)
	assert.False(t, cfg.Tracing.Enabled)
	assert.True(t, cfg.Reload.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Path())
	assert.Equal(t, "localhost:3000", cfg.Address())
}

func TestLoadSearchesWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server:\n  port: 4000\n")
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.NotEmpty(t, cfg.Path())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
server:
  host: 0.0.0.0
  port: 8080
layout:
  policy: Strict
  required: [Body, header]
render:
  pretty: true
metrics:
  path: metrics
publish:
  bucket: site
  prefix: pages/
log:
  level: DEBUG
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, PolicyStrict, cfg.Layout.Policy)
	assert.Equal(t, []string{"body", "header"}, cfg.Layout.Required)
	assert.True(t, cfg.Render.Pretty)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "site", cfg.Publish.Bucket)
	assert.Equal(t, "pages/", cfg.Publish.Prefix)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Reload.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "server:\n  port: 4000\n")
	t.Setenv("SLOTKIT_SERVER_PORT", "5000")
	t.Setenv("SLOTKIT_LAYOUT_POLICY", "warn")
	t.Setenv("SLOTKIT_PUBLISH_BUCKET", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, PolicyWarn, cfg.Layout.Policy)
	assert.Equal(t, "from-env", cfg.Publish.Bucket)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		missing  bool
		wantCode string
	}{
		{name: "explicit file missing", missing: true, wantCode: "E101"},
		{name: "malformed yaml", body: "server: [port", wantCode: "E102"},
		{name: "wrong type", body: "server:\n  port: lots\n", wantCode: "E102"},
		{name: "unknown policy", body: "layout:\n  policy: loud\n", wantCode: "E103"},
		{name: "port out of range", body: "server:\n  port: 70000\n", wantCode: "E103"},
		{name: "empty host", body: "server:\n  host: \"\"\n", wantCode: "E103"},
		{name: "bad log level", body: "log:\n  level: trace\n", wantCode: "E103"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "slotkit.yaml")
			if !tt.missing {
				path = writeConfig(t, dir, tt.body)
			}

			cfg, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, tt.wantCode, errors.Code(err))
		})
	}
}

func TestValidateMetricsOnlyWhenEnabled(t *testing.T) {
	cfg := Default()
	cfg.Metrics.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.Metrics.Enabled = false
	assert.NoError(t, cfg.Validate())
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
