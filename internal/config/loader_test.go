package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))

	def := Default()
	assert.Equal(t, def.Storage, cfg.Storage)
	assert.Equal(t, def.Server.Address, cfg.Server.Address)
	assert.Equal(t, def.Server.IdleTimeout, cfg.Server.IdleTimeout)
	assert.Empty(t, cfg.Share.URL)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
storage:
  path: /tmp/custom.db
  top_limit: 3
share:
  url: https://example.com/2048
server:
  address: ":2222"
  idle_timeout: 5m
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Storage.Path)
	assert.Equal(t, 3, cfg.Storage.TopLimit)
	assert.Equal(t, "https://example.com/2048", cfg.Share.URL)
	assert.Equal(t, ":2222", cfg.Server.Address)
	assert.Equal(t, 5*time.Minute, cfg.Server.IdleTimeout)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("share:\n  url: https://x.y\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://x.y", cfg.Share.URL)
	assert.Equal(t, Default().Storage.TopLimit, cfg.Storage.TopLimit)
	assert.Equal(t, Default().Server.Address, cfg.Server.Address)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvDBPath, "/var/lib/t2048.db")
	t.Setenv(EnvTopLimit, "25")
	t.Setenv(EnvShareURL, "https://play.example")
	t.Setenv(EnvSSHAddr, ":2323")
	t.Setenv(EnvHostKey, "/etc/t2048/key")
	t.Setenv(EnvIdleTimeout, "90s")

	cfg := Default()
	require.NoError(t, applyEnv(&cfg))

	assert.Equal(t, "/var/lib/t2048.db", cfg.Storage.Path)
	assert.Equal(t, 25, cfg.Storage.TopLimit)
	assert.Equal(t, "https://play.example", cfg.Share.URL)
	assert.Equal(t, ":2323", cfg.Server.Address)
	assert.Equal(t, "/etc/t2048/key", cfg.Server.HostKeyPath)
	assert.Equal(t, 90*time.Second, cfg.Server.IdleTimeout)
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Run("top limit", func(t *testing.T) {
		t.Setenv(EnvTopLimit, "many")
		cfg := Default()
		assert.Error(t, applyEnv(&cfg))
	})

	t.Run("idle timeout", func(t *testing.T) {
		t.Setenv(EnvIdleTimeout, "forever")
		cfg := Default()
		assert.Error(t, applyEnv(&cfg))
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/.t2048/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".t2048", "scores.db"), got)

	got, err = ExpandHome("/abs/path.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path.db", got)
}
