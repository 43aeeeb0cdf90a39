package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.False(t, cfg.PersistGroups)
	assert.False(t, cfg.PersistEvents)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "masterbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
backend: redis
redis:
  addr: "cache:6379"
  db: 2
persist_groups: true
write_timeout: 2s
`), 0o644))

	t.Setenv("REDIS_PREFIX", "test:")
	t.Setenv("PERSIST_EVENTS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "test:", cfg.Redis.Prefix)
	assert.True(t, cfg.PersistGroups)
	assert.True(t, cfg.PersistEvents)
	assert.Equal(t, 2*time.Second, cfg.WriteTimeout)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("PERSIST_GROUPS", "maybe")
	t.Setenv("WRITE_TIMEOUT", "soon")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PERSIST_GROUPS")
	assert.Contains(t, err.Error(), "WRITE_TIMEOUT")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"memory", func(c *Config) { c.Backend = BackendMemory; c.DBPath = "" }, false},
		{"unknown backend", func(c *Config) { c.Backend = "postgres" }, true},
		{"sqlite without path", func(c *Config) { c.DBPath = "" }, true},
		{"redis without addr", func(c *Config) { c.Backend = BackendRedis; c.Redis.Addr = "" }, true},
		{"zero timeout", func(c *Config) { c.WriteTimeout = 0 }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}
