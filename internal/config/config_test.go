package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	l := NewLoader("")
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "disk", cfg.Storage.Backend)
	assert.Equal(t, 10, cfg.Search.StructuralLimit)
	assert.Equal(t, 20, cfg.Search.TextLimit)
	assert.InDelta(t, 50, cfg.Search.TextThreshold, 0.001)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  port: 9090
database:
  dir: /data/glycans
search:
  text_threshold: 60
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/data/glycans", cfg.Database.Dir)
	assert.InDelta(t, 60, cfg.Search.TextThreshold, 0.001)
	// untouched keys keep defaults
	assert.Equal(t, "GLYCOSHAPE.json", cfg.Database.CatalogFile)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GLYCOSHAPE_SERVER_PORT", "7070")
	t.Setenv("GLYCOSHAPE_DATABASE_DIR", "/env/db")

	cfg, err := NewLoader("").Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/env/db", cfg.Database.Dir)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		l := NewLoader("")
		cfg, err := l.Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "missing database dir",
			mutate:  func(c *Config) { c.Database.Dir = "" },
			wantErr: "database.dir",
		},
		{
			name:    "unknown storage backend",
			mutate:  func(c *Config) { c.Storage.Backend = "tape" },
			wantErr: "storage.backend",
		},
		{
			name: "minio backend without endpoint",
			mutate: func(c *Config) {
				c.Storage.Backend = "minio"
				c.Storage.Minio.Endpoint = ""
			},
			wantErr: "storage.minio.endpoint",
		},
		{
			name: "redis enabled without addr",
			mutate: func(c *Config) {
				c.Redis.Enabled = true
				c.Redis.Addr = ""
			},
			wantErr: "redis.addr",
		},
		{
			name:    "non-positive structural limit",
			mutate:  func(c *Config) { c.Search.StructuralLimit = 0 },
			wantErr: "structural_limit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
