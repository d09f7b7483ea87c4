package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Admin:  AdminConfig{Token: "test-admin-token"},
		Session: SessionConfig{
			InitialVolume:  0.5,
			IdleTimeoutSec: 1800,
			MaxSessions:    64,
			EventBuffer:    64,
		},
		Engine: EngineConfig{Type: EngineSimulated},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing admin token",
			mutate:  func(c *Config) { c.Admin.Token = "" },
			wantErr: true,
			errMsg:  "Token",
		},
		{
			name:    "volume above one",
			mutate:  func(c *Config) { c.Session.InitialVolume = 1.5 },
			wantErr: true,
			errMsg:  "InitialVolume",
		},
		{
			name:    "negative volume",
			mutate:  func(c *Config) { c.Session.InitialVolume = -0.1 },
			wantErr: true,
			errMsg:  "InitialVolume",
		},
		{
			name:    "unknown engine type",
			mutate:  func(c *Config) { c.Engine.Type = "vlc" },
			wantErr: true,
			errMsg:  "Type",
		},
		{
			name:    "zero max sessions",
			mutate:  func(c *Config) { c.Session.MaxSessions = 0 },
			wantErr: true,
			errMsg:  "MaxSessions",
		},
		{
			name:    "muted volume is allowed",
			mutate:  func(c *Config) { c.Session.InitialVolume = 0 },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr {
				require.Error(t, err, "expected validation to fail")
				assert.Contains(t, err.Error(), tt.errMsg,
					"error message should mention the problematic field")
			} else {
				assert.NoError(t, err, "expected validation to pass")
			}
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("ENGINE_TYPE", "")

	cfg, err := Parse([]byte("admin:\n  token: secret\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 0.5, cfg.Session.InitialVolume)
	assert.Equal(t, 1800, cfg.Session.IdleTimeoutSec)
	assert.Equal(t, 64, cfg.Session.MaxSessions)
	assert.Equal(t, 64, cfg.Session.EventBuffer)
	assert.Equal(t, EngineSimulated, cfg.Engine.Type)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout())
}

func TestParse_ExplicitZeroKept(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("ENGINE_TYPE", "")

	yml := `
admin:
  token: secret
session:
  initial_volume: 0
  idle_timeout_sec: 0
`
	cfg, err := Parse([]byte(yml))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Session.InitialVolume)
	assert.Equal(t, time.Duration(0), cfg.IdleTimeout())
}

func TestParse_EnvOverride(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "from-env")
	t.Setenv("ENGINE_TYPE", "remote")

	yml := `
admin:
  token: from-file
engine:
  type: local
`
	cfg, err := Parse([]byte(yml))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Admin.Token)
	assert.Equal(t, EngineRemote, cfg.Engine.Type)
}

func TestParse_EngineSettings(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("ENGINE_TYPE", "")

	yml := `
admin:
  token: secret
engine:
  type: simulated
  settings:
    default_duration_sec: 90
    progress_interval_ms: 100
`
	cfg, err := Parse([]byte(yml))
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Engine.Settings["default_duration_sec"])
	assert.Equal(t, 100, cfg.Engine.Settings["progress_interval_ms"])
}

func TestLoad(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("ENGINE_TYPE", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin:\n  token: abc\nserver:\n  addr: \":9090\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "abc", cfg.Admin.Token)
}

func TestParse_Invalid(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("ENGINE_TYPE", "")

	_, err := Parse([]byte("admin: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")

	_, err = Parse([]byte("session:\n  initial_volume: 0.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
