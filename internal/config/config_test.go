package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	cfgYAML := `
server:
  addr: "0.0.0.0:9090"
  shutdown_timeout: 5s
log:
  level: debug
screen:
  default_policy: deny
  quota:
    capacity: 100
    window: 30s
  allow:
    - 10.0.0.0/8
  deny:
    - 203.0.113.0/24
    - fe80::/10
`
	cfg, err := Load(writeConfig(t, cfgYAML))
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:9090", cfg.Server.Addr)
	require.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "deny", cfg.Screen.DefaultPolicy)
	require.Equal(t, uint(100), cfg.Screen.Quota.Capacity)
	require.Equal(t, 30*time.Second, cfg.Screen.Quota.Window)
	require.Equal(t, []string{"10.0.0.0/8"}, cfg.Screen.Allow)
	require.Equal(t, []string{"203.0.113.0/24", "fe80::/10"}, cfg.Screen.Deny)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log:\n  level: warn\n"))
	require.NoError(t, err)

	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, Default().Server, cfg.Server)
	require.Equal(t, Default().Screen, cfg.Screen)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [addr\n"))
		require.Error(t, err)
	})

	t.Run("bad policy", func(t *testing.T) {
		_, err := Load(writeConfig(t, "screen:\n  default_policy: maybe\n"))
		require.Error(t, err)
	})

	t.Run("empty addr", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  addr: \"\"\n"))
		require.Error(t, err)
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
