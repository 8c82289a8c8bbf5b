package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MechParse/internal/infrastructure/monitoring/logging"
)

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultServerHost, cfg.Server.Host)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.Server.MaxBodyBytes)
	assert.Equal(t, DefaultParserWorkers, cfg.Parser.Workers)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
	assert.Equal(t, logging.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.Server.Port = 9999
	cfg.Parser.Workers = 16
	cfg.ApplyDefaults()

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 16, cfg.Parser.Workers)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	bad := &Config{}
	bad.ApplyDefaults()
	bad.Server.Port = 70000
	assert.Error(t, bad.Validate())

	badFmt := &Config{}
	badFmt.ApplyDefaults()
	badFmt.Log.Format = "xml"
	assert.Error(t, badFmt.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mechparse.yaml")
	content := `
server:
  port: 9090
  read_timeout: 5s
parser:
  workers: 8
  fail_fast: true
log:
  level: debug
metrics:
  enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 8, cfg.Parser.Workers)
	assert.True(t, cfg.Parser.FailFast)
	assert.Equal(t, logging.LevelDebug, cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	// Unset fields still receive defaults.
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/mechparse.yaml")
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MECHPARSE_SERVER_PORT", "7070")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	cfg := ServerConfig{Host: "127.0.0.1", Port: 8080}
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}
