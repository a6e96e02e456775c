package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://myq.thomasmunduchira.com", cfg.Endpoint)
	assert.Equal(t, 2250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "Chamberlain/LiftMaster", cfg.ManufacturerName)
	assert.Equal(t, "MyQ Service", cfg.DependentServiceName)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "endpoint: http://vendor.local\nrequest_timeout: 3s\nlogging:\n  level: debug\n  format: text\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	t.Setenv("MYQ_LISTEN_ADDR", ":9090")
	t.Setenv("MYQ_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://vendor.local", cfg.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Endpoint: "", RequestTimeout: time.Second}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Endpoint: "http://x", RequestTimeout: 0}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Endpoint: "http://x", RequestTimeout: time.Second}
	assert.NoError(t, cfg.Validate())
}
