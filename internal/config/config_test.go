package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GEMINI_API_KEY", "DATABASE_URL", "PORT", "OUTPUT_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultTimeout, cfg.AITimeout())
	assert.Empty(t, cfg.APIKey)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 8080,
		"api_key": "file-key",
		"database_url": "postgres://localhost/bryanai",
		"timeout": 120,
		"allowed_origins": ["http://localhost:5173"]
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/bryanai", cfg.DatabaseURL)
	assert.Equal(t, 120*time.Second, cfg.AITimeout())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key": "file-key", "port": 8080}`), 0o644))

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("OUTPUT_DIR", "/tmp/artifacts")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "/tmp/artifacts", cfg.OutputDir)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port":`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{APIKey: "k", DatabaseURL: "postgres://localhost/db", Port: 3001}
	assert.NoError(t, cfg.Validate())

	missingKey := *cfg
	missingKey.APIKey = ""
	assert.ErrorContains(t, missingKey.Validate(), "GEMINI_API_KEY")

	missingDB := *cfg
	missingDB.DatabaseURL = ""
	assert.ErrorContains(t, missingDB.Validate(), "DATABASE_URL")

	badPort := *cfg
	badPort.Port = 70000
	assert.ErrorContains(t, badPort.Validate(), "out of range")
}
