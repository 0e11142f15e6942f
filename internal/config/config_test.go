package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/teams",
		"standard_model": "gemini-2.5-flash-lite"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/teams", cfg.DatabaseURL)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.StandardModel)
	assert.Empty(t, cfg.AdvancedModel)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfigFile(t, `{"port": `)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := &Config{Port: 8080}
	assert.NoError(t, valid.Validate())

	zero := &Config{}
	assert.NoError(t, zero.Validate())

	negative := &Config{Port: -1}
	assert.Error(t, negative.Validate())

	tooHigh := &Config{Port: 70000}
	assert.Error(t, tooHigh.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/teams")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{}
	cfg.ApplyEnv()
	assert.Equal(t, "postgres://env/teams", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)

	// File values win over the environment.
	cfg = &Config{DatabaseURL: "postgres://file/teams", APIKey: "file-key"}
	cfg.ApplyEnv()
	assert.Equal(t, "postgres://file/teams", cfg.DatabaseURL)
	assert.Equal(t, "file-key", cfg.APIKey)
}
