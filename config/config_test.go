package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

const sampleYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "127.0.0.1"
  port: 3306
  username: yaml_user
  password: yaml_pass
  database: ngo_discovery
  parse_time: true
recommend:
  default_limit: 7
ai:
  enabled: true
  base_url: "https://api.example.com/v1"
  model: "test-model"
`

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleYAML), 0644))
	chdir(t, dir)

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "yaml_user:yaml_pass@tcp(127.0.0.1:3306)/ngo_discovery?charset=utf8mb4&parseTime=true", cfg.DB.DSN)
	assert.Equal(t, 7, cfg.Recommend.DefaultLimit)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, 5, cfg.AI.TimeoutSec, "timeout default applied")
	assert.Equal(t, 50, cfg.Recommend.MaxLimit, "max limit default applied")
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleYAML), 0644))
	chdir(t, dir)
	t.Setenv("DATABASE_PASSWORD", "from_env")
	t.Setenv("AI_API_KEY", "secret_key")

	cfg := Load()

	assert.Contains(t, cfg.DB.DSN, "yaml_user:from_env@")
	assert.Equal(t, "secret_key", cfg.AI.APIKey)
}

func TestLoad_WithoutYAMLFallsBackToEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AI_ENABLED", "true")
	t.Setenv("AI_BASE_URL", "https://api.example.com/v1")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "https://api.example.com/v1", cfg.AI.BaseURL)
	assert.Equal(t, 5, cfg.Recommend.DefaultLimit)
}
