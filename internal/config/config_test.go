package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("AI_PROVIDER", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.ChatModel)
	assert.Equal(t, 500, cfg.AI.ChatMaxToken)
	assert.Equal(t, 30*time.Second, cfg.Scrape.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowOrigins)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeConfig(t, `
server:
  port: 9000
  publicOrigin: https://brand.example.com
  sessionTTL: 10m
database:
  driver: postgres
  user: brand
  password: from-file
auth:
  apiKeys:
    alice: key-a
ai:
  provider: gemini
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("PORT", "7000")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("AI_PROVIDER", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "https://brand.example.com", cfg.Server.PublicOrigin)
	assert.Equal(t, 10*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "g-key", cfg.AI.GeminiKey)
	assert.Equal(t, map[string]string{"alice": "key-a"}, cfg.Auth.APIKeys)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENAI_API_KEY=sk-dotenv\n"), 0o600))
	// godotenv does not override variables that are already set
	os.Unsetenv("OPENAI_API_KEY")
	t.Cleanup(func() { os.Unsetenv("OPENAI_API_KEY") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-dotenv", cfg.AI.OpenAIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		patch func(*Config)
		ok    bool
	}{
		{"defaults", func(*Config) {}, true},
		{"bad driver", func(c *Config) { c.Database.Driver = "oracle" }, false},
		{"bad provider", func(c *Config) { c.AI.Provider = "ollama" }, false},
		{"bad origin", func(c *Config) { c.Server.PublicOrigin = "brand.example.com" }, false},
		{"minio without endpoint", func(c *Config) { c.Minio.Enabled = true }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.patch(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load(writeConfig(t, "server: [oops"))
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
