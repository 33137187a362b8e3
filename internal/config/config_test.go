package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "env: dev\nzendesk:\n  company: acme\n")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", conf.Env)
	assert.Equal(t, "acme", conf.Zendesk.Company)
	assert.Equal(t, "gpt-4-1106-preview", conf.OpenAI.Model)
	assert.Equal(t, "9100", conf.Listen.Port)
	assert.False(t, conf.Mongo.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "openai:\n  api_key: from-file\n")
	t.Setenv("OPENAI_API_KEY", "from-env")

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", conf.OpenAI.ApiKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
