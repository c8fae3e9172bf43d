package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	t.Setenv("AI_GATEWAY_API_KEY", "")

	c, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "gateway", c.AI.Provider)
	assert.Equal(t, c.AI.DefaultModel, c.AI.FastModel)
	assert.False(t, c.AI.Configured())
	assert.True(t, c.Images.Pexels.IsEnabled())
	assert.Equal(t, 160, c.Content.ExcerptLength)
	assert.Equal(t, "pt-BR", c.Content.Locale)
}

func TestLoadYAMLThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yml := `
ai:
  default_model: openai/gpt-4o
  max_tokens: 512
images:
  unsplash:
    enabled: false
content:
  excerpt_length: 200
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte(yml), 0o600))

	t.Setenv("AI_GATEWAY_API_KEY", "sk-test")
	t.Setenv("AI_DEFAULT_TEMPERATURE", "0.2")
	t.Setenv("PEXELS_API_KEY", "px")
	t.Setenv("PIXABAY_ENABLED", "false")

	c, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, c.AI.Configured())
	assert.Equal(t, "openai/gpt-4o", c.AI.DefaultModel)
	assert.Equal(t, 512, c.AI.MaxTokens)
	assert.InDelta(t, 0.2, c.AI.Temperature, 1e-9)
	assert.Equal(t, "px", c.Images.Pexels.APIKey)
	assert.False(t, c.Images.Unsplash.IsEnabled())
	assert.False(t, c.Images.Pixabay.IsEnabled())
	assert.Equal(t, 200, c.Content.ExcerptLength)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("AI_DEFAULT_MAX_TOKENS", "lots")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "AI_DEFAULT_MAX_TOKENS")
}
