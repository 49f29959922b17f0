package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contentkit/pkg/translate"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := translate.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, translate.BackendOffline, cfg.Backend)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TRANSLATE_BACKEND", "llm")
	t.Setenv("TRANSLATE_API_KEY", "secret")
	t.Setenv("TRANSLATE_BASE_URL", "https://llm.internal")
	t.Setenv("TRANSLATE_MODEL", "test-model")

	cfg, err := translate.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, translate.BackendLLM, cfg.Backend)
	assert.Equal(t, "secret", cfg.Credential)
	assert.Equal(t, "https://llm.internal", cfg.BaseURL)
	assert.Equal(t, "test-model", cfg.Model)
}
