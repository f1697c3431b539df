package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearLLMEnv blanks every variable the resolver consults.
func clearLLMEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SMARTANKI_LLM_PROVIDER", "")
	for _, v := range vendors {
		t.Setenv(v.discoverEnv, "")
		for _, suffix := range []string{"API_KEY", "MODEL", "BASE_URL"} {
			t.Setenv("SMARTANKI_"+v.envName+"_"+suffix, "")
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("SMARTANKI_LLM_PROVIDER", "openrouter")
	t.Setenv("SMARTANKI_OPENROUTER_API_KEY", "sk-or")
	t.Setenv("SMARTANKI_OPENROUTER_MODEL", "meta-llama/llama-3-8b")

	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "sk-or", cfg.APIKey)
	assert.Equal(t, "meta-llama/llama-3-8b", cfg.Model)
	assert.Equal(t, DefaultRetry(), cfg.Retry)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnvDefaultsModel(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("SMARTANKI_LLM_PROVIDER", "anthropic")

	cfg := ConfigFromEnv()
	assert.Equal(t, "claude-sonnet", cfg.Model)
	assert.EqualError(t, cfg.Validate(), "SMARTANKI_ANTHROPIC_API_KEY is required for the anthropic provider")
}

func TestResolveConfig(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		clearLLMEnv(t)
		_, ok := ResolveConfig()
		assert.False(t, ok)
	})

	t.Run("discovery order", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
		t.Setenv("OPENAI_API_KEY", "sk-oai")
		cfg, ok := ResolveConfig()
		require.True(t, ok)
		assert.Equal(t, ProviderOpenAI, cfg.Provider)
		assert.Equal(t, "sk-oai", cfg.APIKey)
		assert.Equal(t, "gpt-4o-mini", cfg.Model)
	})

	t.Run("explicit provider without key", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("SMARTANKI_LLM_PROVIDER", "anthropic")
		t.Setenv("ANTHROPIC_API_KEY", "ignored")
		_, ok := ResolveConfig()
		assert.False(t, ok)
	})

	t.Run("mock", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("SMARTANKI_LLM_PROVIDER", "mock")
		cfg, ok := ResolveConfig()
		require.True(t, ok)
		assert.Equal(t, ProviderMock, cfg.Provider)
	})
}

func TestValidateUnknownProvider(t *testing.T) {
	err := Config{Provider: "llama-box", APIKey: "k"}.Validate()
	assert.EqualError(t, err, `unknown LLM provider "llama-box"`)
}

func TestVendorAliases(t *testing.T) {
	tests := []struct {
		vendor, in, want string
	}{
		{ProviderAnthropic, "claude-sonnet", "claude-sonnet-4-5"},
		{ProviderAnthropic, "claude-haiku", "claude-haiku-4-5"},
		{ProviderAnthropic, "claude-opus-4-1", "claude-opus-4-1"},
		{ProviderGemini, "gemini-flash", "gemini-2.5-flash"},
		{ProviderOpenAI, "gpt-4o", "gpt-4o"},
	}
	for _, tt := range tests {
		v, ok := lookupVendor(tt.vendor)
		require.True(t, ok)
		assert.Equal(t, tt.want, v.resolveModel(tt.in))
	}
}

func TestNewProviderFromEnv(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		clearLLMEnv(t)
		p, err := NewProviderFromEnv(ctx, nil, nil)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("misconfigured", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("SMARTANKI_LLM_PROVIDER", "gemini")
		p, err := NewProviderFromEnv(ctx, nil, nil)
		assert.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("openai", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-test")
		p, err := NewProviderFromEnv(ctx, nil, nil)
		require.NoError(t, err)
		assert.IsType(t, &RetryProvider{}, p)
		assert.Equal(t, "gpt-4o-mini", p.ModelID())
	})
}
