package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in SMARTANKI_LLM_PROVIDER.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects one vendor and how to reach it.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Retry    RetryConfig
	Timeout  time.Duration
}

// vendor describes one provider's environment and defaults. discoverEnv is
// the vendor's own key variable, probed when no provider is named.
type vendor struct {
	name         string
	envName      string
	discoverEnv  string
	defaultModel string
	aliases      map[string]string
}

// vendors is in discovery order.
var vendors = []vendor{
	{
		name: ProviderGemini, envName: "GEMINI", discoverEnv: "GEMINI_API_KEY",
		defaultModel: "gemini-flash",
		aliases:      map[string]string{"gemini-flash": "gemini-2.5-flash", "gemini-pro": "gemini-2.5-pro"},
	},
	{
		name: ProviderOpenAI, envName: "OPENAI", discoverEnv: "OPENAI_API_KEY",
		defaultModel: "gpt-4o-mini",
	},
	{
		name: ProviderAnthropic, envName: "ANTHROPIC", discoverEnv: "ANTHROPIC_API_KEY",
		defaultModel: "claude-sonnet",
		aliases:      map[string]string{"claude-sonnet": "claude-sonnet-4-5", "claude-haiku": "claude-haiku-4-5"},
	},
	{
		name: ProviderOpenRouter, envName: "OPENROUTER", discoverEnv: "OPENROUTER_API_KEY",
		defaultModel: "google/gemini-2.5-flash",
	},
}

func lookupVendor(name string) (vendor, bool) {
	for _, v := range vendors {
		if v.name == name {
			return v, true
		}
	}
	return vendor{}, false
}

// resolveModel expands a friendly alias; unknown names pass through.
func (v vendor) resolveModel(name string) string {
	if id, ok := v.aliases[name]; ok {
		return id
	}
	return name
}

// DefaultRetry is three attempts, 1s doubling to 10s.
func DefaultRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Second, MaxWait: 10 * time.Second, Multiplier: 2}
}

func newConfig(v vendor) Config {
	return Config{Provider: v.name, Model: v.defaultModel, Retry: DefaultRetry(), Timeout: 60 * time.Second}
}

// ConfigFromEnv reads SMARTANKI_LLM_PROVIDER and that vendor's
// SMARTANKI_<VENDOR>_API_KEY, _MODEL and _BASE_URL.
func ConfigFromEnv() Config {
	name := os.Getenv("SMARTANKI_LLM_PROVIDER")
	if name == ProviderMock {
		return Config{Provider: ProviderMock, Retry: DefaultRetry()}
	}
	v, ok := lookupVendor(name)
	if !ok {
		return Config{Provider: name, Retry: DefaultRetry()}
	}
	cfg := newConfig(v)
	prefix := "SMARTANKI_" + v.envName + "_"
	cfg.APIKey = os.Getenv(prefix + "API_KEY")
	if m := os.Getenv(prefix + "MODEL"); m != "" {
		cfg.Model = m
	}
	cfg.BaseURL = os.Getenv(prefix + "BASE_URL")
	return cfg
}

// DiscoverConfig returns the first vendor whose own key variable is set.
func DiscoverConfig() (Config, bool) {
	for _, v := range vendors {
		if k := os.Getenv(v.discoverEnv); k != "" {
			cfg := newConfig(v)
			cfg.APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig prefers an explicit SMARTANKI_LLM_PROVIDER and otherwise
// falls back to discovery. ok is false when nothing usable is set.
func ResolveConfig() (Config, bool) {
	if os.Getenv("SMARTANKI_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		return cfg, cfg.Validate() == nil
	}
	return DiscoverConfig()
}

// Validate checks the provider name and that a key is present.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	v, ok := lookupVendor(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("SMARTANKI_%s_API_KEY is required for the %s provider", v.envName, v.name)
	}
	return nil
}
