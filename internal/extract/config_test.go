package extract

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.Anthropic.APIKey = "k" }, false},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"openai with key", func(c *Config) { c.Provider = "openai"; c.OpenAI.APIKey = "k" }, false},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, true},
		{"gemini with key", func(c *Config) { c.Provider = "gemini"; c.Gemini.APIKey = "k" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "cohere" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CREDEVAL_LLM_PROVIDER", "gemini")
	t.Setenv("CREDEVAL_GEMINI_API_KEY", "test-key")
	t.Setenv("CREDEVAL_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "test-key" || cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("Gemini config = %+v", cfg.Gemini)
	}
	// Unset values keep their defaults.
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("OpenAI model default = %q", cfg.OpenAI.Model)
	}
}
