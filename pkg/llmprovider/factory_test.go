package llmprovider

import (
	"errors"
	"testing"

	"smart-task-manager/config"
)

func TestInitializeProviders_SortsByPriority(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash", Timeout: "5s"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "o", Model: "gpt-4o-mini"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "d", Model: "deepseek-chat"},
		},
	}

	providers, err := InitializeProviders(cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got: %d", len(providers))
	}
	if providers[0].Name() != "openai" || providers[1].Name() != "gemini" {
		t.Errorf("Unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProviders_SkipsBrokenProvider(t *testing.T) {
	logger := &mockLogger{}
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "unknown", Enabled: true, Priority: 1, APIKey: "x", Model: "m"},
			{Name: "alibaba", Enabled: true, Priority: 2, APIKey: "q", Model: "qwen-plus"},
		},
	}

	providers, err := InitializeProviders(cfg, logger)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "qwen" {
		t.Fatalf("Expected only qwen, got: %v", providers)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "openai", Enabled: false, Priority: 1, APIKey: "o", Model: "gpt-4o-mini"},
		},
	}

	if _, err := InitializeProviders(cfg, &mockLogger{}); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestInitializeProviders_MissingKey(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-4o-mini"},
		},
	}

	if _, err := InitializeProviders(cfg, &mockLogger{}); err == nil {
		t.Fatal("Expected error when no provider could be created, got nil")
	}
}

func TestNewManagerFromConfig(t *testing.T) {
	cfg := &config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "250ms",
		MaxTotalTimeout: "10s",
		Providers: []config.ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "o", Model: "gpt-4o-mini"},
		},
	}

	m, err := NewManagerFromConfig(cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if m.config.RetryDelay.Milliseconds() != 250 || m.config.MaxTotalTimeout.Seconds() != 10 {
		t.Errorf("Unexpected manager config: %+v", m.config)
	}
	if m.Name() != "openai" || m.Model() != "gpt-4o-mini" {
		t.Errorf("Unexpected manager identity: %s/%s", m.Name(), m.Model())
	}
}
