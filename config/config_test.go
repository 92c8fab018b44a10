package config

import (
	"strings"
	"testing"
)

func TestGetGeminiConfig_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_BASE_URL", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg := GetGeminiConfig()
	if cfg.BaseURL != "https://generativelanguage.googleapis.com" {
		t.Errorf("unexpected base url: %s", cfg.BaseURL)
	}
	if cfg.Model != "gemini-1.5-flash" {
		t.Errorf("unexpected model: %s", cfg.Model)
	}
	if cfg.ApiKey != "test-key" {
		t.Errorf("unexpected api key: %s", cfg.ApiKey)
	}
	if warnings := cfg.Warnings(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestGetGeminiConfig_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-pro")

	cfg := GetGeminiConfig()
	if cfg.BaseURL != "http://localhost:9090" {
		t.Errorf("unexpected base url: %s", cfg.BaseURL)
	}
	if cfg.Model != "gemini-2.0-pro" {
		t.Errorf("unexpected model: %s", cfg.Model)
	}
}

func TestGetCreatomateConfig_Defaults(t *testing.T) {
	t.Setenv("CREATOMATE_API_KEY", "test-key")
	t.Setenv("CREATOMATE_IMAGE_URL", "")
	t.Setenv("CREATOMATE_RENDER_URL", "")

	cfg := GetCreatomateConfig()
	if cfg.ImageURL != "https://creatomate.com/api/v1/images" {
		t.Errorf("unexpected image url: %s", cfg.ImageURL)
	}
	if cfg.RenderURL != "https://api.creatomate.com/v1/renders" {
		t.Errorf("unexpected render url: %s", cfg.RenderURL)
	}
	if warnings := cfg.Warnings(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestGetServerConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MOCK_MODE", "")

	cfg := GetServerConfig()
	if cfg.Addr != ":8080" {
		t.Errorf("unexpected addr: %s", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unexpected log level: %s", cfg.LogLevel)
	}
	if cfg.MockMode {
		t.Error("mock mode should be off by default")
	}
}

func TestGetServerConfig_MockMode(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("MOCK_MODE", "true")

	cfg := GetServerConfig()
	if cfg.Addr != ":3000" {
		t.Errorf("unexpected addr: %s", cfg.Addr)
	}
	if !cfg.MockMode {
		t.Error("mock mode should be on")
	}
}

func TestCollectWarnings_MissingKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CREATOMATE_API_KEY", "")
	t.Setenv("CREATOMATE_TEMPLATE_ID", "")

	warnings := CollectWarnings(GetGeminiConfig(), GetCreatomateConfig(), GetTemplateConfig())
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
	for _, warning := range warnings {
		if !strings.Contains(warning, "is not set") {
			t.Errorf("unexpected warning text: %s", warning)
		}
	}
}

func TestCollectWarnings_AllKeysPresent(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "a")
	t.Setenv("CREATOMATE_API_KEY", "b")
	t.Setenv("CREATOMATE_TEMPLATE_ID", "c")

	warnings := CollectWarnings(GetGeminiConfig(), GetCreatomateConfig(), GetTemplateConfig())
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
