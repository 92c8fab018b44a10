package config

import "os"

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-1.5-flash"
)

type GeminiConfig struct {
	BaseURL string
	ApiKey  string
	Model   string
}

// GetGeminiConfig never fails: the endpoint and model have defaults and a
// missing key is reported through Warnings instead of blocking startup.
func GetGeminiConfig() *GeminiConfig {
	baseURL := os.Getenv("GEMINI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiConfig{
		BaseURL: baseURL,
		ApiKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   model,
	}
}

func (c *GeminiConfig) Warnings() []string {
	if c.ApiKey == "" {
		return []string{"GEMINI_API_KEY is not set; blueprint generation will fail"}
	}
	return nil
}
