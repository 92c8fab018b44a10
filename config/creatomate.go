package config

import "os"

const (
	defaultCreatomateImageURL  = "https://creatomate.com/api/v1/images"
	defaultCreatomateRenderURL = "https://api.creatomate.com/v1/renders"
)

type CreatomateConfig struct {
	ApiKey    string
	ImageURL  string
	RenderURL string
}

// GetCreatomateConfig never fails: both endpoints have defaults and a missing
// key is reported through Warnings instead of blocking startup.
func GetCreatomateConfig() *CreatomateConfig {
	imageURL := os.Getenv("CREATOMATE_IMAGE_URL")
	if imageURL == "" {
		imageURL = defaultCreatomateImageURL
	}
	renderURL := os.Getenv("CREATOMATE_RENDER_URL")
	if renderURL == "" {
		renderURL = defaultCreatomateRenderURL
	}
	return &CreatomateConfig{
		ApiKey:    os.Getenv("CREATOMATE_API_KEY"),
		ImageURL:  imageURL,
		RenderURL: renderURL,
	}
}

func (c *CreatomateConfig) Warnings() []string {
	if c.ApiKey == "" {
		return []string{"CREATOMATE_API_KEY is not set; image generation and rendering will fail"}
	}
	return nil
}
