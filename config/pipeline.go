package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultImagePacing          = time.Second
	defaultRenderCompletionWait = 8 * time.Second
	defaultImageOutputWidth     = 800
	defaultImageOutputHeight    = 600
)

type PipelineConfig struct {
	// ImagePacing is the unconditional pause after every successful image
	// call. It is not a backoff; it never adapts.
	ImagePacing time.Duration
	// RenderCompletionWait is how long a submitted render is given before its
	// URL is treated as final. No status polling happens afterwards.
	RenderCompletionWait time.Duration
	ImageOutputWidth     int
	ImageOutputHeight    int
	// HTTPTimeout of zero leaves the transport's own limits in charge.
	HTTPTimeout time.Duration
}

func GetPipelineConfig() (*PipelineConfig, error) {
	pacing, err := durationFromEnv("IMAGE_PACING_MS", defaultImagePacing)
	if err != nil {
		return nil, err
	}
	wait, err := durationFromEnv("RENDER_COMPLETION_WAIT_MS", defaultRenderCompletionWait)
	if err != nil {
		return nil, err
	}
	timeout, err := durationFromEnv("HTTP_TIMEOUT_MS", 0)
	if err != nil {
		return nil, err
	}
	width, err := intFromEnv("IMAGE_OUTPUT_WIDTH", defaultImageOutputWidth)
	if err != nil {
		return nil, err
	}
	height, err := intFromEnv("IMAGE_OUTPUT_HEIGHT", defaultImageOutputHeight)
	if err != nil {
		return nil, err
	}

	return &PipelineConfig{
		ImagePacing:          pacing,
		RenderCompletionWait: wait,
		ImageOutputWidth:     width,
		ImageOutputHeight:    height,
		HTTPTimeout:          timeout,
	}, nil
}

func durationFromEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	ms, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if ms < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return val, nil
}
