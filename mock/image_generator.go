package mock_generator

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"generate-video-api/application/ports/outbound"
	"generate-video-api/config"
)

const imageLatency = 500 * time.Millisecond

type mockImageGenerator struct {
	logger       outbound.LoggerPort
	outputWidth  int
	outputHeight int
	counter      atomic.Int64
}

func NewMockImageGenerator(pipelineConfig *config.PipelineConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &mockImageGenerator{
		logger:       logger,
		outputWidth:  pipelineConfig.ImageOutputWidth,
		outputHeight: pipelineConfig.ImageOutputHeight,
	}
}

// Generate returns a placeholder image sized like the real output. The
// counter seeds the placeholder service so every image looks different.
func (m *mockImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := waitFor(ctx, imageLatency); err != nil {
		return "", err
	}

	seed := m.counter.Add(1)
	url := fmt.Sprintf("https://picsum.photos/seed/%d/%d/%d", seed, m.outputWidth, m.outputHeight)

	m.logger.InfoWithFields("serving a mock image", map[string]interface{}{
		"prompt": prompt,
		"url":    url,
	})

	return url, nil
}
