package mock_generator

import (
	"generate-video-api/application/ports/outbound"
	"generate-video-api/config"
)

// Init builds the canned replacements for the three external services so the
// pipeline runs without any API key.
func Init(pipelineConfig *config.PipelineConfig, logger outbound.LoggerPort) (outbound.BlueprintGeneratorPort, outbound.ImageGeneratorPort, outbound.RenderSubmitterPort) {
	blueprintReader := NewFileBlueprintReader(logger)
	blueprintGenerator := NewMockBlueprintGenerator(blueprintReader, logger)
	imageGenerator := NewMockImageGenerator(pipelineConfig, logger)
	renderSubmitter := NewMockRenderSubmitter(logger)

	return blueprintGenerator, imageGenerator, renderSubmitter
}
