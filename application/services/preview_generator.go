package services

import (
	"context"
	"fmt"

	"generate-video-api/application/ports/inbound"
	"generate-video-api/application/ports/outbound"
	"generate-video-api/domain"
	"generate-video-api/task_utils"
)

type previewGenerator struct {
	logger             outbound.LoggerPort
	blueprintGenerator outbound.BlueprintGeneratorPort
	imageGenerator     outbound.ImageGeneratorPort
	store              outbound.GenerationStorePort
	publisher          outbound.ProgressPublisherPort
	queue              *task_utils.SequentialQueue
}

func NewPreviewGenerator(logger outbound.LoggerPort, blueprintGenerator outbound.BlueprintGeneratorPort,
	imageGenerator outbound.ImageGeneratorPort, store outbound.GenerationStorePort,
	publisher outbound.ProgressPublisherPort, queue *task_utils.SequentialQueue) inbound.PreviewGeneratorPort {
	return &previewGenerator{
		logger:             logger,
		blueprintGenerator: blueprintGenerator,
		imageGenerator:     imageGenerator,
		store:              store,
		publisher:          publisher,
		queue:              queue,
	}
}

func (s *previewGenerator) Generate(ctx context.Context, params inbound.GeneratePreviewParams) error {
	if err := s.transition(params.GenerationID, domain.PhaseGeneratingBlueprint, "Generating video blueprint..."); err != nil {
		return err
	}

	blueprint, err := s.blueprintGenerator.Generate(ctx, params.Topic)
	if err != nil {
		return err
	}

	imageURLs, err := s.generateImages(ctx, params.GenerationID, blueprint)
	if err != nil {
		return err
	}

	preview := AssemblePreview(blueprint, imageURLs)
	updated, err := s.store.Update(params.GenerationID, func(g *domain.Generation) error {
		g.Phase = domain.PhasePreviewReady
		g.Message = "Preview ready."
		g.Loading = false
		g.Preview = preview
		g.FinalVideoURL = ""
		return nil
	})
	if err != nil {
		return err
	}
	s.publisher.Publish(updated.ToEvent())

	s.logger.InfoWithFields("Preview ready", map[string]interface{}{
		"generation_id": params.GenerationID,
		"images":        len(imageURLs),
	})

	return nil
}

// generateImages walks the blueprint prompts strictly in slot order, one
// request at a time. A failed prompt aborts the rest and no partial result
// survives.
func (s *previewGenerator) generateImages(ctx context.Context, generationID string, blueprint *domain.Blueprint) ([]string, error) {
	total := len(blueprint.ImagePrompts)
	imageURLs := make([]string, total)

	tasks := make([]task_utils.Task, total)
	for i, prompt := range blueprint.ImagePrompts {
		index := i
		promptText := prompt.Text
		tasks[index] = func(taskCtx context.Context) error {
			if err := s.transitionImage(generationID, index+1, total); err != nil {
				return err
			}
			url, err := s.imageGenerator.Generate(taskCtx, promptText)
			if err != nil {
				return err
			}
			imageURLs[index] = url
			return nil
		}
	}

	if err := s.queue.Run(ctx, tasks); err != nil {
		return nil, err
	}

	return imageURLs, nil
}

func (s *previewGenerator) transition(id string, phase domain.Phase, message string) error {
	updated, err := s.store.Update(id, func(g *domain.Generation) error {
		g.Phase = phase
		g.Message = message
		g.Loading = true
		return nil
	})
	if err != nil {
		return err
	}
	s.publisher.Publish(updated.ToEvent())
	return nil
}

func (s *previewGenerator) transitionImage(id string, index int, total int) error {
	updated, err := s.store.Update(id, func(g *domain.Generation) error {
		g.Phase = domain.PhaseGeneratingImages
		g.Message = fmt.Sprintf("Generating image %d of %d...", index, total)
		g.Loading = true
		return nil
	})
	if err != nil {
		return err
	}

	event := updated.ToEvent()
	event.ImageIndex = index
	event.ImageCount = total
	s.publisher.Publish(event)

	return nil
}
