package services

import (
	"context"
	"time"

	"generate-video-api/application/ports/inbound"
	"generate-video-api/application/ports/outbound"
	"generate-video-api/domain"
)

type generationOrchestrator struct {
	logger           outbound.LoggerPort
	workerPool       outbound.TaskDispatcher
	store            outbound.GenerationStorePort
	publisher        outbound.ProgressPublisherPort
	previewGenerator inbound.PreviewGeneratorPort
	videoRenderer    inbound.VideoRenderPort
}

func NewGenerationOrchestrator(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	store outbound.GenerationStorePort, publisher outbound.ProgressPublisherPort,
	previewGenerator inbound.PreviewGeneratorPort, videoRenderer inbound.VideoRenderPort) inbound.GenerationOrchestratorPort {
	return &generationOrchestrator{
		logger:           logger,
		workerPool:       workerPool,
		store:            store,
		publisher:        publisher,
		previewGenerator: previewGenerator,
		videoRenderer:    videoRenderer,
	}
}

func (s *generationOrchestrator) StartGeneration(id string, topic string) (domain.Generation, error) {
	generation := domain.NewGeneration(id, topic, time.Now())
	generation.Loading = true
	generation.Message = "Queued for generation..."

	if err := s.store.Create(generation); err != nil {
		return domain.Generation{}, err
	}

	err := s.workerPool.Submit(func() {
		s.runStage(id, func(ctx context.Context) error {
			return s.previewGenerator.Generate(ctx, inbound.GeneratePreviewParams{
				GenerationID: id,
				Topic:        topic,
			})
		})
	})
	if err != nil {
		s.failGeneration(id, err)
		return domain.Generation{}, err
	}

	s.logger.InfoWithFields("Generation started", map[string]interface{}{
		"generation_id": id,
	})

	return generation, nil
}

func (s *generationOrchestrator) StartRender(id string) (domain.Generation, error) {
	// The loading flag is the overlap guard: flipping it inside Update keeps
	// the check and the claim atomic.
	updated, err := s.store.Update(id, func(g *domain.Generation) error {
		if g.Loading {
			return inbound.ErrGenerationBusy
		}
		if g.Preview == nil {
			return inbound.ErrPreviewNotReady
		}
		g.Loading = true
		return nil
	})
	if err != nil {
		return domain.Generation{}, err
	}

	err = s.workerPool.Submit(func() {
		s.runStage(id, func(ctx context.Context) error {
			return s.videoRenderer.Render(ctx, inbound.RenderVideoParams{GenerationID: id})
		})
	})
	if err != nil {
		s.failGeneration(id, err)
		return domain.Generation{}, err
	}

	s.logger.InfoWithFields("Render started", map[string]interface{}{
		"generation_id": id,
	})

	return updated, nil
}

func (s *generationOrchestrator) GetGeneration(id string) (domain.Generation, error) {
	return s.store.Get(id)
}

// runStage executes one pipeline half on the worker pool. Stages run on the
// background context: they belong to the generation, not to the HTTP request
// that started them.
func (s *generationOrchestrator) runStage(id string, stage func(ctx context.Context) error) {
	if err := stage(context.Background()); err != nil {
		s.failGeneration(id, err)
	}
}

// failGeneration writes the failure into the status exactly as the error
// reads and clears the loading flag so the user can retry from the start.
func (s *generationOrchestrator) failGeneration(id string, cause error) {
	s.logger.ErrorWithFields(cause, "Pipeline stage failed", map[string]interface{}{
		"generation_id": id,
	})

	updated, err := s.store.Update(id, func(g *domain.Generation) error {
		g.Phase = domain.PhaseError
		g.Message = cause.Error()
		g.Loading = false
		return nil
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to record the pipeline error", map[string]interface{}{
			"generation_id": id,
		})
		return
	}
	s.publisher.Publish(updated.ToEvent())
}
