package services

import (
	"context"
	"time"

	"generate-video-api/application/ports/inbound"
	"generate-video-api/application/ports/outbound"
	"generate-video-api/config"
	"generate-video-api/domain"
)

type videoRenderer struct {
	logger          outbound.LoggerPort
	renderSubmitter outbound.RenderSubmitterPort
	store           outbound.GenerationStorePort
	publisher       outbound.ProgressPublisherPort
	templateConfig  *config.TemplateConfig
	completionWait  time.Duration
}

func NewVideoRenderer(logger outbound.LoggerPort, renderSubmitter outbound.RenderSubmitterPort,
	store outbound.GenerationStorePort, publisher outbound.ProgressPublisherPort,
	templateConfig *config.TemplateConfig, pipelineConfig *config.PipelineConfig) inbound.VideoRenderPort {
	return &videoRenderer{
		logger:          logger,
		renderSubmitter: renderSubmitter,
		store:           store,
		publisher:       publisher,
		templateConfig:  templateConfig,
		completionWait:  pipelineConfig.RenderCompletionWait,
	}
}

func (s *videoRenderer) Render(ctx context.Context, params inbound.RenderVideoParams) error {
	generation, err := s.store.Get(params.GenerationID)
	if err != nil {
		return err
	}
	if generation.Preview == nil {
		return inbound.ErrPreviewNotReady
	}

	if err = s.transition(params.GenerationID, domain.PhaseSubmitting, "Submitting render job..."); err != nil {
		return err
	}

	submission, err := s.renderSubmitter.Submit(ctx, outbound.SubmitRenderRequest{
		TemplateID:    s.templateConfig.TemplateID,
		Modifications: BuildModifications(generation.Preview),
	})
	if err != nil {
		return err
	}

	if err = s.transition(params.GenerationID, domain.PhaseRendering, "Rendering video..."); err != nil {
		return err
	}

	// The render job is never polled. After a fixed wait the URL from the
	// submission response is served as the final video, ready or not.
	if err = s.waitForCompletion(ctx); err != nil {
		return err
	}

	updated, err := s.store.Update(params.GenerationID, func(g *domain.Generation) error {
		g.Phase = domain.PhaseDone
		g.Message = "Video ready!"
		g.Loading = false
		g.FinalVideoURL = submission.URL
		return nil
	})
	if err != nil {
		return err
	}
	s.publisher.Publish(updated.ToEvent())

	s.logger.InfoWithFields("Video ready", map[string]interface{}{
		"generation_id": params.GenerationID,
		"url":           submission.URL,
	})

	return nil
}

func (s *videoRenderer) waitForCompletion(ctx context.Context) error {
	if s.completionWait <= 0 {
		return nil
	}
	timer := time.NewTimer(s.completionWait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *videoRenderer) transition(id string, phase domain.Phase, message string) error {
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
