package mock_generator

import (
	"context"
	"time"

	"generate-video-api/application/ports/outbound"
)

const (
	renderLatency  = time.Second
	sampleVideoURL = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"
)

type mockRenderSubmitter struct {
	logger outbound.LoggerPort
}

func NewMockRenderSubmitter(logger outbound.LoggerPort) outbound.RenderSubmitterPort {
	return &mockRenderSubmitter{
		logger: logger,
	}
}

// Submit accepts any render request and answers with a public sample video,
// so the frontend can play a real file end to end.
func (m *mockRenderSubmitter) Submit(ctx context.Context, request outbound.SubmitRenderRequest) (*outbound.RenderSubmission, error) {
	if err := waitFor(ctx, renderLatency); err != nil {
		return nil, err
	}

	m.logger.InfoWithFields("accepting a mock render job", map[string]interface{}{
		"template_id":        request.TemplateID,
		"modification_count": len(request.Modifications),
	})

	return &outbound.RenderSubmission{URL: sampleVideoURL}, nil
}
