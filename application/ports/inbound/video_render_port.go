package inbound

import "context"

type RenderVideoParams struct {
	GenerationID string
}

// VideoRenderPort runs the second half of the pipeline: it maps the
// approved preview onto the render template, submits the job and marks the
// generation done once the backend has had time to finish.
type VideoRenderPort interface {
	Render(ctx context.Context, params RenderVideoParams) error
}
