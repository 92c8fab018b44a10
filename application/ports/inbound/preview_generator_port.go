package inbound

import "context"

type GeneratePreviewParams struct {
	GenerationID string
	Topic        string
}

// PreviewGeneratorPort runs the first half of the pipeline: blueprint
// generation followed by one image per scene, finishing with a preview the
// user can inspect before committing to a render.
type PreviewGeneratorPort interface {
	Generate(ctx context.Context, params GeneratePreviewParams) error
}
