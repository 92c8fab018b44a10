package outbound

import "context"

type SubmitRenderRequest struct {
	TemplateID    string
	Modifications map[string]interface{}
}

type RenderSubmission struct {
	URL string
}

// RenderSubmitterPort queues a template render job with the video backend.
// The returned submission URL is where the finished video will be served
// from; the job itself keeps running after Submit returns.
type RenderSubmitterPort interface {
	Submit(ctx context.Context, request SubmitRenderRequest) (*RenderSubmission, error)
}
