package outbound

import "generate-video-api/domain"

// ProgressPublisherPort pushes status events to anyone watching a
// generation. Publishing is best effort; a slow or absent subscriber must
// never stall the pipeline.
type ProgressPublisherPort interface {
	Publish(event domain.StatusEvent)
}
