package inbound

import (
	"errors"

	"generate-video-api/domain"
)

var (
	// ErrGenerationBusy is returned when a pipeline stage is already
	// running for the generation; only one stage runs at a time.
	ErrGenerationBusy = errors.New("generation is busy")

	// ErrPreviewNotReady is returned when a render is requested before the
	// preview stage has produced its images.
	ErrPreviewNotReady = errors.New("preview is not ready yet")
)

// GenerationOrchestratorPort is the controller-facing entry point. Start
// calls validate and persist state synchronously, then hand the heavy
// lifting to the worker pool and return the freshly updated snapshot.
type GenerationOrchestratorPort interface {
	StartGeneration(id string, topic string) (domain.Generation, error)
	StartRender(id string) (domain.Generation, error)
	GetGeneration(id string) (domain.Generation, error)
}
