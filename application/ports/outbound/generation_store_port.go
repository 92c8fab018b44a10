package outbound

import (
	"errors"

	"generate-video-api/domain"
)

var ErrGenerationNotFound = errors.New("generation not found")

// GenerationStorePort keeps the state of every generation session. Update
// applies mutate under the store's lock so concurrent pipeline steps and
// HTTP reads observe consistent snapshots; when mutate returns an error the
// generation is left untouched and the error is passed through.
type GenerationStorePort interface {
	Create(generation domain.Generation) error
	Get(id string) (domain.Generation, error)
	Update(id string, mutate func(*domain.Generation) error) (domain.Generation, error)
}
