package adapters

import (
	"fmt"
	"sync"
	"time"

	"generate-video-api/application/ports/outbound"
	"generate-video-api/domain"
)

// memoryGenerationStore keeps every generation for the lifetime of the
// process. Snapshots handed out escape the lock, so mutate callbacks must
// replace nested references instead of editing them in place.
type memoryGenerationStore struct {
	mu          sync.RWMutex
	generations map[string]domain.Generation
}

func NewMemoryGenerationStore() outbound.GenerationStorePort {
	return &memoryGenerationStore{
		generations: make(map[string]domain.Generation),
	}
}

func (s *memoryGenerationStore) Create(generation domain.Generation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.generations[generation.ID]; exists {
		return fmt.Errorf("generation %s already exists", generation.ID)
	}
	s.generations[generation.ID] = generation

	return nil
}

func (s *memoryGenerationStore) Get(id string) (domain.Generation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	generation, ok := s.generations[id]
	if !ok {
		return domain.Generation{}, outbound.ErrGenerationNotFound
	}

	return generation, nil
}

func (s *memoryGenerationStore) Update(id string, mutate func(*domain.Generation) error) (domain.Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	generation, ok := s.generations[id]
	if !ok {
		return domain.Generation{}, outbound.ErrGenerationNotFound
	}
	if err := mutate(&generation); err != nil {
		return domain.Generation{}, err
	}
	generation.UpdatedAt = time.Now()
	s.generations[id] = generation

	return generation, nil
}
