package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"generate-video-api/application/ports/outbound"
	"generate-video-api/domain"
)

type stubBlueprintGenerator struct {
	mu        sync.Mutex
	blueprint *domain.Blueprint
	err       error
	delay     time.Duration
	calls     int
}

func (s *stubBlueprintGenerator) Generate(ctx context.Context, topic string) (*domain.Blueprint, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.blueprint, nil
}

type stubImageGenerator struct {
	mu         sync.Mutex
	failAt     int
	failErr    error
	delay      time.Duration
	calls      int
	prompts    []string
	active     int32
	overlapped atomic.Bool
}

func (s *stubImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if atomic.AddInt32(&s.active, 1) > 1 {
		s.overlapped.Store(true)
	}
	defer atomic.AddInt32(&s.active, -1)

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	s.mu.Lock()
	s.calls++
	call := s.calls
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.failAt > 0 && call >= s.failAt {
		return "", s.failErr
	}
	return fmt.Sprintf("https://cdn.example.com/img%d.png", call), nil
}

func (s *stubImageGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubImageGenerator) seenPrompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

type stubRenderSubmitter struct {
	mu      sync.Mutex
	url     string
	err     error
	request outbound.SubmitRenderRequest
	calls   int
}

func (s *stubRenderSubmitter) Submit(ctx context.Context, request outbound.SubmitRenderRequest) (*outbound.RenderSubmission, error) {
	s.mu.Lock()
	s.calls++
	s.request = request
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &outbound.RenderSubmission{URL: s.url}, nil
}

func (s *stubRenderSubmitter) lastRequest() outbound.SubmitRenderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.StatusEvent
}

func (p *recordingPublisher) Publish(event domain.StatusEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) snapshot() []domain.StatusEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.StatusEvent(nil), p.events...)
}

func sixPromptBlueprint() *domain.Blueprint {
	prompts := make([]domain.ImagePrompt, 6)
	for i := range prompts {
		prompts[i] = domain.ImagePrompt{
			Slot: fmt.Sprintf("scene_%d", i+1),
			Text: fmt.Sprintf("scene %d description", i+1),
		}
	}
	return &domain.Blueprint{
		TextModifications: map[string]interface{}{
			"Title.text":       "Neon Nights",
			"Voiceover-1.text": "Welcome to the city.",
		},
		ImagePrompts: prompts,
	}
}

func mustCreate(t *testing.T, store outbound.GenerationStorePort, id string, topic string) {
	t.Helper()
	generation := domain.NewGeneration(id, topic, time.Now())
	generation.Loading = true
	if err := store.Create(generation); err != nil {
		t.Fatal("Failed to create the generation:", err)
	}
}

func waitForPhase(t *testing.T, store outbound.GenerationStorePort, id string, phase domain.Phase) domain.Generation {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		generation, err := store.Get(id)
		if err == nil && generation.Phase == phase {
			return generation
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("generation %s never reached phase %s", id, phase)
	return domain.Generation{}
}
