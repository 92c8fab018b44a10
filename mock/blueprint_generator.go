package mock_generator

import (
	"context"
	"time"

	"generate-video-api/application/ports/outbound"
	"generate-video-api/config"
	"generate-video-api/domain"
)

const blueprintFileName = "mock/blueprint.json"

var defaultBlueprint = MockBlueprint{
	Delay: 2,
	TextModifications: map[string]interface{}{
		"Title.text":       "Six Scenes of a Sample Story",
		"Voiceover-1.text": "A quiet street wakes up before sunrise.",
		"Voiceover-2.text": "Shops raise their shutters one by one.",
		"Voiceover-3.text": "The first tram hums past the square.",
		"Voiceover-4.text": "Markets fill with color and noise.",
		"Voiceover-5.text": "Afternoon light stretches across rooftops.",
		"Voiceover-6.text": "By nightfall the street glows again.",
	},
	ImagePrompts: map[string]string{
		"scene_1": "empty cobblestone street at dawn, soft blue light",
		"scene_2": "shopkeeper opening metal shutters, warm morning sun",
		"scene_3": "vintage tram crossing a town square",
		"scene_4": "crowded open-air market with fruit stalls",
		"scene_5": "rooftops in golden afternoon light",
		"scene_6": "neon signs reflecting on wet pavement at night",
	},
}

type mockBlueprintGenerator struct {
	logger outbound.LoggerPort
	reader BlueprintReader
}

func NewMockBlueprintGenerator(reader BlueprintReader, logger outbound.LoggerPort) outbound.BlueprintGeneratorPort {
	return &mockBlueprintGenerator{
		logger: logger,
		reader: reader,
	}
}

// Generate serves the blueprint from mock/blueprint.json, so the canned
// story can be edited without a rebuild. The file is optional.
func (m *mockBlueprintGenerator) Generate(ctx context.Context, topic string) (*domain.Blueprint, error) {
	mockBlueprint, err := m.reader.Read(blueprintFileName)
	if err != nil {
		m.logger.WarnWithFields("mock blueprint file unavailable, serving the built-in blueprint", map[string]interface{}{
			"file": blueprintFileName,
		})
		mockBlueprint = &defaultBlueprint
	}

	if err := waitFor(ctx, time.Duration(mockBlueprint.Delay)*time.Second); err != nil {
		return nil, err
	}

	prompts := make([]domain.ImagePrompt, 0, config.PromptSlotCount)
	for _, slot := range config.ImagePromptSlots() {
		text, ok := mockBlueprint.ImagePrompts[slot]
		if !ok {
			continue
		}
		prompts = append(prompts, domain.ImagePrompt{Slot: slot, Text: text})
	}

	m.logger.InfoWithFields("serving the mock blueprint", map[string]interface{}{
		"topic":        topic,
		"prompt_count": len(prompts),
	})

	return &domain.Blueprint{
		TextModifications: mockBlueprint.TextModifications,
		ImagePrompts:      prompts,
	}, nil
}

func waitFor(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
