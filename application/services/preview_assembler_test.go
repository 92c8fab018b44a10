package services

import (
	"fmt"
	"testing"

	"generate-video-api/config"
	"generate-video-api/domain"
)

func TestAssemblePreview_CopiesImages(t *testing.T) {
	urls := []string{"a", "b"}
	blueprint := &domain.Blueprint{
		TextModifications: map[string]interface{}{"Title.text": "T"},
	}

	preview := AssemblePreview(blueprint, urls)
	urls[0] = "tampered"

	if preview.Images[0] != "a" {
		t.Errorf("preview images must not alias the input slice, got %s", preview.Images[0])
	}
	if preview.TextModifications["Title.text"] != "T" {
		t.Errorf("unexpected text modifications: %v", preview.TextModifications)
	}
}

func TestBuildModifications_Positional(t *testing.T) {
	preview := &domain.Preview{
		TextModifications: map[string]interface{}{"Title.text": "T"},
		Images:            []string{"u1", "u2", "u3"},
	}

	mods := BuildModifications(preview)
	for i, want := range []string{"u1", "u2", "u3"} {
		key := fmt.Sprintf("Image-%d.source", i+1)
		if mods[key] != want {
			t.Errorf("placeholder %s: got %v, want %s", key, mods[key], want)
		}
	}
	if len(mods) != 4 {
		t.Errorf("unexpected modification count: %d", len(mods))
	}
}

func TestBuildModifications_CapsAtSlotCount(t *testing.T) {
	images := make([]string, config.PromptSlotCount+2)
	for i := range images {
		images[i] = fmt.Sprintf("u%d", i+1)
	}
	preview := &domain.Preview{
		TextModifications: map[string]interface{}{},
		Images:            images,
	}

	mods := BuildModifications(preview)
	if len(mods) != config.PromptSlotCount {
		t.Errorf("expected %d mapped images, got %d", config.PromptSlotCount, len(mods))
	}
	lastKey := fmt.Sprintf("Image-%d.source", config.PromptSlotCount)
	if mods[lastKey] != fmt.Sprintf("u%d", config.PromptSlotCount) {
		t.Errorf("unexpected last placeholder: %v", mods[lastKey])
	}
}
