package services

import (
	"generate-video-api/config"
	"generate-video-api/domain"
)

// AssemblePreview pairs the blueprint text with the image URLs generated for
// it, keeping the slot order the prompts were requested in.
func AssemblePreview(blueprint *domain.Blueprint, imageURLs []string) *domain.Preview {
	images := make([]string, len(imageURLs))
	copy(images, imageURLs)

	return &domain.Preview{
		TextModifications: blueprint.TextModifications,
		Images:            images,
	}
}

// BuildModifications flattens a preview into the render template's
// modifications object: the text values as they are, plus the first
// PromptSlotCount image URLs bound positionally to the fixed placeholder
// names.
func BuildModifications(preview *domain.Preview) map[string]interface{} {
	placeholders := config.ImagePlaceholders()

	modifications := make(map[string]interface{}, len(preview.TextModifications)+len(placeholders))
	for key, value := range preview.TextModifications {
		modifications[key] = value
	}
	for i, url := range preview.Images {
		if i >= len(placeholders) {
			break
		}
		modifications[placeholders[i]] = url
	}

	return modifications
}
