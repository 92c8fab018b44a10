package config

import "os"

// PromptSlotCount is how many scene images one video template holds.
const PromptSlotCount = 6

// The slot and placeholder orders are the contract between the blueprint, the
// image loop and the render payload. Blueprint prompts are read in slot order
// and the resulting URLs are bound to the placeholders at the same index, so
// nothing downstream ever depends on map iteration order.
var (
	imagePromptSlots = [PromptSlotCount]string{
		"scene_1", "scene_2", "scene_3", "scene_4", "scene_5", "scene_6",
	}
	imagePlaceholders = [PromptSlotCount]string{
		"Image-1.source", "Image-2.source", "Image-3.source",
		"Image-4.source", "Image-5.source", "Image-6.source",
	}
)

func ImagePromptSlots() []string {
	slots := make([]string, PromptSlotCount)
	copy(slots, imagePromptSlots[:])
	return slots
}

func ImagePlaceholders() []string {
	placeholders := make([]string, PromptSlotCount)
	copy(placeholders, imagePlaceholders[:])
	return placeholders
}

type TemplateConfig struct {
	TemplateID string
}

// GetTemplateConfig never fails: the template is only needed once a render is
// submitted, so a missing ID is reported through Warnings.
func GetTemplateConfig() *TemplateConfig {
	return &TemplateConfig{
		TemplateID: os.Getenv("CREATOMATE_TEMPLATE_ID"),
	}
}

func (c *TemplateConfig) Warnings() []string {
	if c.TemplateID == "" {
		return []string{"CREATOMATE_TEMPLATE_ID is not set; render submission will fail"}
	}
	return nil
}
