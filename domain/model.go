package domain

import "time"

type Phase string

const (
	PhaseIdle                Phase = "idle"
	PhaseGeneratingBlueprint Phase = "generating_blueprint"
	PhaseGeneratingImages    Phase = "generating_images"
	PhasePreviewReady        Phase = "preview_ready"
	PhaseSubmitting          Phase = "submitting"
	PhaseRendering           Phase = "rendering"
	PhaseDone                Phase = "done"
	PhaseError               Phase = "error"
)

// ImagePrompt is one named slot of the blueprint, in contract order.
type ImagePrompt struct {
	Slot string
	Text string
}

// Blueprint is the parsed plan for one video: the template's text values plus
// the ordered image descriptions the model wrote for each scene slot.
type Blueprint struct {
	TextModifications map[string]interface{}
	ImagePrompts      []ImagePrompt
}

// Preview bundles the blueprint text with the generated image URLs, in the
// order the images were requested.
type Preview struct {
	TextModifications map[string]interface{} `json:"text_modifications"`
	Images            []string               `json:"images"`
}

// Generation is one prompt-to-video session. It lives in memory only and is
// discarded when the process stops.
type Generation struct {
	ID            string
	Prompt        string
	Phase         Phase
	Message       string
	Loading       bool
	Preview       *Preview
	FinalVideoURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewGeneration(id string, prompt string, now time.Time) Generation {
	return Generation{
		ID:        id,
		Prompt:    prompt,
		Phase:     PhaseIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StatusEvent is one progress update on the stream. Seq is assigned by the
// publisher; reconnecting clients use it to spot gaps.
type StatusEvent struct {
	GenerationID string    `json:"generation_id"`
	Seq          int64     `json:"seq,omitempty"`
	Phase        Phase     `json:"phase"`
	Message      string    `json:"message"`
	Loading      bool      `json:"loading"`
	ImageIndex   int       `json:"image_index,omitempty"`
	ImageCount   int       `json:"image_count,omitempty"`
	VideoURL     string    `json:"video_url,omitempty"`
	At           time.Time `json:"at"`
}

func (g Generation) ToEvent() StatusEvent {
	return StatusEvent{
		GenerationID: g.ID,
		Phase:        g.Phase,
		Message:      g.Message,
		Loading:      g.Loading,
		VideoURL:     g.FinalVideoURL,
		At:           g.UpdatedAt,
	}
}
